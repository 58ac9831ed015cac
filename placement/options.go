package placement

// Options configures a placement run.
type Options struct {
	// AllowDrilled permits holes to be drilled out to break a trace's
	// conductivity. If false, every hole is constrained undrilled.
	AllowDrilled bool

	// MaxJumperLength is the longest jumper, in holes, the encoder may
	// generate (0 disables jumpers entirely).
	MaxJumperLength int

	// MaxDrilled, if non-nil, bounds the number of simultaneously
	// drilled holes via card.AtMostK.
	MaxDrilled *int

	// MaxJumpers, if non-nil, bounds the number of simultaneously
	// installed jumpers via card.AtMostK. Setting it to 0 forces
	// MaxJumperLength to 0 at validation time, so no jumper links are
	// ever generated.
	MaxJumpers *int

	// Solver names the adapter to use, looked up in the solver
	// registry. Empty means the caller's chosen default (the CLI
	// defaults to "gini").
	Solver string
}

// validate normalizes opts and rejects out-of-range values, fail-fast
// and before any Var is allocated.
func (o Options) validate() (Options, error) {
	if o.MaxJumperLength < 0 {
		return o, configErrorf("max jumper length must be >= 0, got %d", o.MaxJumperLength)
	}
	if o.MaxDrilled != nil && *o.MaxDrilled < 0 {
		return o, configErrorf("max drilled must be >= 0, got %d", *o.MaxDrilled)
	}
	if o.MaxJumpers != nil && *o.MaxJumpers < 0 {
		return o, configErrorf("max jumpers must be >= 0, got %d", *o.MaxJumpers)
	}
	if o.MaxJumpers != nil && *o.MaxJumpers == 0 {
		o.MaxJumperLength = 0
	}
	return o, nil
}
