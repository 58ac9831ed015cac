package placement

import (
	"time"

	"github.com/boardsat/boardsat/card"
	"github.com/boardsat/boardsat/cnf"
	"github.com/boardsat/boardsat/geometry"
	"github.com/boardsat/boardsat/wff"
)

// Build assembles the complete cnf.Expr for this Encoder's problem,
// emitting its ten constraint families in order. It may be called only
// once per Encoder.
func (e *Encoder) Build() cnf.Expr {
	start := time.Now()
	out := cnf.Empty()
	out = out.Union(e.onePositionPerComponent())
	out = out.Union(e.occupancyDefinition())
	out = out.Union(e.atMostOneOccupant())
	out = out.Union(e.tracePresenceDefinition())
	out = out.Union(e.cardinalityLimits())
	out = out.Union(e.netHeadConnectivity())
	out = out.Union(e.distanceZero())
	out = out.Union(e.distanceInduction())
	out = out.Union(e.netContinuity())
	out = out.Union(e.netExclusivity())
	e.metrics.ObserveEncode(out.Len(), e.arena.Len(), time.Since(start))
	return out
}

// 1. One position per component.
func (e *Encoder) onePositionPerComponent() cnf.Expr {
	out := cnf.Empty()
	for _, c := range e.components {
		vars := make([]*cnf.Var, 0, len(e.positions[c]))
		for _, p := range e.positions[c] {
			vars = append(vars, e.compPos[c][p])
		}
		out = out.Union(card.ExactlyOne(e.arena, vars))
	}
	return out
}

// 2. Space occupancy definition.
func (e *Encoder) occupancyDefinition() cnf.Expr {
	out := cnf.Empty()
	for _, c := range e.components {
		coveringBySpace := map[geometry.Coord][]*cnf.Var{}
		for _, p := range e.positions[c] {
			v := e.compPos[c][p]
			for _, cell := range p.Occupies() {
				coveringBySpace[cell] = append(coveringBySpace[cell], v)
			}
		}
		for _, s := range e.spaces {
			covering := coveringBySpace[s]
			terms := make([]wff.Formula, len(covering))
			for i, v := range covering {
				terms[i] = wff.Var(v)
			}
			f := wff.Iff(wff.Var(e.occ[c][s]), wff.Exists(terms))
			out = out.Union(wff.ToCNF(f, e.arena))
		}
	}
	return out
}

// 3. At most one occupant per space: a space's occupants are the
// components whose occ var covers it, plus any jumper whose span covers
// it.
func (e *Encoder) atMostOneOccupant() cnf.Expr {
	jumpersBySpace := map[geometry.Coord][]*cnf.Var{}
	for _, l := range e.links {
		if !l.isJumper {
			continue
		}
		for _, cell := range l.occupies {
			jumpersBySpace[cell] = append(jumpersBySpace[cell], l.presence)
		}
	}

	out := cnf.Empty()
	for _, s := range e.spaces {
		var vars []*cnf.Var
		for _, c := range e.components {
			vars = append(vars, e.occ[c][s])
		}
		vars = append(vars, jumpersBySpace[s]...)
		out = out.Union(card.AtMostOne(e.arena, vars))
	}
	return out
}

// 4. Trace presence <-> no drilled endpoint.
func (e *Encoder) tracePresenceDefinition() cnf.Expr {
	out := cnf.Empty()
	for _, l := range e.links {
		if l.isJumper {
			continue
		}
		f := wff.Iff(
			wff.Var(l.presence),
			wff.And(wff.Not(wff.Var(e.drilled[l.a])), wff.Not(wff.Var(e.drilled[l.b]))),
		)
		out = out.Union(wff.ToCNF(f, e.arena))
	}
	if !e.options.AllowDrilled {
		clauses := make([]cnf.Clause, 0, len(e.holes))
		for _, h := range e.holes {
			clauses = append(clauses, cnf.NewClause(cnf.Neg(e.drilled[h])))
		}
		out = out.Union(cnf.NewExpr(clauses...))
	}
	return out
}

// 5. Cardinality limits on drilled holes and installed jumpers.
func (e *Encoder) cardinalityLimits() cnf.Expr {
	out := cnf.Empty()
	if e.options.MaxDrilled != nil {
		vars := make([]*cnf.Var, 0, len(e.holes))
		for _, h := range e.sortedHoles() {
			vars = append(vars, e.drilled[h])
		}
		out = out.Union(card.AtMostK(e.arena, vars, *e.options.MaxDrilled))
	}
	if e.options.MaxJumpers != nil {
		var vars []*cnf.Var
		for _, l := range e.links {
			if l.isJumper {
				vars = append(vars, l.presence)
			}
		}
		out = out.Union(card.AtMostK(e.arena, vars, *e.options.MaxJumpers))
	}
	return out
}

// headPlacementsAt returns, for hole h, the comp_pos Vars of every
// position that places some net's head terminal at h.
func (e *Encoder) headPlacementsAt(h geometry.Coord) []*cnf.Var {
	var vars []*cnf.Var
	for _, net := range e.nets {
		head := net.Head()
		comp := head.Component()
		for _, p := range e.positions[comp] {
			if hole, ok := p.TerminalPositions()[head]; ok && hole == h {
				vars = append(vars, e.compPos[comp][p])
			}
		}
	}
	return vars
}

// 6. Net-head connectivity, the recursive term_conn definition.
// wff.AddVar names the shared term_conn[nh,n] ∧ pres sub-term once per
// (neighbour, hole) pair so the CNF stays linear rather than blowing up
// under distribution.
func (e *Encoder) netHeadConnectivity() cnf.Expr {
	out := cnf.Empty()
	for ni := range e.nets {
		for _, h := range e.holes {
			var reachTerms []wff.Formula
			for _, nb := range e.adjacency[h] {
				sub := wff.And(wff.Var(e.termConn[ni][nb.hole]), wff.Var(nb.presence))
				reachTerms = append(reachTerms, wff.AddVar(sub))
			}
			// Only this net's own head seeds its connectivity.
			head := e.nets[ni].Head()
			headComp := head.Component()
			var placeTerms []wff.Formula
			for _, p := range e.positions[headComp] {
				if hole, ok := p.TerminalPositions()[head]; ok && hole == h {
					placeTerms = append(placeTerms, wff.Var(e.compPos[headComp][p]))
				}
			}
			f := wff.Iff(
				wff.Var(e.termConn[ni][h]),
				wff.Or(wff.Exists(reachTerms), wff.Exists(placeTerms)),
			)
			out = out.Union(wff.ToCNF(f, e.arena))
		}
	}
	return out
}

// 7. Distance-zero definition.
func (e *Encoder) distanceZero() cnf.Expr {
	out := cnf.Empty()
	for _, h := range e.holes {
		headTerms := e.headPlacementsAt(h)
		terms := make([]wff.Formula, len(headTerms))
		for i, v := range headTerms {
			terms[i] = wff.Var(v)
		}
		f := wff.Iff(wff.Not(wff.Var(e.termDist[h][0])), wff.Exists(terms))
		out = out.Union(wff.ToCNF(f, e.arena))
	}
	return out
}

// 8. Distance induction. Gating every step by the link's presence Var
// (rather than a neighbour-only variant that ignores whether the link
// between them still conducts) is what keeps the encoding correct under
// drilling.
func (e *Encoder) distanceInduction() cnf.Expr {
	out := cnf.Empty()
	n := len(e.holes)
	for _, h := range e.holes {
		for i := 1; i < n; i++ {
			conjuncts := []wff.Formula{wff.Var(e.termDist[h][i-1])}
			for _, nb := range e.adjacency[h] {
				sub := wff.Or(wff.Var(e.termDist[nb.hole][i-1]), wff.Not(wff.Var(nb.presence)))
				conjuncts = append(conjuncts, wff.AddVar(sub))
			}
			f := wff.Iff(wff.Var(e.termDist[h][i]), wff.ForAll(conjuncts))
			out = out.Union(wff.ToCNF(f, e.arena))
		}
	}
	return out
}

// 9. Net continuity: placing a component forces every one of its
// terminals to be connectivity-linked to its net's head at the hole it
// lands on.
func (e *Encoder) netContinuity() cnf.Expr {
	out := cnf.Empty()
	for _, c := range e.components {
		for _, p := range e.positions[c] {
			posVar := e.compPos[c][p]
			for t, h := range p.TerminalPositions() {
				ni, ok := e.headOfNet[t]
				if !ok {
					continue
				}
				f := wff.Implies(wff.Var(posVar), wff.Var(e.termConn[ni][h]))
				out = out.Union(wff.ToCNF(f, e.arena))
			}
		}
	}
	return out
}

// 10. Net discontinuity / unreachability exclusivity: a hole belongs to
// at most one net's head-connectivity, and "maximally unreachable" is
// mutually exclusive with belonging to any net.
func (e *Encoder) netExclusivity() cnf.Expr {
	out := cnf.Empty()
	maxDist := len(e.holes) - 1
	for _, h := range e.holes {
		vars := make([]*cnf.Var, 0, len(e.nets)+1)
		for ni := range e.nets {
			vars = append(vars, e.termConn[ni][h])
		}
		vars = append(vars, e.termDist[h][maxDist])
		out = out.Union(card.AtMostOne(e.arena, vars))
	}
	return out
}
