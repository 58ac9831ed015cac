package placement

import (
	"sort"

	"github.com/boardsat/boardsat/cnf"
	"github.com/boardsat/boardsat/geometry"
	"github.com/boardsat/boardsat/internal/metrics"
)

// Encoder builds the full constraint system for one placement problem
// and holds every variable family the resulting cnf.Expr references, so
// Decode can read a solver model back into a Placement.
//
// An Encoder is built once per run; it allocates a fresh cnf.Arena and
// is never reused across runs.
type Encoder struct {
	arena   *cnf.Arena
	board   geometry.Board
	options Options

	components []geometry.Component
	nets       []geometry.Net
	holes      []geometry.Coord
	spaces     []geometry.Coord

	positions map[geometry.Component][]geometry.Position
	headOfNet map[geometry.Terminal]int // terminal -> index into nets

	links     []link
	adjacency map[geometry.Coord][]neighbour

	compPos    map[geometry.Component]map[geometry.Position]*cnf.Var
	occ        map[geometry.Component]map[geometry.Coord]*cnf.Var
	drilled    map[geometry.Coord]*cnf.Var
	termConn   []map[geometry.Coord]*cnf.Var // indexed by net index
	termDist   map[geometry.Coord][]*cnf.Var // termDist[h][i], i in 0..len(holes)-1

	// choiceVars are the variables Enumerate's blocking clause ranges
	// over: comp_pos, drilled and jumper_pres, never the auxiliary
	// term_conn/term_dist/Tseitin variables.
	choiceVars []*cnf.Var

	metrics *metrics.Metrics
}

// WithMetrics attaches m so Build and Enumerate report clause/variable
// counts and timings through it. Passing nil (the default) disables
// reporting; every Metrics method is nil-receiver safe.
func (e *Encoder) WithMetrics(m *metrics.Metrics) *Encoder {
	e.metrics = m
	return e
}

// NewEncoder validates opts and board/components/nets, allocates the
// Encoder's Arena and every variable family, but does not yet build any
// clause. Call Build to get the CNF.
func NewEncoder(board geometry.Board, components []geometry.Component, nets []geometry.Net, opts Options) (*Encoder, error) {
	opts, err := opts.validate()
	if err != nil {
		return nil, err
	}

	e := &Encoder{
		arena:      cnf.NewArena(),
		board:      board,
		options:    opts,
		components: components,
		nets:       nets,
		holes:      board.Holes(),
		spaces:     board.Spaces(),
	}

	if err := e.indexNets(); err != nil {
		return nil, err
	}
	if err := e.canonicalizePositions(); err != nil {
		return nil, err
	}

	traceLinks := buildTraceLinks(e.arena, board)
	jumperLinks := buildJumperLinks(e.arena, board, opts.MaxJumperLength)
	e.links = append(traceLinks, jumperLinks...)
	e.adjacency = buildAdjacency(e.links)
	for _, l := range jumperLinks {
		e.choiceVars = append(e.choiceVars, l.presence)
	}

	e.allocateCompPos()
	e.allocateOcc()
	e.allocateDrilled()
	e.allocateTermConn()
	e.allocateTermDist()

	return e, nil
}

// indexNets validates that every terminal appears in exactly one net and
// builds the terminal -> net-index lookup used by the net-continuity
// constraint.
func (e *Encoder) indexNets() error {
	e.headOfNet = map[geometry.Terminal]int{}
	seen := map[geometry.Terminal]int{}
	for ni, net := range e.nets {
		if len(net.Terminals) == 0 {
			return netErrorf("net %d has no terminals", ni)
		}
		for _, t := range net.Terminals {
			if _, dup := seen[t]; dup {
				return netErrorf("terminal %q appears in more than one net", t.Label())
			}
			seen[t] = ni
		}
	}
	for _, c := range e.components {
		for _, t := range c.Terminals() {
			ni, ok := seen[t]
			if !ok {
				return netErrorf("terminal %q of component %q appears in no net", t.Label(), c.Label())
			}
			e.headOfNet[t] = ni
		}
	}
	return nil
}

// canonicalizePositions collects each component's legal positions,
// deduplicated via geometry.Canonicalize, and checks every one actually
// lands on the board.
func (e *Encoder) canonicalizePositions() error {
	holeSet := map[geometry.Coord]bool{}
	for _, h := range e.holes {
		holeSet[h] = true
	}
	spaceSet := map[geometry.Coord]bool{}
	for _, s := range e.spaces {
		spaceSet[s] = true
	}

	e.positions = map[geometry.Component][]geometry.Position{}
	for _, c := range e.components {
		positions := geometry.Canonicalize(c.Positions(e.board))
		for _, p := range positions {
			for _, cell := range p.Occupies() {
				if !spaceSet[cell] {
					return geometryErrorf("component %q has a position occupying %v, which is not a board space", c.Label(), cell)
				}
			}
			for t, h := range p.TerminalPositions() {
				if !holeSet[h] {
					return geometryErrorf("component %q terminal %q lands at %v, which is not a board hole", c.Label(), t.Label(), h)
				}
			}
		}
		// A component with zero legal positions is not an error: its
		// exactly-one constraint degenerates to an empty clause,
		// making the whole run cleanly unsatisfiable.
		e.positions[c] = positions
	}
	return nil
}

func (e *Encoder) allocateCompPos() {
	e.compPos = map[geometry.Component]map[geometry.Position]*cnf.Var{}
	for _, c := range e.components {
		m := map[geometry.Position]*cnf.Var{}
		for _, p := range e.positions[c] {
			v := e.arena.NewVar("")
			m[p] = v
			e.choiceVars = append(e.choiceVars, v)
		}
		e.compPos[c] = m
	}
}

func (e *Encoder) allocateOcc() {
	e.occ = map[geometry.Component]map[geometry.Coord]*cnf.Var{}
	for _, c := range e.components {
		m := map[geometry.Coord]*cnf.Var{}
		for _, s := range e.spaces {
			m[s] = e.arena.NewVar("")
		}
		e.occ[c] = m
	}
}

func (e *Encoder) allocateDrilled() {
	e.drilled = map[geometry.Coord]*cnf.Var{}
	for _, h := range e.holes {
		v := e.arena.NewVar("")
		e.drilled[h] = v
		e.choiceVars = append(e.choiceVars, v)
	}
}

func (e *Encoder) allocateTermConn() {
	e.termConn = make([]map[geometry.Coord]*cnf.Var, len(e.nets))
	for ni := range e.nets {
		m := map[geometry.Coord]*cnf.Var{}
		for _, h := range e.holes {
			m[h] = e.arena.NewVar("")
		}
		e.termConn[ni] = m
	}
}

func (e *Encoder) allocateTermDist() {
	n := len(e.holes)
	e.termDist = map[geometry.Coord][]*cnf.Var{}
	for _, h := range e.holes {
		row := make([]*cnf.Var, n)
		for i := 0; i < n; i++ {
			row[i] = e.arena.NewVar("")
		}
		e.termDist[h] = row
	}
}

// sortedHoles returns e.holes sorted so clause emission order is
// deterministic given the input.
func (e *Encoder) sortedHoles() []geometry.Coord {
	out := append([]geometry.Coord(nil), e.holes...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}
