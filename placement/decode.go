package placement

import (
	"sort"

	"github.com/boardsat/boardsat/cnf"
	"github.com/boardsat/boardsat/geometry"
	"github.com/boardsat/boardsat/solver"
)

// modelAssignment reads a solver.Model back into a per-Var truth table
// using the DimacsMapping the same run's clauses were rendered with.
func modelAssignment(model solver.Model, mapping *cnf.DimacsMapping) map[*cnf.Var]bool {
	assign := make(map[*cnf.Var]bool, len(model))
	for _, lit := range model {
		id := lit
		truth := true
		if id < 0 {
			id = -id
			truth = false
		}
		if v := mapping.VarOf(id); v != nil {
			assign[v] = truth
		}
	}
	return assign
}

// Decode turns one solver model into a Placement. It asserts the
// encoder invariant that exactly one position is true per component; any
// violation indicates a bug in the encoder or solver backend, not a
// caller error.
func (e *Encoder) Decode(model solver.Model, mapping *cnf.DimacsMapping) (Placement, error) {
	assign := modelAssignment(model, mapping)

	comps := make(map[geometry.Component]geometry.Position, len(e.components))
	for _, c := range e.components {
		var chosen geometry.Position
		count := 0
		for _, p := range e.positions[c] {
			if assign[e.compPos[c][p]] {
				chosen = p
				count++
			}
		}
		if count != 1 {
			return Placement{}, encoderInvariantf("component %q has %d true positions in this model, want exactly 1", c.Label(), count)
		}
		comps[c] = chosen
	}
	if len(comps) != len(e.components) {
		return Placement{}, encoderInvariantf("decoded %d placements, want %d (one per component)", len(comps), len(e.components))
	}

	var drilled []geometry.Coord
	for _, h := range e.sortedHoles() {
		if assign[e.drilled[h]] {
			drilled = append(drilled, h)
		}
	}

	var jumpers []Link
	for _, l := range e.links {
		if l.isJumper && assign[l.presence] {
			jumpers = append(jumpers, Link{A: l.a, B: l.b})
		}
	}
	sort.Slice(jumpers, func(i, j int) bool {
		if jumpers[i].A != jumpers[j].A {
			return jumpers[i].A.X < jumpers[j].A.X || (jumpers[i].A.X == jumpers[j].A.X && jumpers[i].A.Y < jumpers[j].A.Y)
		}
		return jumpers[i].B.X < jumpers[j].B.X || (jumpers[i].B.X == jumpers[j].B.X && jumpers[i].B.Y < jumpers[j].B.Y)
	})

	return Placement{Components: comps, Drilled: drilled, Jumpers: jumpers}, nil
}
