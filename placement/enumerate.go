package placement

import (
	"context"
	"time"

	"github.com/boardsat/boardsat/cnf"
	"github.com/boardsat/boardsat/solver"
)

// Enumerate streams every Placement satisfying e's constraint system,
// driving adapter directly rather than solver.Iterate so the blocking
// clause appended after each model ranges only over choice variables
// (comp_pos, drilled, jumper_pres), not the term_conn/term_dist/Tseitin
// auxiliaries. Two models differing only in an auxiliary's assignment
// would otherwise be reported as distinct placements.
//
// yield is called once per Placement; returning false stops enumeration
// early without error. Enumerate returns nil once the solver reports
// unsatisfiability, which silently ends enumeration; any other solver
// error is returned to the caller.
func Enumerate(ctx context.Context, e *Encoder, adapter solver.Adapter, yield func(Placement) bool) error {
	expr := e.Build()
	mapping := cnf.NewDimacsMapping(expr)
	clauses := expr.ClausesDIMACS(mapping)
	numVars := mapping.NumVars()

	working := append([][]int(nil), clauses...)
	for {
		solveStart := time.Now()
		model, err := adapter.Solve(ctx, working, numVars)
		e.metrics.ObserveSolve(time.Since(solveStart))
		if err == solver.ErrUnsatisfiable {
			return nil
		}
		if err != nil {
			return err
		}

		placement, err := e.Decode(model, mapping)
		if err != nil {
			return err
		}
		e.metrics.IncModelsYielded()
		if !yield(placement) {
			return nil
		}

		assign := modelAssignment(model, mapping)
		blocking := make([]int, 0, len(e.choiceVars))
		for _, v := range e.choiceVars {
			id := mapping.IDOf(v)
			if id == 0 {
				continue
			}
			if assign[v] {
				blocking = append(blocking, -id)
			} else {
				blocking = append(blocking, id)
			}
		}
		working = append(working, blocking)
	}
}
