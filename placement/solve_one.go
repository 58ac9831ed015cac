package placement

import (
	"context"
	"time"

	"github.com/boardsat/boardsat/cnf"
	"github.com/boardsat/boardsat/solver"
)

// SolveOne returns the first Placement satisfying e's constraint system,
// or (Placement{}, false, nil) if none exists. Any non-Unsatisfiable
// solver error is returned.
func SolveOne(ctx context.Context, e *Encoder, adapter solver.Adapter) (Placement, bool, error) {
	expr := e.Build()
	mapping := cnf.NewDimacsMapping(expr)
	clauses := expr.ClausesDIMACS(mapping)

	solveStart := time.Now()
	model, err := adapter.Solve(ctx, clauses, mapping.NumVars())
	e.metrics.ObserveSolve(time.Since(solveStart))
	if err == solver.ErrUnsatisfiable {
		return Placement{}, false, nil
	}
	if err != nil {
		return Placement{}, false, err
	}
	p, err := e.Decode(model, mapping)
	if err != nil {
		return Placement{}, false, err
	}
	e.metrics.IncModelsYielded()
	return p, true, nil
}
