package solver

import (
	"context"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// GiniAdapter delegates to the bundled gini CDCL solver, in-process.
// Literals are added clause-by-clause via z.Dimacs2Lit, terminated by the
// null literal, and the verdict is read off Solve()'s sat/unsat/unknown
// return convention.
type GiniAdapter struct{}

// NewGiniAdapter returns a ready-to-use in-process adapter.
func NewGiniAdapter() *GiniAdapter { return &GiniAdapter{} }

const (
	giniSatisfiable   = 1
	giniUnsatisfiable = -1
)

func (g *GiniAdapter) Solve(ctx context.Context, clauses [][]int, numVars int) (Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, &UnknownError{Reason: err.Error()}
	}

	s := gini.New()
	for _, clause := range clauses {
		for _, lit := range clause {
			s.Add(z.Dimacs2Lit(lit))
		}
		s.Add(z.LitNull)
	}

	switch s.Solve() {
	case giniSatisfiable:
		model := make(Model, numVars)
		for v := 1; v <= numVars; v++ {
			if s.Value(z.Dimacs2Lit(v)) {
				model[v-1] = v
			} else {
				model[v-1] = -v
			}
		}
		return model, nil
	case giniUnsatisfiable:
		return nil, ErrUnsatisfiable
	default:
		return nil, &UnknownError{Reason: "gini returned an unknown verdict"}
	}
}
