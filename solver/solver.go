// Package solver implements the uniform adapter contract over a bundled
// in-process CDCL library and over an external DIMACS-speaking process,
// plus the default blocking-clause iteration and a short-name registry.
package solver

import (
	"context"
	"fmt"
)

// Model is a solver's verdict on satisfiability: a list of signed
// literals, one per variable, sign indicating the variable's assigned
// truth value.
type Model []int

// Adapter is the uniform interface over a SAT backend. clauses is in
// DIMACS convention (nonzero signed ints, positive = var, negative =
// negated var); numVars is the number of distinct variables the caller's
// id space uses, 1-based and dense.
//
// Solve returns a Model on success, ErrUnsatisfiable if no model exists,
// or an *UnknownError / *ProtocolError for anything else.
type Adapter interface {
	Solve(ctx context.Context, clauses [][]int, numVars int) (Model, error)
}

// ErrUnsatisfiable is returned by Solve when the given clauses admit no
// model. Iteration over Unsatisfiable ends cleanly; it is not surfaced as
// a failure.
var ErrUnsatisfiable = fmt.Errorf("solver: unsatisfiable")

// UnknownError reports that a backend could not determine satisfiability
// (timeout, unsupported output). It is always surfaced to the caller.
type UnknownError struct {
	Reason string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("solver: unknown: %s", e.Reason)
}

// ProtocolError reports a malformed response from an external-process
// adapter's child.
type ProtocolError struct {
	Line   string
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("solver: protocol error: %s (line %q)", e.Reason, e.Line)
}

// Iterate is the default blocking-clause iteration: after each model, the
// clause containing the negation of every literal in that model is
// appended to the working set, and Solve is called again, terminating on
// ErrUnsatisfiable. yield is called once per model; returning false from
// yield stops iteration early without error. Iterate blocks over every
// variable in the model. Callers that need a narrower blocking set (e.g.
// choice variables only) should drive Solve directly instead, as
// placement.Enumerate does.
func Iterate(ctx context.Context, a Adapter, clauses [][]int, numVars int, yield func(Model) bool) error {
	working := append([][]int(nil), clauses...)
	for {
		model, err := a.Solve(ctx, working, numVars)
		if err == ErrUnsatisfiable {
			return nil
		}
		if err != nil {
			return err
		}
		if !yield(model) {
			return nil
		}
		blocking := make([]int, len(model))
		for i, lit := range model {
			blocking[i] = -lit
		}
		working = append(working, blocking)
	}
}
