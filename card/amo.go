// Package card implements the at-most-one/exactly-one commander encoding
// and the at-most-k sequential (LTseq, Sinz 2005) cardinality encoder.
package card

import "github.com/boardsat/boardsat/cnf"

// pairwiseAtMostOne emits the naive O(n^2) clause set forbidding any pair
// of vars from both being true.
func pairwiseAtMostOne(vars []*cnf.Var) cnf.Expr {
	clauses := make([]cnf.Clause, 0, len(vars)*(len(vars)-1)/2)
	for i := 0; i < len(vars); i++ {
		for j := i + 1; j < len(vars); j++ {
			clauses = append(clauses, cnf.NewClause(cnf.Neg(vars[i]), cnf.Neg(vars[j])))
		}
	}
	return cnf.NewExpr(clauses...)
}

// createCommander allocates a fresh commander variable for group, true iff
// at least one member of group is true.
func createCommander(arena *cnf.Arena, group []*cnf.Var) (*cnf.Var, cnf.Expr) {
	c := arena.NewVar("")

	atLeastOne := make([]cnf.Term, 0, len(group)+1)
	for _, v := range group {
		atLeastOne = append(atLeastOne, cnf.Pos(v))
	}
	atLeastOne = append(atLeastOne, cnf.Neg(c))

	clauses := make([]cnf.Clause, 0, len(group)+1)
	clauses = append(clauses, cnf.NewClause(atLeastOne...))
	for _, v := range group {
		clauses = append(clauses, cnf.NewClause(cnf.Pos(c), cnf.Neg(v)))
	}
	return c, cnf.NewExpr(clauses...)
}

// atMostOneReduce splits vars into groups of (up to) 3, replaces each with
// a commander variable, and returns the shorter commander list plus the
// constraints equivalent to at-most-one(vars) given at-most-one(commanders).
func atMostOneReduce(arena *cnf.Arena, vars []*cnf.Var) ([]*cnf.Var, cnf.Expr) {
	var commanders []*cnf.Var
	expr := cnf.Empty()
	for len(vars) > 0 {
		n := 3
		if len(vars) < n {
			n = len(vars)
		}
		group := vars[:n]
		vars = vars[n:]

		c, sub := createCommander(arena, group)
		commanders = append(commanders, c)
		expr = expr.Union(sub)
		expr = expr.Union(pairwiseAtMostOne(group))
	}
	return commanders, expr
}

// AtMostOne returns a CNF expression true iff at most one of vars is true.
// Below 6 variables it falls back to the naive pairwise encoding;
// otherwise it recursively replaces groups of 3 with commander variables
// (O(n) clauses) until fewer than 6 remain.
func AtMostOne(arena *cnf.Arena, vars []*cnf.Var) cnf.Expr {
	remaining := append([]*cnf.Var(nil), vars...)
	expr := cnf.Empty()
	for len(remaining) >= 6 {
		var sub cnf.Expr
		remaining, sub = atMostOneReduce(arena, remaining)
		expr = expr.Union(sub)
	}
	expr = expr.Union(pairwiseAtMostOne(remaining))
	return expr
}

// AtLeastOne returns a CNF expression true iff at least one of vars is
// true: a single clause, the disjunction of vars.
func AtLeastOne(vars []*cnf.Var) cnf.Expr {
	terms := make([]cnf.Term, len(vars))
	for i, v := range vars {
		terms[i] = cnf.Pos(v)
	}
	return cnf.NewExpr(cnf.NewClause(terms...))
}

// ExactlyOne returns a CNF expression true iff exactly one of vars is
// true.
func ExactlyOne(arena *cnf.Arena, vars []*cnf.Var) cnf.Expr {
	return AtLeastOne(vars).Union(AtMostOne(arena, vars))
}
