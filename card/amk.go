package card

import "github.com/boardsat/boardsat/cnf"

// AtMostK returns a CNF expression true iff at most k of vars are true,
// using the sequential (LTseq) unary-counter encoding of Sinz (2005): for
// n = len(vars) and bound k, auxiliary registers s[i,j] (1 <= i < n,
// 1 <= j <= k) track whether at least j of the first i variables are
// true, and six clause families tie the registers to the p_i and forbid
// the (k+1)th true.
//
// Its exact clause count is 2*n*k + n - 3*k - 1 (for 0 < k < n); see
// DESIGN.md for the derivation.
func AtMostK(arena *cnf.Arena, vars []*cnf.Var, k int) cnf.Expr {
	if k < 0 {
		panic("card: AtMostK requires k >= 0")
	}
	n := len(vars)
	if k == 0 {
		clauses := make([]cnf.Clause, n)
		for i, v := range vars {
			clauses[i] = cnf.NewClause(cnf.Neg(v))
		}
		return cnf.NewExpr(clauses...)
	}
	if k >= n {
		return cnf.Empty()
	}

	// s[i-1][j-1] holds the register conventionally written s[i,j], for
	// i in 1..n-1, j in 1..k.
	s := make([][]*cnf.Var, n-1)
	for i := range s {
		s[i] = make([]*cnf.Var, k)
		for j := range s[i] {
			s[i][j] = arena.NewVar("")
		}
	}
	p := func(i int) *cnf.Var { return vars[i-1] }
	sv := func(i, j int) *cnf.Var { return s[i-1][j-1] }

	var clauses []cnf.Clause

	// p_1 -> s[1,1].
	clauses = append(clauses, cnf.NewClause(cnf.Neg(p(1)), cnf.Pos(sv(1, 1))))
	// ¬s[1,j], for j in 2..k: at most one of the first variable can be
	// "true", so the register tracking "at least 2 of the first 1" must
	// never be set.
	for j := 2; j <= k; j++ {
		clauses = append(clauses, cnf.NewClause(cnf.Neg(sv(1, j))))
	}
	// p_i -> s[i,1], for i in 2..n-1.
	for i := 2; i <= n-1; i++ {
		clauses = append(clauses, cnf.NewClause(cnf.Neg(p(i)), cnf.Pos(sv(i, 1))))
	}
	// s[i-1,j] -> s[i,j], for i in 2..n-1, j in 1..k.
	for i := 2; i <= n-1; i++ {
		for j := 1; j <= k; j++ {
			clauses = append(clauses, cnf.NewClause(cnf.Neg(sv(i-1, j)), cnf.Pos(sv(i, j))))
		}
	}
	// p_i ∧ s[i-1,j-1] -> s[i,j], for i in 2..n-1, j in 2..k.
	for i := 2; i <= n-1; i++ {
		for j := 2; j <= k; j++ {
			clauses = append(clauses, cnf.NewClause(cnf.Neg(p(i)), cnf.Neg(sv(i-1, j-1)), cnf.Pos(sv(i, j))))
		}
	}
	// p_i -> ¬s[i-1,k], for i in 2..n (covers both the general bound and
	// the p_n boundary case).
	for i := 2; i <= n; i++ {
		clauses = append(clauses, cnf.NewClause(cnf.Neg(p(i)), cnf.Neg(sv(i-1, k))))
	}

	return cnf.NewExpr(clauses...)
}
