package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardsat/boardsat/cnf"
)

func evalExpr(e cnf.Expr, assign map[*cnf.Var]bool) bool {
	for _, c := range e.Clauses() {
		satisfied := false
		for _, t := range c.Terms() {
			v, ok := t.Atom.(*cnf.Var)
			if !ok {
				continue
			}
			val := assign[v]
			if t.Negated {
				val = !val
			}
			if val {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

func allVars(e cnf.Expr) []*cnf.Var {
	seen := map[*cnf.Var]bool{}
	var out []*cnf.Var
	for _, c := range e.Clauses() {
		for _, t := range c.Terms() {
			if v, ok := t.Atom.(*cnf.Var); ok && !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// countProjectedModels counts the assignments of choice for which some
// assignment of e's remaining (auxiliary) vars satisfies e. e here is
// small enough to brute force in full.
func countProjectedModels(e cnf.Expr, choice []*cnf.Var) int {
	aux := []*cnf.Var{}
	choiceSet := map[*cnf.Var]bool{}
	for _, v := range choice {
		choiceSet[v] = true
	}
	for _, v := range allVars(e) {
		if !choiceSet[v] {
			aux = append(aux, v)
		}
	}

	seen := map[string]bool{}
	n, m := len(choice), len(aux)
	for cm := 0; cm < (1 << uint(n)); cm++ {
		assignChoice := make(map[*cnf.Var]bool, n)
		key := make([]byte, n)
		for i, v := range choice {
			b := cm&(1<<uint(i)) != 0
			assignChoice[v] = b
			if b {
				key[i] = '1'
			} else {
				key[i] = '0'
			}
		}
		sat := false
		for am := 0; am < (1 << uint(m)); am++ {
			full := make(map[*cnf.Var]bool, n+m)
			for k, v := range assignChoice {
				full[k] = v
			}
			for i, v := range aux {
				full[v] = am&(1<<uint(i)) != 0
			}
			if evalExpr(e, full) {
				sat = true
				break
			}
		}
		if sat {
			seen[string(key)] = true
		}
	}
	return len(seen)
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	res := 1
	for i := 0; i < k; i++ {
		res = res * (n - i) / (i + 1)
	}
	return res
}

func TestAtMostOneModelCount(t *testing.T) {
	for _, n := range []int{1, 3, 5, 7, 9} {
		arena := cnf.NewArena()
		vars := make([]*cnf.Var, n)
		for i := range vars {
			vars[i] = arena.NewVar("")
		}
		expr := AtMostOne(arena, vars)
		got := countProjectedModels(expr, vars)
		assert.Equalf(t, n+1, got, "n=%d", n)
	}
}

func TestExactlyOneModelCount(t *testing.T) {
	for _, n := range []int{1, 3, 5, 7} {
		arena := cnf.NewArena()
		vars := make([]*cnf.Var, n)
		for i := range vars {
			vars[i] = arena.NewVar("")
		}
		expr := ExactlyOne(arena, vars)
		got := countProjectedModels(expr, vars)
		assert.Equalf(t, n, got, "n=%d", n)
	}
}

func TestAtMostKModelCount(t *testing.T) {
	cases := []struct{ n, k int }{
		{4, 1}, {5, 2}, {6, 3}, {4, 0}, {4, 4},
	}
	for _, tc := range cases {
		arena := cnf.NewArena()
		vars := make([]*cnf.Var, tc.n)
		for i := range vars {
			vars[i] = arena.NewVar("")
		}
		expr := AtMostK(arena, vars, tc.k)
		want := 0
		for i := 0; i <= tc.k; i++ {
			want += binomial(tc.n, i)
		}
		got := countProjectedModels(expr, vars)
		assert.Equalf(t, want, got, "n=%d k=%d", tc.n, tc.k)
	}
}

// S6: for n=10, k=3 the clause count equals 2nk+n-3k-1 = 60.
func TestAtMostKClauseCountS6(t *testing.T) {
	arena := cnf.NewArena()
	vars := make([]*cnf.Var, 10)
	for i := range vars {
		vars[i] = arena.NewVar("")
	}
	expr := AtMostK(arena, vars, 3)
	require.Equal(t, 2*10*3+10-3*3-1, expr.Len())
	require.Equal(t, 60, expr.Len())
}

func TestAtMostKClauseCountMatchesFormulaGenerally(t *testing.T) {
	for _, tc := range []struct{ n, k int }{
		{5, 1}, {6, 2}, {8, 3}, {12, 4},
	} {
		arena := cnf.NewArena()
		vars := make([]*cnf.Var, tc.n)
		for i := range vars {
			vars[i] = arena.NewVar("")
		}
		expr := AtMostK(arena, vars, tc.k)
		want := 2*tc.n*tc.k + tc.n - 3*tc.k - 1
		assert.Equalf(t, want, expr.Len(), "n=%d k=%d", tc.n, tc.k)
	}
}

func TestAtMostKZeroForcesAllFalse(t *testing.T) {
	arena := cnf.NewArena()
	vars := make([]*cnf.Var, 4)
	for i := range vars {
		vars[i] = arena.NewVar("")
	}
	expr := AtMostK(arena, vars, 0)
	got := countProjectedModels(expr, vars)
	assert.Equal(t, 1, got)
}
