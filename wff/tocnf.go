package wff

import "github.com/boardsat/boardsat/cnf"

// binding records a Tseitin variable introduced for an AddVar-marked
// subtree during extraction, to be defined in phase 8.
type binding struct {
	v   *cnf.Var
	sub Formula
}

// ToCNF converts f to CNF via eight fixed phases: extract AddVar-marked subtrees into fresh vars, eliminate
// IFF, eliminate IMPLIES, push NOT inward, distribute OR over AND, extract
// clauses, eliminate Boolean constants, then add polarity-optimized
// definitions for every extracted variable. arena supplies the fresh
// variables phase 1 needs.
func ToCNF(f Formula, arena *cnf.Arena) cnf.Expr {
	extracted, bindings := extractVars(f, arena)
	core := toCNFCore(extracted)

	vars := make([]*cnf.Var, len(bindings))
	for i, b := range bindings {
		vars[i] = b.v
	}
	pmap := polarityMap(core, vars)

	for _, b := range bindings {
		switch pmap[b.v] {
		case polarityBoth:
			core = core.Union(toCNFCore(Iff(Var(b.v), b.sub)))
		case polarityPos:
			core = core.Union(toCNFCore(Implies(Var(b.v), b.sub)))
		case polarityNeg:
			core = core.Union(toCNFCore(Implies(b.sub, Var(b.v))))
		case polarityNone:
			// unused: emit nothing.
		}
	}
	return core
}

// toCNFCore runs phases 2-7 on f; f must already be free of AddVar nodes.
func toCNFCore(f Formula) cnf.Expr {
	f = eliminateIff(f)
	f = eliminateImplies(f)
	f = pushNotInward(f)
	f = distribute(f)
	clauses := extractClauses(f)
	clauses = eliminateConstants(clauses)
	return cnf.NewExpr(clauses...)
}

// extractVars walks f bottom-up, replacing every AddVarFlag(sub) node with
// a reference to a fresh variable and collecting the (var, sub) bindings
// phase 8 will later define.
func extractVars(f Formula, arena *cnf.Arena) (Formula, []binding) {
	switch n := f.(type) {
	case atomNode:
		return n, nil
	case notNode:
		x, b := extractVars(n.x, arena)
		return notNode{x: x}, b
	case andNode:
		x, bx := extractVars(n.x, arena)
		y, by := extractVars(n.y, arena)
		return andNode{x: x, y: y}, append(bx, by...)
	case orNode:
		x, bx := extractVars(n.x, arena)
		y, by := extractVars(n.y, arena)
		return orNode{x: x, y: y}, append(bx, by...)
	case impliesNode:
		x, bx := extractVars(n.x, arena)
		y, by := extractVars(n.y, arena)
		return impliesNode{x: x, y: y}, append(bx, by...)
	case iffNode:
		x, bx := extractVars(n.x, arena)
		y, by := extractVars(n.y, arena)
		return iffNode{x: x, y: y}, append(bx, by...)
	case addVarNode:
		sub, b := extractVars(n.x, arena)
		v := arena.NewVar("")
		return atomNode{atom: v}, append(b, binding{v: v, sub: sub})
	default:
		panic("wff: unknown formula node in extractVars")
	}
}

func eliminateIff(f Formula) Formula {
	switch n := f.(type) {
	case atomNode:
		return n
	case notNode:
		return notNode{x: eliminateIff(n.x)}
	case andNode:
		return andNode{x: eliminateIff(n.x), y: eliminateIff(n.y)}
	case orNode:
		return orNode{x: eliminateIff(n.x), y: eliminateIff(n.y)}
	case impliesNode:
		return impliesNode{x: eliminateIff(n.x), y: eliminateIff(n.y)}
	case iffNode:
		x := eliminateIff(n.x)
		y := eliminateIff(n.y)
		return andNode{x: impliesNode{x: x, y: y}, y: impliesNode{x: y, y: x}}
	default:
		panic("wff: AddVar node survived extraction")
	}
}

func eliminateImplies(f Formula) Formula {
	switch n := f.(type) {
	case atomNode:
		return n
	case notNode:
		return notNode{x: eliminateImplies(n.x)}
	case andNode:
		return andNode{x: eliminateImplies(n.x), y: eliminateImplies(n.y)}
	case orNode:
		return orNode{x: eliminateImplies(n.x), y: eliminateImplies(n.y)}
	case impliesNode:
		x := eliminateImplies(n.x)
		y := eliminateImplies(n.y)
		return orNode{x: notNode{x: x}, y: y}
	default:
		panic("wff: iff/addVar node survived iff elimination")
	}
}

// pushNotInward applies De Morgan so that every remaining NOT wraps an
// atom directly.
func pushNotInward(f Formula) Formula { return push(f, false) }

func push(f Formula, neg bool) Formula {
	switch n := f.(type) {
	case atomNode:
		if neg {
			return notNode{x: n}
		}
		return n
	case notNode:
		return push(n.x, !neg)
	case andNode:
		x := push(n.x, neg)
		y := push(n.y, neg)
		if neg {
			return orNode{x: x, y: y}
		}
		return andNode{x: x, y: y}
	case orNode:
		x := push(n.x, neg)
		y := push(n.y, neg)
		if neg {
			return andNode{x: x, y: y}
		}
		return orNode{x: x, y: y}
	default:
		panic("wff: implies/iff/addVar node survived to pushNotInward")
	}
}

// distribute pushes OR under AND recursively until no OR sits above an
// AND.
func distribute(f Formula) Formula {
	switch n := f.(type) {
	case atomNode, notNode:
		return n
	case andNode:
		return andNode{x: distribute(n.x), y: distribute(n.y)}
	case orNode:
		return distributeOr(distribute(n.x), distribute(n.y))
	default:
		panic("wff: unexpected node in distribute")
	}
}

func distributeOr(x, y Formula) Formula {
	if ax, ok := x.(andNode); ok {
		return andNode{
			x: distribute(distributeOr(ax.x, y)),
			y: distribute(distributeOr(ax.y, y)),
		}
	}
	if ay, ok := y.(andNode); ok {
		return andNode{
			x: distribute(distributeOr(x, ay.x)),
			y: distribute(distributeOr(x, ay.y)),
		}
	}
	return orNode{x: x, y: y}
}

// extractClauses collects a conjunction of disjunctions of terms into a
// slice of cnf.Clause.
func extractClauses(f Formula) []cnf.Clause {
	if n, ok := f.(andNode); ok {
		return append(extractClauses(n.x), extractClauses(n.y)...)
	}
	return []cnf.Clause{cnf.NewClause(collectORTerms(f)...)}
}

func collectORTerms(f Formula) []cnf.Term {
	switch n := f.(type) {
	case orNode:
		return append(collectORTerms(n.x), collectORTerms(n.y)...)
	case notNode:
		a, ok := n.x.(atomNode)
		if !ok {
			panic("wff: negation must wrap an atom at clause-extraction time")
		}
		return []cnf.Term{{Atom: a.atom, Negated: true}}
	case atomNode:
		return []cnf.Term{{Atom: n.atom, Negated: false}}
	default:
		panic("wff: unexpected node in clause extraction")
	}
}

func eliminateConstants(clauses []cnf.Clause) []cnf.Clause {
	out := make([]cnf.Clause, 0, len(clauses))
clauseLoop:
	for _, c := range clauses {
		kept := make([]cnf.Term, 0, c.Len())
		for _, t := range c.Terms() {
			switch {
			case isTriviallyTrueLiteral(t):
				continue clauseLoop
			case isTriviallyFalseLiteral(t):
				continue
			default:
				kept = append(kept, t)
			}
		}
		out = append(out, cnf.NewClause(kept...))
	}
	return out
}

func isTriviallyTrueLiteral(t cnf.Term) bool {
	c, ok := t.Atom.(cnf.Const)
	if !ok {
		return false
	}
	return bool(c) != t.Negated
}

func isTriviallyFalseLiteral(t cnf.Term) bool {
	c, ok := t.Atom.(cnf.Const)
	if !ok {
		return false
	}
	return bool(c) == t.Negated
}

type polarity int

const (
	polarityNone polarity = iota
	polarityPos
	polarityNeg
	polarityBoth
)

type varOccurrence struct{ pos, neg bool }

// polarityMap computes, in a single pass over e's clauses, the polarity of
// every var in vars. Batching the scan rather than repeating it per
// binding is required by spec (each binding would otherwise cost
// O(total terms) on its own).
func polarityMap(e cnf.Expr, vars []*cnf.Var) map[*cnf.Var]polarity {
	occ := make(map[*cnf.Var]*varOccurrence, len(vars))
	for _, v := range vars {
		occ[v] = &varOccurrence{}
	}
	for _, c := range e.Clauses() {
		for _, t := range c.Terms() {
			v, ok := t.Atom.(*cnf.Var)
			if !ok {
				continue
			}
			o, tracked := occ[v]
			if !tracked {
				continue
			}
			if t.Negated {
				o.neg = true
			} else {
				o.pos = true
			}
		}
	}
	result := make(map[*cnf.Var]polarity, len(vars))
	for v, o := range occ {
		switch {
		case o.pos && o.neg:
			result[v] = polarityBoth
		case o.pos:
			result[v] = polarityPos
		case o.neg:
			result[v] = polarityNeg
		default:
			result[v] = polarityNone
		}
	}
	return result
}
