package cnf

import (
	"fmt"
	"sort"
	"strings"
)

// Expr is an unordered set of Clauses, semantically their conjunction.
// Union is commutative and associative.
type Expr struct {
	clauses map[any]Clause
}

func clauseKey(c Clause) any {
	terms := c.Terms()
	keys := make([]any, len(terms))
	for i, t := range terms {
		keys[i] = t.key()
	}
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
	return fmt.Sprint(keys)
}

// NewExpr builds an Expr from clauses, deduplicating structurally-equal
// clauses.
func NewExpr(clauses ...Clause) Expr {
	m := make(map[any]Clause, len(clauses))
	for _, c := range clauses {
		m[clauseKey(c)] = c
	}
	return Expr{clauses: m}
}

// Empty is the Expr with no clauses (vacuously true).
func Empty() Expr { return NewExpr() }

// Union returns a new Expr containing the clauses of both e and other.
func (e Expr) Union(other Expr) Expr {
	m := make(map[any]Clause, len(e.clauses)+len(other.clauses))
	for k, c := range e.clauses {
		m[k] = c
	}
	for k, c := range other.clauses {
		m[k] = c
	}
	return Expr{clauses: m}
}

// All concatenates a slice of Exprs into one.
func All(exprs ...Expr) Expr {
	out := Empty()
	for _, e := range exprs {
		out = out.Union(e)
	}
	return out
}

// Len returns the number of distinct clauses in e.
func (e Expr) Len() int { return len(e.clauses) }

// Clauses returns e's clauses in an unspecified but stable-per-call order.
func (e Expr) Clauses() []Clause {
	out := make([]Clause, 0, len(e.clauses))
	for _, c := range e.clauses {
		out = append(out, c)
	}
	return out
}

// Stats summarises an Expr's size: distinct clauses, total term occurrences
// across all clauses, and distinct Vars referenced.
type Stats struct {
	Clauses int
	Terms   int
	Vars    int
}

// Stats computes e's Stats in one pass.
func (e Expr) Stats() Stats {
	var terms int
	vars := map[*Var]struct{}{}
	for _, c := range e.clauses {
		terms += c.Len()
		for _, t := range c.Terms() {
			if v, ok := t.Atom.(*Var); ok {
				vars[v] = struct{}{}
			}
		}
	}
	return Stats{Clauses: len(e.clauses), Terms: terms, Vars: len(vars)}
}

func (e Expr) String() string {
	clauses := e.Clauses()
	strs := make([]string, len(clauses))
	for i, c := range clauses {
		strs[i] = "(" + c.String() + ")"
	}
	sort.Strings(strs)
	return strings.Join(strs, " ^ ")
}

// DimacsMapping assigns a dense, 1-based, stable integer id to every Var
// referenced by e, in an order determined by sorting Vars by their Arena
// id. It is the single source of truth both the in-process and the
// external-process solver adapters use to translate between *Var and
// DIMACS integers within one encoding run.
type DimacsMapping struct {
	varToID map[*Var]int
	idToVar []*Var // 1-based; idToVar[0] is unused
}

// NewDimacsMapping builds a DimacsMapping over every Var appearing in e.
func NewDimacsMapping(e Expr) *DimacsMapping {
	seen := map[*Var]struct{}{}
	for _, c := range e.clauses {
		for _, t := range c.Terms() {
			if v, ok := t.Atom.(*Var); ok {
				seen[v] = struct{}{}
			}
		}
	}
	vars := make([]*Var, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].id < vars[j].id })

	m := &DimacsMapping{
		varToID: make(map[*Var]int, len(vars)),
		idToVar: make([]*Var, len(vars)+1),
	}
	for i, v := range vars {
		id := i + 1
		m.varToID[v] = id
		m.idToVar[id] = v
	}
	return m
}

// NumVars returns the number of distinct Vars in the mapping.
func (m *DimacsMapping) NumVars() int { return len(m.idToVar) - 1 }

// IDOf returns v's 1-based DIMACS id, or 0 if v is not in the mapping.
func (m *DimacsMapping) IDOf(v *Var) int { return m.varToID[v] }

// VarOf returns the Var with the given 1-based DIMACS id, or nil if out of
// range.
func (m *DimacsMapping) VarOf(id int) *Var {
	if id <= 0 || id >= len(m.idToVar) {
		return nil
	}
	return m.idToVar[id]
}

// Literal returns the signed DIMACS literal for t, i.e. its Var's id
// negated iff t is negated. Panics if t's atom is not a *Var in this
// mapping; callers must run constant elimination (phase 7 of ToCNF) first.
func (m *DimacsMapping) Literal(t Term) int {
	v, ok := t.Atom.(*Var)
	if !ok {
		panic(fmt.Sprintf("cnf: cannot convert non-Var term %v to a DIMACS literal", t))
	}
	id := m.IDOf(v)
	if id == 0 {
		panic(fmt.Sprintf("cnf: var %v not present in this mapping", v))
	}
	if t.Negated {
		return -id
	}
	return id
}

// ClausesDIMACS renders e as DIMACS integer clauses using m, one []int per
// Clause, each literal signed and nonzero, in no particular clause order.
func (e Expr) ClausesDIMACS(m *DimacsMapping) [][]int {
	out := make([][]int, 0, len(e.clauses))
	for _, c := range e.clauses {
		terms := c.Terms()
		lits := make([]int, len(terms))
		for i, t := range terms {
			lits[i] = m.Literal(t)
		}
		out = append(out, lits)
	}
	return out
}
