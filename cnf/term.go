package cnf

import "fmt"

// Term is a possibly-negated atom. In CNF output the atom is always a *Var;
// in intermediate WFF-to-CNF passes it may still be a Const until phase 7
// (constant elimination) runs.
type Term struct {
	Atom    Atom
	Negated bool
}

// Pos returns a non-negated Term over a.
func Pos(a Atom) Term { return Term{Atom: a} }

// Neg returns a negated Term over a.
func Neg(a Atom) Term { return Term{Atom: a, Negated: true} }

// Not returns the negation of t.
func (t Term) Not() Term { return Term{Atom: t.Atom, Negated: !t.Negated} }

func (t Term) String() string {
	s := fmt.Sprint(t.Atom)
	if t.Negated {
		return "~" + s
	}
	return s
}

// key identifies a term uniquely for set membership, independent of whether
// the underlying atom is a *Var or Const.
func (t Term) key() any {
	switch a := t.Atom.(type) {
	case *Var:
		return struct {
			v *Var
			n bool
		}{a, t.Negated}
	case Const:
		return struct {
			c Const
			n bool
		}{a, t.Negated}
	default:
		panic(fmt.Sprintf("cnf: unknown atom type %T", a))
	}
}
