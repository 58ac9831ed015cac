package cnf

import (
	"sort"
	"strings"
)

// Clause is an unordered set of Terms, semantically their disjunction.
// After constant elimination a Clause contains no Const terms; the empty
// Clause is allowed and represents falsum.
type Clause struct {
	terms map[any]Term
}

// NewClause builds a Clause from terms, deduplicating structurally-equal
// terms the way a Python frozenset would.
func NewClause(terms ...Term) Clause {
	m := make(map[any]Term, len(terms))
	for _, t := range terms {
		m[t.key()] = t
	}
	return Clause{terms: m}
}

// Len returns the number of distinct terms in c.
func (c Clause) Len() int { return len(c.terms) }

// Terms returns c's terms in an unspecified but stable-per-call order.
func (c Clause) Terms() []Term {
	out := make([]Term, 0, len(c.terms))
	for _, t := range c.terms {
		out = append(out, t)
	}
	return out
}

// Union returns a new Clause containing the terms of both c and other.
func (c Clause) Union(other Clause) Clause {
	m := make(map[any]Term, len(c.terms)+len(other.terms))
	for k, t := range c.terms {
		m[k] = t
	}
	for k, t := range other.terms {
		m[k] = t
	}
	return Clause{terms: m}
}

// WithTerm returns a new Clause equal to c plus t.
func (c Clause) WithTerm(t Term) Clause {
	m := make(map[any]Term, len(c.terms)+1)
	for k, tt := range c.terms {
		m[k] = tt
	}
	m[t.key()] = t
	return Clause{terms: m}
}

func (c Clause) String() string {
	terms := c.Terms()
	strs := make([]string, len(terms))
	for i, t := range terms {
		strs[i] = t.String()
	}
	sort.Strings(strs)
	return strings.Join(strs, " v ")
}
