package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTerminal struct {
	label string
}

func (t *fakeTerminal) Label() string       { return t.label }
func (t *fakeTerminal) Component() Component { return nil }

type fakePosition struct {
	occupies []Coord
	tp       map[Terminal]Coord
}

func (p *fakePosition) Occupies() []Coord                   { return p.occupies }
func (p *fakePosition) TerminalPositions() map[Terminal]Coord { return p.tp }

func TestCanonicalizeDedupsStructurallyEqualPositions(t *testing.T) {
	t1 := &fakeTerminal{"t1"}
	t2 := &fakeTerminal{"t2"}

	a := &fakePosition{
		occupies: []Coord{{0, 0}, {1, 0}},
		tp:       map[Terminal]Coord{t1: {0, 0}, t2: {1, 0}},
	}
	// Same values, different object and different map iteration order
	// potential, different terminal objects with the same labels.
	b := &fakePosition{
		occupies: []Coord{{1, 0}, {0, 0}},
		tp:       map[Terminal]Coord{&fakeTerminal{"t2"}: {1, 0}, &fakeTerminal{"t1"}: {0, 0}},
	}
	c := &fakePosition{
		occupies: []Coord{{0, 0}, {2, 0}},
		tp:       map[Terminal]Coord{t1: {0, 0}, t2: {2, 0}},
	}

	out := Canonicalize([]Position{a, b, c})
	assert.Len(t, out, 2)
	assert.Same(t, a, out[0])
	assert.Same(t, c, out[1])
}
