// Package geometry defines the read-only contract the placement encoder
// consumes a board/component geometry library through. The stripboard
// subpackage is a reference implementation used by this repository's own
// tests and CLI example programs.
package geometry

import "fmt"

// Coord is an integer grid coordinate.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// TracePair is an unordered pair of holes conductively connected by a
// fixed board trace.
type TracePair struct {
	A, B Coord
}

// Board supplies hole/space coordinates and the fixed trace graph.
type Board interface {
	// Holes returns every (x,y) with an electrical connection point.
	Holes() []Coord
	// Spaces returns every (x,y) cell a component body may occupy.
	Spaces() []Coord
	// Traces returns the board's fixed conductive connections. Every hole
	// referenced by a TracePair must also appear in Holes.
	Traces() []TracePair
}

// Terminal is a labeled endpoint belonging to exactly one Component.
// Terminal identity is object identity: two Terminal values are the same
// terminal iff they are the same object.
type Terminal interface {
	Label() string
	Component() Component
}

// Position is one legal placement of a Component's body on a Board:
// the cells it covers, and where each of its Terminals lands.
//
// Positions are value-equal by (Occupies, TerminalPositions) though in
// practice treated by identity during encoding, so Canonicalize builds a
// deduplicated list per component once per run.
type Position interface {
	// Occupies returns the cells the component body covers at this
	// Position.
	Occupies() []Coord
	// TerminalPositions maps each of the component's Terminals to the
	// hole it lands on at this Position.
	TerminalPositions() map[Terminal]Coord
}

// Component carries a label, its Terminals, a rendering color, and an
// enumeration of its legal Positions on a given Board, already filtered
// so every terminal lands in board.Holes() and every occupied cell lies
// in board.Spaces().
type Component interface {
	Label() string
	Color() string
	Terminals() []Terminal
	Positions(board Board) []Position
}

// Net is an ordered sequence of Terminals that must be mutually
// electrically connected; the first terminal is the net's head, used as
// the representative for connectivity constraints. Every terminal must
// appear in exactly one Net.
type Net struct {
	Terminals []Terminal
}

// Head returns the net's head terminal, the first in Terminals.
func (n Net) Head() Terminal {
	return n.Terminals[0]
}
