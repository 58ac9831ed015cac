package placement

import "github.com/boardsat/boardsat/geometry"

// Link is an installed jumper: a conductive edge the solver chose to
// realise between two holes. Trace links are not represented here since
// their presence is a function of drilling, not a free choice; only
// jumpers are "realised" in the output sense.
type Link struct {
	A, B geometry.Coord
}

// Placement is one satisfying assignment: which Position each Component
// occupies, which holes are drilled out, and which jumpers are
// installed.
type Placement struct {
	Components map[geometry.Component]geometry.Position
	Drilled    []geometry.Coord
	Jumpers    []Link
}
