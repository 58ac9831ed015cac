package stripboard

import "github.com/boardsat/boardsat/geometry"

type resistorTerminal struct {
	label     string
	component *Resistor
}

func (t *resistorTerminal) Label() string                 { return t.label }
func (t *resistorTerminal) Component() geometry.Component { return t.component }

// Resistor is a two-terminal leaded component whose terminals sit
// 1..maxLength holes apart along a straight line, horizontally or
// vertically, in either terminal order. Its Occupies span covers every hole between the two terminals
// inclusive, matching how a real leaded component's body lies across the
// board.
type Resistor struct {
	label     string
	maxLength int
	t1, t2    *resistorTerminal
	color     string
}

// NewResistor returns a Resistor labeled label, placeable at any length
// from 1 to maxLength holes, rendered in color.
func NewResistor(label string, maxLength int, color string) *Resistor {
	r := &Resistor{label: label, maxLength: maxLength, color: color}
	r.t1 = &resistorTerminal{label: label + ".t1", component: r}
	r.t2 = &resistorTerminal{label: label + ".t2", component: r}
	return r
}

func (r *Resistor) Label() string { return r.label }
func (r *Resistor) Color() string { return r.color }

// T1 and T2 return the Resistor's two terminals.
func (r *Resistor) T1() geometry.Terminal { return r.t1 }
func (r *Resistor) T2() geometry.Terminal { return r.t2 }

func (r *Resistor) Terminals() []geometry.Terminal {
	return []geometry.Terminal{r.t1, r.t2}
}

type resistorPosition struct {
	occupies []geometry.Coord
	tp       map[geometry.Terminal]geometry.Coord
}

func (p *resistorPosition) Occupies() []geometry.Coord { return p.occupies }
func (p *resistorPosition) TerminalPositions() map[geometry.Terminal]geometry.Coord {
	return p.tp
}

// Positions enumerates, for every hole and every length 1..maxLength, in
// both axes and both terminal orderings, the straight placements that
// land entirely within board.Holes().
func (r *Resistor) Positions(board geometry.Board) []geometry.Position {
	holeSet := map[geometry.Coord]bool{}
	for _, h := range board.Holes() {
		holeSet[h] = true
	}

	steps := []geometry.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}}

	var out []geometry.Position
	for _, h := range board.Holes() {
		for _, step := range steps {
			for length := 1; length <= r.maxLength; length++ {
				other := geometry.Coord{X: h.X + step.X*length, Y: h.Y + step.Y*length}
				if !holeSet[other] {
					continue
				}
				occupies := make([]geometry.Coord, 0, length+1)
				for i := 0; i <= length; i++ {
					occupies = append(occupies, geometry.Coord{X: h.X + step.X*i, Y: h.Y + step.Y*i})
				}
				out = append(out,
					&resistorPosition{
						occupies: occupies,
						tp: map[geometry.Terminal]geometry.Coord{
							r.t1: h,
							r.t2: other,
						},
					},
					&resistorPosition{
						occupies: occupies,
						tp: map[geometry.Terminal]geometry.Coord{
							r.t2: h,
							r.t1: other,
						},
					},
				)
			}
		}
	}
	return out
}
