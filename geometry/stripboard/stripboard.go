// Package stripboard is a concrete geometry implementation: the
// canonical stripboard, every hole in a row pre-traced to its row
// neighbours, plus a simple two-terminal Resistor component whose
// Positions enumerate every straight placement of a given body length
// that fits the board.
package stripboard

import "github.com/boardsat/boardsat/geometry"

// Board is a rectangular strip of holes, Width columns by Height rows,
// each row's holes pre-traced left to right. Spaces coincide with
// Holes: the usual case for stripboard, where components sit directly
// on the holes they connect to.
type Board struct {
	Width, Height int
}

func (b Board) Holes() []geometry.Coord {
	out := make([]geometry.Coord, 0, b.Width*b.Height)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			out = append(out, geometry.Coord{X: x, Y: y})
		}
	}
	return out
}

func (b Board) Spaces() []geometry.Coord { return b.Holes() }

func (b Board) Traces() []geometry.TracePair {
	out := make([]geometry.TracePair, 0, b.Height*(b.Width-1))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width-1; x++ {
			out = append(out, geometry.TracePair{
				A: geometry.Coord{X: x, Y: y},
				B: geometry.Coord{X: x + 1, Y: y},
			})
		}
	}
	return out
}
