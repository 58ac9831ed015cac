package geometry

import (
	"sort"

	"github.com/mitchellh/hashstructure"
)

// positionSnapshot is a deterministic, pointer-free rendering of a
// Position, suitable for hashstructure.Hash: Terminals are keyed by their
// stable Label rather than by interface identity, and both slices are
// sorted so structurally identical positions hash identically regardless
// of the order a Component's Positions method happened to emit them in.
type positionSnapshot struct {
	Occupies  []Coord
	Terminals []terminalSnapshot
}

type terminalSnapshot struct {
	Label string
	Hole  Coord
}

func snapshot(p Position) positionSnapshot {
	occupies := append([]Coord(nil), p.Occupies()...)
	sort.Slice(occupies, func(i, j int) bool {
		if occupies[i].X != occupies[j].X {
			return occupies[i].X < occupies[j].X
		}
		return occupies[i].Y < occupies[j].Y
	})

	tp := p.TerminalPositions()
	terminals := make([]terminalSnapshot, 0, len(tp))
	for t, hole := range tp {
		terminals = append(terminals, terminalSnapshot{Label: t.Label(), Hole: hole})
	}
	sort.Slice(terminals, func(i, j int) bool {
		return terminals[i].Label < terminals[j].Label
	})

	return positionSnapshot{Occupies: occupies, Terminals: terminals}
}

// Canonicalize deduplicates structurally-identical positions (same
// Occupies set, same terminal-to-hole mapping) before the encoder
// allocates a comp_pos variable for each. Order of the first occurrence
// of each distinct position is preserved.
func Canonicalize(positions []Position) []Position {
	seen := make(map[uint64]struct{}, len(positions))
	out := make([]Position, 0, len(positions))
	for _, p := range positions {
		h, err := hashstructure.Hash(snapshot(p), nil)
		if err != nil {
			panic("geometry: hashing a position snapshot failed: " + err.Error())
		}
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, p)
	}
	return out
}
