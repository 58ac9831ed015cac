package placement

import (
	"sort"

	"github.com/boardsat/boardsat/cnf"
	"github.com/boardsat/boardsat/geometry"
)

// link is either a trace link (presence gated by the two endpoints'
// drilled state) or a jumper link (presence freely chosen by the
// solver, additionally consuming board cells along its span). Both
// kinds carry a presence Var so the connectivity constraints can treat
// them uniformly.
type link struct {
	a, b     geometry.Coord
	presence *cnf.Var
	isJumper bool
	occupies []geometry.Coord // non-empty only for jumpers
}

// buildTraceLinks allocates one trace_pres Var per board trace.
func buildTraceLinks(arena *cnf.Arena, board geometry.Board) []link {
	traces := board.Traces()
	out := make([]link, len(traces))
	for i, t := range traces {
		out[i] = link{a: t.A, b: t.B, presence: arena.NewVar("")}
	}
	return out
}

// traceAdjacency returns, for every hole appearing in traces, the list
// of holes it is directly trace-connected to.
func traceAdjacency(traces []geometry.TracePair) map[geometry.Coord][]geometry.Coord {
	adj := map[geometry.Coord][]geometry.Coord{}
	for _, t := range traces {
		adj[t.A] = append(adj[t.A], t.B)
		adj[t.B] = append(adj[t.B], t.A)
	}
	return adj
}

// jumperRedundant reports whether every hole from h1 up to (not
// including) h2 along the given unit step has exactly one trace
// neighbour, the next hole along the step. A hole traced on both sides
// has two neighbours, so on a strip this holds only for a length-1
// jumper starting at an end hole of the strip; longer jumpers parallel
// to a trace are never reported redundant.
func jumperRedundant(adj map[geometry.Coord][]geometry.Coord, h1, h2, step geometry.Coord) bool {
	cur := h1
	for cur != h2 {
		next := geometry.Coord{X: cur.X + step.X, Y: cur.Y + step.Y}
		neighbours := adj[cur]
		if len(neighbours) != 1 || neighbours[0] != next {
			return false
		}
		cur = next
	}
	return true
}

// buildJumperLinks generates a jumper link for every hole, every length
// 1..maxLen, in both axes, landing inside holes, dropping links the
// trace graph already makes redundant. Each pair is generated exactly
// once, in the positive-axis direction, since a jumper is undirected.
func buildJumperLinks(arena *cnf.Arena, board geometry.Board, maxLen int) []link {
	if maxLen <= 0 {
		return nil
	}
	holeSet := map[geometry.Coord]bool{}
	for _, h := range board.Holes() {
		holeSet[h] = true
	}
	adj := traceAdjacency(board.Traces())

	steps := []geometry.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}}

	var out []link
	// Sorted iteration over holes keeps generation order deterministic
	// for reproducibility.
	holes := append([]geometry.Coord(nil), board.Holes()...)
	sort.Slice(holes, func(i, j int) bool {
		if holes[i].X != holes[j].X {
			return holes[i].X < holes[j].X
		}
		return holes[i].Y < holes[j].Y
	})

	for _, h1 := range holes {
		for _, step := range steps {
			for length := 1; length <= maxLen; length++ {
				h2 := geometry.Coord{X: h1.X + step.X*length, Y: h1.Y + step.Y*length}
				if !holeSet[h2] {
					continue
				}
				if jumperRedundant(adj, h1, h2, step) {
					continue
				}
				occupies := make([]geometry.Coord, 0, length+1)
				for i := 0; i <= length; i++ {
					occupies = append(occupies, geometry.Coord{X: h1.X + step.X*i, Y: h1.Y + step.Y*i})
				}
				out = append(out, link{
					a:        h1,
					b:        h2,
					presence: arena.NewVar(""),
					isJumper: true,
					occupies: occupies,
				})
			}
		}
	}
	return out
}

// neighbour is one entry of a hole's adjacency list for the
// term_conn/term_dist recursions: the other endpoint of a link incident
// to the hole, and that link's presence Var.
type neighbour struct {
	hole     geometry.Coord
	presence *cnf.Var
}

// buildAdjacency returns, for every hole, its neighbours across both
// trace and jumper links.
func buildAdjacency(links []link) map[geometry.Coord][]neighbour {
	adj := map[geometry.Coord][]neighbour{}
	for _, l := range links {
		adj[l.a] = append(adj[l.a], neighbour{hole: l.b, presence: l.presence})
		adj[l.b] = append(adj[l.b], neighbour{hole: l.a, presence: l.presence})
	}
	return adj
}
