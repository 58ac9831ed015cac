package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/boardsat/boardsat/geometry"
	"github.com/boardsat/boardsat/placement"
)

// printSolution writes p as one line per component (sorted by label),
// each listing "<terminal-label>:(x,y)" pairs in the component's own
// terminal order, followed by a Drilled line and a Jumpers line.
func printSolution(w io.Writer, p placement.Placement) {
	comps := make([]geometry.Component, 0, len(p.Components))
	for c := range p.Components {
		comps = append(comps, c)
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i].Label() < comps[j].Label() })

	for _, comp := range comps {
		pos := p.Components[comp]
		terms := pos.TerminalPositions()
		fmt.Fprintf(w, "%s: ", comp.Label())
		for i, t := range comp.Terminals() {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "%s:%s", t.Label(), terms[t])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Drilled: %s\n", formatCoords(p.Drilled))
	fmt.Fprintf(w, "Jumpers: %s\n", formatLinks(p.Jumpers))
}

func formatCoords(coords []geometry.Coord) string {
	sorted := append([]geometry.Coord(nil), coords...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})
	out := "{"
	for i, c := range sorted {
		if i > 0 {
			out += ", "
		}
		out += c.String()
	}
	return out + "}"
}

func formatLinks(links []placement.Link) string {
	sorted := append([]placement.Link(nil), links...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].A != sorted[j].A {
			return sorted[i].A.X < sorted[j].A.X || (sorted[i].A.X == sorted[j].A.X && sorted[i].A.Y < sorted[j].A.Y)
		}
		return sorted[i].B.X < sorted[j].B.X || (sorted[i].B.X == sorted[j].B.X && sorted[i].B.Y < sorted[j].B.Y)
	})
	out := "{"
	for i, l := range sorted {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s-%s", l.A, l.B)
	}
	return out + "}"
}
