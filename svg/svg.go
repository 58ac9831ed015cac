// Package svg renders a placement.Placement to SVG. Renderer is the
// contract cmd/boardsat's --svg flag calls through. DefaultRenderer draws
// the board's holes and fixed traces plus any drilled holes and
// installed jumpers from the Placement.
package svg

import (
	"fmt"
	"io"

	"github.com/boardsat/boardsat/geometry"
	"github.com/boardsat/boardsat/placement"
)

const (
	lineWidth      = 1.0
	pixelsPerCell  = 30.0
	holeRadius     = 5.0
	holeColor      = "black"
	traceColor     = "black"
	jumperColor    = "red"
	drilledFill    = "white"
	drilledStroke  = "red"
	componentWidth = 2.0
)

// Renderer writes an SVG rendering of a Placement on board to w.
type Renderer interface {
	Render(w io.Writer, board geometry.Board, p placement.Placement) error
}

// DefaultRenderer draws the board's holes and fixed traces, plus drilled
// holes and installed jumpers from the Placement.
type DefaultRenderer struct{}

func toPixel(c geometry.Coord, center bool) (float64, float64) {
	x, y := float64(c.X), float64(c.Y)
	if center {
		x += 0.5
		y += 0.5
	}
	return x * pixelsPerCell, y * pixelsPerCell
}

func (DefaultRenderer) Render(w io.Writer, board geometry.Board, p placement.Placement) error {
	holes := board.Holes()
	maxX, maxY := 0, 0
	for _, h := range holes {
		if h.X > maxX {
			maxX = h.X
		}
		if h.Y > maxY {
			maxY = h.Y
		}
	}
	width := pixelsPerCell * float64(maxX+1)
	height := pixelsPerCell * float64(maxY+1)

	bw := &bufErrWriter{w: w}

	fmt.Fprintf(bw, "<svg width=\"%g\" height=\"%g\">\n", width, height)

	drilled := map[geometry.Coord]bool{}
	for _, c := range p.Drilled {
		drilled[c] = true
	}

	fmt.Fprintln(bw, `<mask id="hole-mask">`)
	fmt.Fprintln(bw, `<rect width="100%" height="100%" x="0" y="0" fill="white" />`)
	for _, h := range holes {
		cx, cy := toPixel(h, true)
		fmt.Fprintf(bw, `<circle cx="%g" cy="%g" r="%g" fill="black" stroke="black" stroke-width="%g" />`+"\n",
			cx, cy, holeRadius, lineWidth)
	}
	fmt.Fprintln(bw, `</mask>`)

	for _, tr := range board.Traces() {
		if drilled[tr.A] || drilled[tr.B] {
			continue
		}
		ax, ay := toPixel(tr.A, true)
		bx, by := toPixel(tr.B, true)
		fmt.Fprintf(bw, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="%g" mask="url(#hole-mask)" />`+"\n",
			ax, ay, bx, by, traceColor, lineWidth)
	}

	for _, j := range p.Jumpers {
		ax, ay := toPixel(j.A, true)
		bx, by := toPixel(j.B, true)
		fmt.Fprintf(bw, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="%g" mask="url(#hole-mask)" />`+"\n",
			ax, ay, bx, by, jumperColor, lineWidth)
	}

	for _, h := range holes {
		cx, cy := toPixel(h, true)
		fill := "transparent"
		stroke := holeColor
		if drilled[h] {
			fill = drilledFill
			stroke = drilledStroke
		}
		fmt.Fprintf(bw, `<circle cx="%g" cy="%g" r="%g" stroke="%s" stroke-width="%g" fill="%s" />`+"\n",
			cx, cy, holeRadius, stroke, lineWidth, fill)
	}

	for comp, pos := range p.Components {
		for _, t := range comp.Terminals() {
			c, ok := pos.TerminalPositions()[t]
			if !ok {
				continue
			}
			cx, cy := toPixel(c, true)
			fmt.Fprintf(bw, `<text x="%g" y="%g" font-size="10" fill="%s">%s</text>`+"\n",
				cx+holeRadius, cy-holeRadius, comp.Color(), comp.Label())
		}
	}

	fmt.Fprintln(bw, `</svg>`)
	return bw.err
}

// bufErrWriter remembers the first write error so callers can check once
// at the end instead of after every Fprint.
type bufErrWriter struct {
	w   io.Writer
	err error
}

func (b *bufErrWriter) Write(p []byte) (int, error) {
	if b.err != nil {
		return 0, b.err
	}
	n, err := b.w.Write(p)
	if err != nil {
		b.err = err
	}
	return n, err
}
