package svg

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardsat/boardsat/geometry"
	"github.com/boardsat/boardsat/geometry/stripboard"
	"github.com/boardsat/boardsat/placement"
	"github.com/boardsat/boardsat/solver"
)

func TestDefaultRendererProducesWellFormedSVG(t *testing.T) {
	board := stripboard.Board{Width: 2, Height: 3}
	r1 := stripboard.NewResistor("R1", 2, "red")
	r2 := stripboard.NewResistor("R2", 1, "green")
	r3 := stripboard.NewResistor("R3", 1, "blue")
	comps := []geometry.Component{r1, r2, r3}
	nets := []geometry.Net{
		{Terminals: []geometry.Terminal{r1.T2(), r2.T1()}},
		{Terminals: []geometry.Terminal{r2.T2(), r3.T1()}},
		{Terminals: []geometry.Terminal{r3.T2(), r1.T1()}},
	}

	zero := 0
	enc, err := placement.NewEncoder(board, comps, nets, placement.Options{AllowDrilled: false, MaxJumpers: &zero})
	require.NoError(t, err)

	p, ok, err := placement.SolveOne(context.Background(), enc, solver.NewGiniAdapter())
	require.NoError(t, err)
	require.True(t, ok)

	var buf strings.Builder
	require.NoError(t, DefaultRenderer{}.Render(&buf, board, p))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
	assert.Contains(t, out, "hole-mask")
	assert.Contains(t, out, "R1")
}
