package main

import (
	"fmt"
	"sort"

	"github.com/boardsat/boardsat/geometry"
	"github.com/boardsat/boardsat/geometry/stripboard"
)

// problem bundles a board/components/nets triple. There is no
// board-description file format, so the CLI ships a small registry of
// built-in problems instead.
type problem struct {
	board      geometry.Board
	components []geometry.Component
	nets       []geometry.Net
}

func threeResistorLoop() problem {
	board := stripboard.Board{Width: 2, Height: 3}
	r1 := stripboard.NewResistor("R1", 2, "red")
	r2 := stripboard.NewResistor("R2", 1, "green")
	r3 := stripboard.NewResistor("R3", 1, "blue")
	return problem{
		board:      board,
		components: []geometry.Component{r1, r2, r3},
		nets: []geometry.Net{
			{Terminals: []geometry.Terminal{r1.T2(), r2.T1()}},
			{Terminals: []geometry.Terminal{r2.T2(), r3.T1()}},
			{Terminals: []geometry.Terminal{r3.T2(), r1.T1()}},
		},
	}
}

func fourResistorLoop() problem {
	board := stripboard.Board{Width: 3, Height: 4}
	r1 := stripboard.NewResistor("R1", 3, "red")
	r2 := stripboard.NewResistor("R2", 1, "green")
	r3 := stripboard.NewResistor("R3", 1, "blue")
	r4 := stripboard.NewResistor("R4", 1, "yellow")
	return problem{
		board:      board,
		components: []geometry.Component{r1, r2, r3, r4},
		nets: []geometry.Net{
			{Terminals: []geometry.Terminal{r1.T2(), r2.T1()}},
			{Terminals: []geometry.Terminal{r2.T2(), r3.T1()}},
			{Terminals: []geometry.Terminal{r3.T2(), r4.T1()}},
			{Terminals: []geometry.Terminal{r4.T2(), r1.T1()}},
		},
	}
}

var problems = map[string]func() problem{
	"loop3": threeResistorLoop,
	"loop4": fourResistorLoop,
}

func problemNames() []string {
	names := make([]string, 0, len(problems))
	for name := range problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupProblem(name string) (problem, error) {
	build, ok := problems[name]
	if !ok {
		return problem{}, fmt.Errorf("unknown example %q, want one of %v", name, problemNames())
	}
	return build(), nil
}
