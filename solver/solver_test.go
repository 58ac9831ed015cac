package solver

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAdapter returns models from a fixed queue, then ErrUnsatisfiable.
type fakeAdapter struct {
	models []Model
	calls  int
}

func (f *fakeAdapter) Solve(_ context.Context, _ [][]int, _ int) (Model, error) {
	f.calls++
	if f.calls > len(f.models) {
		return nil, ErrUnsatisfiable
	}
	return f.models[f.calls-1], nil
}

func TestIterateYieldsAllModelsThenStopsOnUnsat(t *testing.T) {
	fake := &fakeAdapter{models: []Model{{1, -2}, {-1, 2}}}
	var got []Model
	err := Iterate(context.Background(), fake, [][]int{{1, -2}}, 2, func(m Model) bool {
		got = append(got, m)
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, []Model{{1, -2}, {-1, 2}}, got)
	assert.Equal(t, 3, fake.calls) // two models plus the final unsat probe
}

func TestIterateStopsEarlyWhenYieldReturnsFalse(t *testing.T) {
	fake := &fakeAdapter{models: []Model{{1, -2}, {-1, 2}}}
	var got []Model
	err := Iterate(context.Background(), fake, nil, 2, func(m Model) bool {
		got = append(got, m)
		return false
	})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, fake.calls)
}

type unknownAdapter struct{}

func (unknownAdapter) Solve(context.Context, [][]int, int) (Model, error) {
	return nil, &UnknownError{Reason: "timeout"}
}

func TestIterateSurfacesUnknown(t *testing.T) {
	err := Iterate(context.Background(), unknownAdapter{}, nil, 1, func(Model) bool { return true })
	require.Error(t, err)
	var unk *UnknownError
	assert.ErrorAs(t, err, &unk)
}

func TestRegistryGiniIsDefault(t *testing.T) {
	a, ok := Get("gini")
	require.True(t, ok)
	assert.IsType(t, &GiniAdapter{}, a)
}

func TestRegistryUnknownName(t *testing.T) {
	_, ok := Get("no-such-solver")
	assert.False(t, ok)
}

func TestWriteDimacsHeaderAndClauses(t *testing.T) {
	var buf bytes.Buffer
	err := writeDimacs(&buf, [][]int{{1, -2}, {3}}, 3)
	require.NoError(t, err)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "p cnf 3 2", lines[0])
	assert.Equal(t, "1 -2 0", lines[1])
	assert.Equal(t, "3 0", lines[2])
}

func TestReadDimacsResultSat(t *testing.T) {
	r := strings.NewReader("s SATISFIABLE\nv 1 -2 3 0\n")
	model, err := readDimacsResult(r)
	require.NoError(t, err)
	assert.Equal(t, Model{1, -2, 3}, model)
}

func TestReadDimacsResultUnsat(t *testing.T) {
	r := strings.NewReader("s UNSATISFIABLE\n")
	_, err := readDimacsResult(r)
	assert.Equal(t, ErrUnsatisfiable, err)
}

func TestReadDimacsResultMalformedLiteral(t *testing.T) {
	r := strings.NewReader("s SATISFIABLE\nv 1 notanumber 0\n")
	_, err := readDimacsResult(r)
	require.Error(t, err)
	var perr *ProtocolError
	assert.ErrorAs(t, err, &perr)
}

func TestReadDimacsResultNoVerdictIsUnknown(t *testing.T) {
	r := strings.NewReader("c some comment\n")
	_, err := readDimacsResult(r)
	require.Error(t, err)
	var unk *UnknownError
	assert.ErrorAs(t, err, &unk)
}

func TestProcessAdapterResolveCommandEnvOverride(t *testing.T) {
	t.Setenv(SolverCmdEnv, "/usr/local/bin/my-solver")
	p := &ProcessAdapter{}
	assert.Equal(t, "/usr/local/bin/my-solver", p.resolveCommand())
}

func TestProcessAdapterResolveCommandExplicitWins(t *testing.T) {
	t.Setenv(SolverCmdEnv, "/usr/local/bin/my-solver")
	p := &ProcessAdapter{Command: "/opt/other-solver"}
	assert.Equal(t, "/opt/other-solver", p.resolveCommand())
}

func TestProcessAdapterResolveCommandDefault(t *testing.T) {
	p := &ProcessAdapter{}
	assert.Equal(t, defaultSolverCmd, p.resolveCommand())
}
