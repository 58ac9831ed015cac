package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdEnumeratesThreeResistorLoop(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--example", "loop3"})

	require.NoError(t, cmd.Execute())

	got := out.String()
	assert.Contains(t, got, "R1:")
	assert.Contains(t, got, "Drilled:")
	assert.Contains(t, got, "Jumpers:")
	assert.Contains(t, got, "2 solutions")
}

func TestRootCmdFirstOnlyStopsAfterOneSolution(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--example", "loop3", "--first-only"})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, 1, strings.Count(out.String(), "1 solutions"))
}

func TestRootCmdSVGWritesToStdout(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--example", "loop3", "--svg", "-"})

	require.NoError(t, cmd.Execute())

	assert.True(t, strings.HasPrefix(out.String(), "<svg "))
}

func TestRootCmdUnknownExample(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--example", "nope"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown example")
}
