package solver

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SolverCmdEnv names the environment variable that overrides the default
// external solver binary. If unset, the adapter falls back to a fixed
// default name looked up on PATH.
const SolverCmdEnv = "BOARDSAT_SOLVER_CMD"

// defaultSolverCmd is the fixed default name looked up on PATH when
// SolverCmdEnv is unset.
const defaultSolverCmd = "lingeling"

// ProcessAdapter speaks the DIMACS child-process protocol: writes a "p
// cnf V C" header and one clause per line, closes stdin, and parses "s
// UNSATISFIABLE"/"s SATISFIABLE"/"v ..." lines from stdout.
type ProcessAdapter struct {
	// Command overrides the child binary path. If empty, SolverCmdEnv is
	// consulted, then defaultSolverCmd.
	Command string
}

// NewProcessAdapter returns a ProcessAdapter using command, or the
// environment/default lookup if command is empty.
func NewProcessAdapter(command string) *ProcessAdapter {
	return &ProcessAdapter{Command: command}
}

func (p *ProcessAdapter) resolveCommand() string {
	if p.Command != "" {
		return p.Command
	}
	if v := os.Getenv(SolverCmdEnv); v != "" {
		return v
	}
	return defaultSolverCmd
}

func (p *ProcessAdapter) Solve(ctx context.Context, clauses [][]int, numVars int) (Model, error) {
	cmd := exec.CommandContext(ctx, p.resolveCommand())

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrap(err, "solver: opening child stdin")
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "solver: opening child stdout")
	}

	if err := cmd.Start(); err != nil {
		return nil, errors.Wrap(err, "solver: starting external solver process")
	}

	writeErrCh := make(chan error, 1)
	go func() {
		writeErrCh <- writeDimacs(stdin, clauses, numVars)
		stdin.Close()
	}()

	model, solveErr := readDimacsResult(stdout)

	waitErr := cmd.Wait()
	writeErr := <-writeErrCh

	if solveErr != nil {
		return nil, solveErr
	}
	if writeErr != nil {
		return nil, errors.Wrap(writeErr, "solver: writing DIMACS input to child")
	}
	if waitErr != nil && model == nil {
		return nil, errors.Wrap(waitErr, "solver: external solver process exited with an error")
	}
	return model, nil
}

func writeDimacs(w io.Writer, clauses [][]int, numVars int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", numVars, len(clauses)); err != nil {
		return err
	}
	for _, clause := range clauses {
		for _, lit := range clause {
			if _, err := fmt.Fprintf(bw, "%d ", lit); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func readDimacsResult(r io.Reader) (Model, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var model Model
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "s UNSATISFIABLE"):
			return nil, ErrUnsatisfiable
		case strings.HasPrefix(line, "s SATISFIABLE"):
			// Model literals follow on subsequent "v " lines.
		case strings.HasPrefix(line, "v "):
			fields := strings.Fields(line)[1:]
			for _, f := range fields {
				n, err := strconv.Atoi(f)
				if err != nil {
					return nil, &ProtocolError{Line: line, Reason: "non-integer literal"}
				}
				if n == 0 {
					return model, nil
				}
				model = append(model, n)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "solver: reading child stdout")
	}
	return nil, &UnknownError{Reason: "external solver produced no satisfiability verdict"}
}
