// Command boardsat is the CLI front end: a problem description supplied
// programmatically (board, components, nets), --first-only,
// --allow-drilled, --max-jumper-length N, --svg [PATH], and --solver
// NAME. Built with cobra and pflag.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/boardsat/boardsat/geometry"
	"github.com/boardsat/boardsat/internal/metrics"
	"github.com/boardsat/boardsat/placement"
	"github.com/boardsat/boardsat/solver"
	"github.com/boardsat/boardsat/svg"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		example         string
		firstOnly       bool
		allowDrilled    bool
		maxJumperLength int
		maxJumpers      int
		svgPath         string
		solverName      string
		debug           bool
		metricsAddr     string
	)

	cmd := &cobra.Command{
		Use:   "boardsat",
		Short: "Find circuit board placements satisfying a net list",
		Long: "boardsat encodes a component placement problem on a stripboard as a\n" +
			"Boolean satisfiability instance and enumerates solutions.",
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logrus.New()
			if debug {
				logger.SetLevel(logrus.DebugLevel)
			}

			prob, err := lookupProblem(example)
			if err != nil {
				return err
			}

			opts := placement.Options{
				AllowDrilled:    allowDrilled,
				MaxJumperLength: maxJumperLength,
				Solver:          solverName,
			}
			if cmd.Flags().Changed("max-jumpers") {
				opts.MaxJumpers = &maxJumpers
			}

			enc, err := placement.NewEncoder(prob.board, prob.components, prob.nets, opts)
			if err != nil {
				return err
			}

			m := metrics.New()
			enc.WithMetrics(m)
			if metricsAddr != "" {
				go serveMetrics(logger, metricsAddr, m)
			}

			adapter, ok := solver.Get(solverName)
			if !ok {
				return fmt.Errorf("unknown solver %q, want one of %v", solverName, solver.Names())
			}

			ctx := context.Background()

			if svgPath != "" {
				return runSVG(ctx, cmd, enc, adapter, prob.board, svgPath)
			}
			return runEnumerate(ctx, cmd, enc, adapter, firstOnly)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&example, "example", "loop3", fmt.Sprintf("built-in problem to solve, one of %v", problemNames()))
	flags.BoolVar(&firstOnly, "first-only", false, "stop after the first solution")
	flags.BoolVar(&allowDrilled, "allow-drilled", false, "permit drilling holes to break a trace")
	flags.IntVar(&maxJumperLength, "max-jumper-length", 0, "longest jumper wire allowed, in holes (0 disables jumpers)")
	flags.IntVar(&maxJumpers, "max-jumpers", 0, "cap on simultaneously installed jumpers")
	flags.StringVar(&svgPath, "svg", "", "write an SVG rendering of the first solution to PATH (- for stdout) instead of printing placements")
	flags.StringVar(&solverName, "solver", "gini", fmt.Sprintf("solver adapter to use, one of %v", solver.Names()))
	flags.BoolVar(&debug, "debug", false, "use debug log level")
	flags.StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address while solving")

	return cmd
}

func runEnumerate(ctx context.Context, cmd *cobra.Command, enc *placement.Encoder, adapter solver.Adapter, firstOnly bool) error {
	out := cmd.OutOrStdout()
	count := 0
	err := placement.Enumerate(ctx, enc, adapter, func(p placement.Placement) bool {
		printSolution(out, p)
		fmt.Fprintln(out)
		count++
		return !firstOnly
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d solutions\n", count)
	return nil
}

func runSVG(ctx context.Context, cmd *cobra.Command, enc *placement.Encoder, adapter solver.Adapter, board geometry.Board, path string) error {
	p, ok, err := placement.SolveOne(ctx, enc, adapter)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no solution found")
	}

	if path == "-" {
		return svg.DefaultRenderer{}.Render(cmd.OutOrStdout(), board, p)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return svg.DefaultRenderer{}.Render(f, board, p)
}
