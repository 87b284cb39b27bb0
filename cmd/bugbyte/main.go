// Command bugbyte solves edge-labelling puzzles such as Jane Street's
// "Bug Byte" and prints each solution with its decoded message.
//
// Usage:
//
//	bugbyte solve [--config puzzle.yaml] [--max n] [--timeout d] [--verbose]
//	bugbyte count [--config puzzle.yaml] [--workers n]
//
// Without --config the built-in Bug Byte puzzle is used.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/edgeweight/puzzle"
)

// app carries flag values and the logger shared by the subcommands.
type app struct {
	configPath string
	verbose    bool
	timeout    time.Duration
	maxSols    int
	workers    int

	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "bugbyte",
		Short:         "Solve edge-labelling graph puzzles",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			a.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "puzzle YAML file (default: built-in Bug Byte)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "abort the search after this long (0 = no limit)")

	solve := &cobra.Command{
		Use:   "solve",
		Short: "Enumerate solutions and decode their messages",
		Args:  cobra.NoArgs,
		RunE:  a.runSolve,
	}
	solve.Flags().IntVar(&a.maxSols, "max", 0, "stop after this many solutions (0 = all)")

	count := &cobra.Command{
		Use:   "count",
		Short: "Count solutions in parallel",
		Args:  cobra.NoArgs,
		RunE:  a.runCount,
	}
	count.Flags().IntVar(&a.workers, "workers", runtime.NumCPU(), "parallel workers")

	root.AddCommand(solve, count)

	return root
}

// load returns the configured puzzle, or the built-in one.
func (a *app) load() (*puzzle.Config, error) {
	if a.configPath == "" {
		return puzzle.BugByte(), nil
	}

	return puzzle.Load(a.configPath)
}

func (a *app) context(parent context.Context) (context.Context, context.CancelFunc) {
	if a.timeout > 0 {
		return context.WithTimeout(parent, a.timeout)
	}

	return context.WithCancel(parent)
}

func (a *app) runSolve(cmd *cobra.Command, _ []string) error {
	cfg, err := a.load()
	if err != nil {
		return err
	}
	p, err := puzzle.New(cfg, puzzle.WithLogger(a.logger), puzzle.WithMaxSolutions(a.maxSols))
	if err != nil {
		return err
	}
	ctx, cancel := a.context(cmd.Context())
	defer cancel()

	out := cmd.OutOrStdout()
	for sol, err := range p.Solve(ctx) {
		if sol == nil {
			return fmt.Errorf("solve %s: %w", p.Name(), err)
		}
		fmt.Fprintf(out, "solution %d: %v\n", sol.Index, sol.Assignment)
		switch {
		case err != nil:
			fmt.Fprintf(out, "  decode failed: %v\n", err)
		case sol.Message != nil:
			fmt.Fprintf(out, "  path %v message %q\n", sol.Message.Vertices, sol.Message.Text)
		}
	}

	s := p.Summary()
	fmt.Fprintf(out, "%d solution(s), %d nodes, %d failures in %s\n",
		s.Solutions, s.Nodes, s.Failures, s.Elapsed.Round(time.Millisecond))
	a.logger.Info("solve finished",
		zap.String("puzzle", p.Name()),
		zap.Int("solutions", s.Solutions),
		zap.Duration("elapsed", s.Elapsed))

	return nil
}

func (a *app) runCount(cmd *cobra.Command, _ []string) error {
	cfg, err := a.load()
	if err != nil {
		return err
	}
	p, err := puzzle.New(cfg, puzzle.WithLogger(a.logger), puzzle.WithParallelism(a.workers))
	if err != nil {
		return err
	}
	ctx, cancel := a.context(cmd.Context())
	defer cancel()

	start := time.Now()
	n, err := p.Count(ctx)
	if err != nil {
		return fmt.Errorf("count %s: %w", p.Name(), err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "solutions: %d (%d workers, %s)\n",
		n, a.workers, time.Since(start).Round(time.Millisecond))

	return nil
}
