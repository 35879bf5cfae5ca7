package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/malchemis/dpsat/solver"
)

// solveResult carries a Solve call's outcome across the timeout worker's
// channel.
type solveResult struct {
	status solver.Status
	model  solver.Model
}

func newSolveCmd() *cobra.Command {
	var variant string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "solve <file.cnf>",
		Short: "Solve a single DIMACS CNF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseVariant(variant)
			if err != nil {
				return err
			}
			f, err := parseFile(args[0])
			if err != nil {
				return err
			}
			status, model, err := runWithTimeout(f, v, timeout)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), status, model)
			return nil
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "dpll", "decision procedure: dp-default, dp, classical-dpll, dpll, watchers")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abandon the solve after this long (0 disables the timeout)")
	return cmd
}

func parseFile(path string) (*solver.Formula, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()
	f, err := solver.ParseCNF(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// runWithTimeout runs Solve on a worker goroutine, per SPEC_FULL.md's
// concurrency model: the solver core has no cancellation points, so a
// timeout abandons the wait rather than stopping the computation — the
// goroutine keeps running (and is garbage-collected once it finishes and
// nobody reads its result), but the CLI stops blocking on it.
func runWithTimeout(f *solver.Formula, v solver.Variant, timeout time.Duration) (solver.Status, solver.Model, error) {
	done := make(chan solveResult, 1)
	go func() {
		status, model := solver.Solve(f, v)
		done <- solveResult{status: status, model: model}
	}()

	if timeout <= 0 {
		r := <-done
		return r.status, r.model, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	select {
	case r := <-done:
		return r.status, r.model, nil
	case <-ctx.Done():
		return solver.Indet, nil, fmt.Errorf("solve abandoned after %s (variant %s)", timeout, v)
	}
}

// printResult prints the verdict and, on SAT, the model as a DIMACS "v"
// line, grounded on gophersat's OutputModel (fmt.Printf("v "), signed
// 1-based literals, trailing newline).
func printResult(w io.Writer, status solver.Status, model solver.Model) {
	fmt.Fprintln(w, status)
	if status != solver.Sat {
		return
	}
	fmt.Fprint(w, "v ")
	for v := range model {
		lit := v + 1
		if model[v] < 0 {
			lit = -lit
		}
		fmt.Fprintf(w, "%d ", lit)
	}
	fmt.Fprintln(w, "0")
	logrus.WithField("nbVars", len(model)).Debug("model printed")
}
