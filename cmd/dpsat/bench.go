package main

import (
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/malchemis/dpsat/solver"
)

// newBenchCmd runs a variant over every file matching a glob, timing each
// one. Grounded on original_source/main.py's run_dp_on_files loop (glob a
// folder of .cnf files, solve each, log elapsed time, report the total).
func newBenchCmd() *cobra.Command {
	var variant string
	var repeat int

	cmd := &cobra.Command{
		Use:   "bench <glob>",
		Short: "Time a decision procedure over every file matching a glob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseVariant(variant)
			if err != nil {
				return err
			}
			files, err := filepath.Glob(args[0])
			if err != nil {
				return err
			}
			if len(files) == 0 {
				logrus.WithField("glob", args[0]).Warn("no files matched")
				return nil
			}

			total := time.Duration(0)
			for _, path := range files {
				for i := 0; i < repeat; i++ {
					// Solve mutates its Formula down to nothing, so each
					// repeat needs its own fresh parse.
					f, err := parseFile(path)
					if err != nil {
						logrus.WithError(err).WithField("file", path).Error("skipping file")
						break
					}
					start := time.Now()
					status, _ := solver.Solve(f, v)
					elapsed := time.Since(start)
					total += elapsed
					logrus.WithFields(logrus.Fields{
						"file":    path,
						"variant": v,
						"status":  status,
						"elapsed": elapsed,
					}).Info("solved")
				}
			}
			logrus.WithField("total", total).Info("bench finished")
			return nil
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "dpll", "decision procedure: dp-default, dp, classical-dpll, dpll, watchers")
	cmd.Flags().IntVar(&repeat, "repeat", 1, "number of times to solve each file (each repeat reparses, since Solve mutates its Formula)")
	return cmd
}
