package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

// newRootCmd builds the dpsat command tree, grounded on
// operator-framework-deppy's cmd/root.NewRootCmd: one root carrying shared
// persistent flags, subcommands registered onto it.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dpsat",
		Short: "Runs CNF decision procedures (DP, DPLL, watched-literal DPLL)",
		Long: `dpsat solves DIMACS CNF problems with a choice of decision
procedure: the classical Davis-Putnam algorithm, DPLL with trail-based
backtracking, or DPLL with two-literal watching.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				lvl = logrus.InfoLevel
			}
			logrus.SetLevel(lvl)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.AddCommand(newSolveCmd())
	root.AddCommand(newBenchCmd())
	return root
}
