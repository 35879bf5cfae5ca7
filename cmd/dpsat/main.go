// Command dpsat is a DIMACS CNF CLI host around package solver: it picks a
// decision procedure, runs it, and reports the verdict. It is not part of
// the solver's public API — it exists to drive and benchmark it.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("dpsat failed")
		os.Exit(1)
	}
}
