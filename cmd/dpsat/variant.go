package main

import (
	"fmt"

	"github.com/malchemis/dpsat/solver"
)

// variantNames maps the CLI's hyphenated flag vocabulary onto the
// snake_case Variant the solver package itself uses (matching the
// original_source function names it was ported from).
var variantNames = map[string]solver.Variant{
	"dp-default":     solver.DPDefault,
	"dp":             solver.DP,
	"classical-dpll": solver.ClassicalDPLL,
	"dpll":           solver.DPLL,
	"watchers":       solver.DPLLWatchers,
}

func parseVariant(name string) (solver.Variant, error) {
	v, ok := variantNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown variant %q (want one of dp-default, dp, classical-dpll, dpll, watchers)", name)
	}
	return v, nil
}
