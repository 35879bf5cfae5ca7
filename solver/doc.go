// Package solver implements five CNF decision procedures over the same
// Formula representation: two variants of Davis-Putnam (dp_default, dp),
// two of DPLL with explicit trail/journal backtracking (classical_dpll,
// dpll), and a two-literal-watching DPLL (dpll_watchers). Solve is the
// single entry point; each procedure is also exported individually for
// callers that want to pin a variant without going through Variant.
package solver
