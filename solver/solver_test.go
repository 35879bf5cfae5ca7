package solver

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allVariants = []Variant{DPDefault, DP, ClassicalDPLL, DPLL, DPLLWatchers}

// evalCNF reports whether model satisfies cnf, independent of whatever a
// Formula built from cnf looked like by the time a procedure returned: DP
// and DPLL mutate their Formula down to nothing as they solve, so
// correctness has to be checked against the original problem.
func evalCNF(cnf [][]int, model Model) bool {
	for _, clause := range cnf {
		sat := false
		for _, lit := range clause {
			v := IntToVar(abs(lit))
			if lit > 0 && model[v] == 1 {
				sat = true
				break
			}
			if lit < 0 && model[v] == -1 {
				sat = true
				break
			}
		}
		if !sat {
			return false
		}
	}
	return true
}

func TestSolveVariantsAgree(t *testing.T) {
	cases := []struct {
		name string
		cnf  [][]int
		want Status
	}{
		{"empty formula", [][]int{}, Sat},
		{"single unit", [][]int{{1}}, Sat},
		{"unit conflict", [][]int{{1}, {-1}}, Unsat},
		{"tautology reduces to sat", [][]int{{1, -1, 2}, {2, 3}}, Sat},
		{"pure literal sat", [][]int{{1, 2}, {1, 3}, {1, -4}}, Sat},
		{"small unsat chain", [][]int{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}}, Unsat},
		{
			"horn-like sat", [][]int{
				{1}, {-1, 2}, {-2, 3}, {-3, 4, 5}, {-4}, {5},
			}, Sat,
		},
		{
			"pigeonhole PHP(3,2) unsat", [][]int{
				// each of 3 pigeons in one of 2 holes
				{1, 2}, {3, 4}, {5, 6},
				// no hole holds two pigeons: vars 2i-1/2i encode pigeon i, hole a/b
				{-1, -3}, {-1, -5}, {-3, -5},
				{-2, -4}, {-2, -6}, {-4, -6},
			}, Unsat,
		},
		{
			// Regresses a bug specific to the watched-literal engine: binding
			// var 1 false satisfies {-1,3} and {-1,-3} (both contain the
			// literal just bound), dropping its negative count to 0 while its
			// positive count (from {1,2}, not yet satisfied) stays nonzero —
			// if purity were read from the count tables without checking the
			// model, var 1 would be misdetected as pure-positive and flipped
			// back to true after already being decided false.
			"watcher purity must not override a bound variable",
			[][]int{{1, 2}, {-1, 3}, {-1, -3}},
			Sat,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, v := range allVariants {
				f := ParseSlice(tc.cnf)
				status, model := Solve(f, v)
				require.Equalf(t, tc.want, status, "variant %s", v)
				if status == Sat {
					assert.Truef(t, evalCNF(tc.cnf, model), "variant %s returned a model violating %v: %v", v, tc.cnf, model)
				}
			}
		})
	}
}

func TestSolveRandom3SAT(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const nbVars = 6
	for trial := 0; trial < 20; trial++ {
		nbClauses := 3 + rng.Intn(12)
		cnf := make([][]int, nbClauses)
		for i := range cnf {
			clause := make([]int, 3)
			for j := range clause {
				v := rng.Intn(nbVars) + 1
				if rng.Intn(2) == 0 {
					v = -v
				}
				clause[j] = v
			}
			cnf[i] = clause
		}

		var reference Status
		results := make([]Status, len(allVariants))
		for i, v := range allVariants {
			f := ParseSlice(cnf)
			status, model := Solve(f, v)
			results[i] = status
			if status == Sat {
				require.Truef(t, evalCNF(cnf, model), "trial %d variant %s: model violates %v", trial, v, cnf)
			}
			if i == 0 {
				reference = status
			}
		}
		for i, status := range results {
			require.Equalf(t, reference, status, "trial %d: variant %s disagrees with %s on %v", trial, allVariants[i], allVariants[0], cnf)
		}
	}
}

func TestParseCNFRoundTrip(t *testing.T) {
	src := "c a comment\np cnf 3 2\n1 -2 0\n2 3 0\n"
	f, err := ParseCNF(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 3, f.NbVars)
	assert.Equal(t, 2, f.NbActiveClauses())

	status, model := Solve(f, DPLL)
	require.Equal(t, Sat, status)
	assert.True(t, evalCNF([][]int{{1, -2}, {2, 3}}, model))
}

func TestParseCNFRejectsOutOfRangeLiteral(t *testing.T) {
	src := "p cnf 2 1\n3 0\n"
	_, err := ParseCNF(strings.NewReader(src))
	require.Error(t, err)
}

func TestParseCNFRejectsMissingHeader(t *testing.T) {
	_, err := ParseCNF(strings.NewReader("1 2 0\n"))
	require.Error(t, err)
}

func TestSimplifyIdempotent(t *testing.T) {
	f := ParseSlice([][]int{{1, -1, 2}, {1, 3}, {1, 4}})
	model := make(Model, f.NbVars)
	f.Simplify(model, false)
	active := f.NbActiveClauses()
	trail := f.Simplify(model, false)
	assert.Empty(t, trail, "re-simplifying a fixpoint must derive nothing new")
	assert.Equal(t, active, f.NbActiveClauses())
}

func TestSubsumptionRemovesSupersets(t *testing.T) {
	f := ParseSlice([][]int{{1, 2}, {1, 2, 3}})
	changed := f.Subsume()
	assert.True(t, changed)
	assert.Equal(t, 1, f.NbActiveClauses())
}

func TestFormulaHasEmptyClauseAfterConflictingUnits(t *testing.T) {
	f := ParseSlice([][]int{{1}, {-1}})
	model := make(Model, f.NbVars)
	f.Simplify(model, false)
	assert.True(t, f.HasEmptyClause())
	assert.Equal(t, Unsat, f.Status)
}

func TestFormulaCNFRoundTrips(t *testing.T) {
	f := ParseSlice([][]int{{1, -2}, {2, 3}})
	assert.Equal(t, "p cnf 3 2\n1 -2 0\n2 3 0\n", f.CNF())
}

// TestDPLLBacktrackRestoresExactState pins down P6: both polarities of the
// first decision conflict, so SolveDPLL returns Unsat only after undoing
// that decision, which must leave the formula exactly as it was after the
// initial propagation of {3}. Re-solving the same CNF fresh must also reach
// the identical verdict.
func TestDPLLBacktrackRestoresExactState(t *testing.T) {
	cnf := [][]int{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {3}}
	f1 := ParseSlice(cnf)
	status1, model1 := Solve(f1, DPLL)
	require.Equal(t, Unsat, status1)
	assert.Nil(t, model1)

	ref := ParseSlice(cnf)
	ref.UnitPropagate(make(Model, ref.NbVars))
	assert.Equal(t, ref.NbActiveClauses(), f1.NbActiveClauses())
	assert.Equal(t, ref.posCount, f1.posCount)
	assert.Equal(t, ref.negCount, f1.negCount)
	assert.Equal(t, ref.Status, f1.Status)

	f2 := ParseSlice(cnf)
	status2, model2 := Solve(f2, DPLL)
	require.Equal(t, status1, status2)
	assert.Equal(t, model1, model2)
}
