package solver

// Branching heuristics, per §4.3. Both take the active formula and return a
// literal to try first; the caller tries its negation on backtrack.

// pickBranchLiteral selects v* = argmax_v (pos(v)+neg(v)) over unassigned
// variables with a nonzero total, tie-broken by smallest variable id, then
// returns the polarity with the larger individual count — "a variable
// occurring frequently resolves many clauses per assignment", per §4.3.
// Grounded on original_source/dp.py:find_best_literal and
// original_source/dpll_watchers.py:pick_branch_literal (the linear scan,
// not gophersat's activity heap, since the spec only requires an argmax and
// this engine does no VSIDS-style activity learning).
func (f *Formula) pickBranchLiteral(model Model) Lit {
	best := Var(-1)
	var bestTotal int32
	for v := Var(0); int(v) < f.NbVars; v++ {
		if model[v] != 0 {
			continue
		}
		total := f.posCount[v] + f.negCount[v]
		if total == 0 {
			continue
		}
		if best == -1 || total > bestTotal {
			best = v
			bestTotal = total
		}
	}
	if best == -1 {
		return -1
	}
	return best.SignedLit(f.negCount[best] > f.posCount[best])
}

// firstLiteral selects the first literal of the first active clause, per
// §4.3's "classical (non-heuristic) DPLL": deterministic and cheap, but
// uninformed. Grounded on original_source/dp.py:classical_dpll, which picks
// `next(iter(next(iter(clauses))))`.
func (f *Formula) firstLiteral() Lit {
	for _, c := range f.clauses {
		if c != nil {
			return c.First()
		}
	}
	return -1
}

// branchFunc selects the next decision literal from a formula's current
// state, or -1 if none remains.
type branchFunc func(f *Formula, model Model) Lit

func heuristicBranch(f *Formula, model Model) Lit {
	return f.pickBranchLiteral(model)
}

func classicalBranch(f *Formula, _ Model) Lit {
	return f.firstLiteral()
}
