package solver

// The DPLL procedure, per §4.5. Unlike DP, state is restored by undoing an
// explicit trail of decisions through the journal (§9), in place: no
// formula is ever cloned. Grounded on original_source/dpll.py's
// decide/backtrack loop and on gophersat's old cancelUntil pattern of
// popping a trail back to a saved length on conflict.

// decision is one entry of the DPLL decision stack: the literal assumed
// true, the journal/trail marks taken just before it (and its
// propagation) were applied, and whether its negation has already been
// tried.
type decision struct {
	lit       Lit
	jMark     int
	trailMark int
	flipped   bool
}

// SolveClassicalDPLL is the uninformed DPLL variant: first-literal
// branching, pure-literal elimination off by default, per the Open
// Question resolution in §9. Corresponds to classical_dpll in §4.7.
func SolveClassicalDPLL(f *Formula) (Status, Model) {
	return runDPLL(f, classicalBranch, false)
}

// SolveDPLL is the heuristic DPLL variant: argmax branching, pure-literal
// elimination mandatory (it is cheap relative to the branching it avoids,
// and the heuristic variant is the one benchmarked with it on in
// original_source/dpll.py). Corresponds to dpll in §4.7.
func SolveDPLL(f *Formula) (Status, Model) {
	return runDPLL(f, heuristicBranch, true)
}

func runDPLL(f *Formula, branch branchFunc, pureLiteral bool) (Status, Model) {
	if f.Status == Unsat {
		return Unsat, nil
	}
	model := make(Model, f.NbVars)
	f.TautologyElim()
	if f.Status == Unsat {
		return Unsat, nil
	}
	return dpllSearch(f, model, branch, pureLiteral)
}

// dpllSearch runs the iterative decide/propagate/backtrack loop described
// in §4.5: propagate to fixpoint; on conflict, backtrack by flipping the
// most recent unflipped decision, failing only once the stack is empty;
// otherwise, if the formula is empty, SAT; otherwise decide a new literal
// and propagate again. trail records every literal bound, by decision or
// propagation, so backtracking can unset exactly what a decision caused —
// undoTo alone only reverses clause/literal mutations, not model bindings.
func dpllSearch(f *Formula, model Model, branch branchFunc, pureLiteral bool) (Status, Model) {
	var j journal
	var stack []decision
	var trail []Lit

	propagate := func() bool {
		for {
			up, conflict := f.unitPropagateJ(model, &j)
			trail = append(trail, up...)
			if conflict {
				return true
			}
			if !pureLiteral {
				return false
			}
			pure := f.pureLiteralElimJ(model, &j)
			trail = append(trail, pure...)
			if len(pure) == 0 {
				return false
			}
		}
	}

	conflict := propagate()
	for {
		if conflict {
			for {
				if len(stack) == 0 {
					return Unsat, nil
				}
				top := &stack[len(stack)-1]
				for _, l := range trail[top.trailMark:] {
					model.Unset(l)
				}
				trail = trail[:top.trailMark]
				f.undoTo(&j, top.jMark, nil)
				if !top.flipped {
					top.flipped = true
					top.lit = top.lit.Negation()
					model.Set(top.lit)
					trail = append(trail, top.lit)
					f.assignLiteralJ(top.lit, &j)
					break
				}
				stack = stack[:len(stack)-1]
			}
			conflict = f.Status == Unsat
			if !conflict {
				conflict = propagate()
			}
			continue
		}

		if f.NbActiveClauses() == 0 {
			return Sat, model
		}
		lit := branch(f, model)
		if lit == -1 {
			return Sat, model
		}
		jMark, trailMark := j.mark(), len(trail)
		model.Set(lit)
		trail = append(trail, lit)
		f.assignLiteralJ(lit, &j)
		stack = append(stack, decision{lit: lit, jMark: jMark, trailMark: trailMark})
		conflict = f.Status == Unsat
		if !conflict {
			conflict = propagate()
		}
	}
}
