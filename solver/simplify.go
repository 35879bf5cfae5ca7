package solver

// Simplification rules applied to a Formula, per §4.2. TautologyElim runs
// at the start of each DPLL solve and on every Simplify call (so at every
// DP recursion step); UnitPropagate and PureLiteralElim are run to
// fixpoint by the DP procedure, and individually by the DPLL procedures as
// part of their own search loop.

// Model is a total or partial assignment, one slot per variable: 0 is
// unbound, 1 is bound true, -1 is bound false.
type Model []int8

// Set records lit as bound true (if positive) or false (if negative).
func (m Model) Set(lit Lit) {
	if lit.IsPositive() {
		m[lit.Var()] = 1
	} else {
		m[lit.Var()] = -1
	}
}

// Unset clears lit's variable back to unbound, for backtracking.
func (m Model) Unset(lit Lit) {
	m[lit.Var()] = 0
}

// TautologyElim removes every clause containing both a literal and its
// negation, per Rule 1. It is meant to run once per clause when the clause
// first enters the formula: rules never add literals, so a non-tautology
// clause cannot become one later.
func (f *Formula) TautologyElim() {
	for _, c := range f.clauses {
		if c != nil && c.IsTautology() {
			f.markSatisfied(c)
		}
	}
}

// UnitPropagate repeatedly resolves unit clauses until none remain or a
// conflict (an empty clause) is found, per Rule 2. Satisfied literals are
// appended to model and to the returned trail, in the order they were
// derived. Unit clauses are always picked lowest-id-first (via
// Formula.UnitClause), matching §4.2's determinism requirement.
func (f *Formula) UnitPropagate(model Model) (trail []Lit, conflict bool) {
	for {
		c := f.UnitClause()
		if c == nil {
			return trail, false
		}
		lit := c.Get(0)
		if model[lit.Var()] != 0 {
			// Already bound: the unit clause is either satisfied (handled by
			// markSatisfied below) or conflicting, which AddClause/RemoveLiteral
			// would already have reported as Unsat.
			f.markSatisfied(c)
			continue
		}
		model.Set(lit)
		trail = append(trail, lit)
		f.assignLiteral(lit)
		if f.Status == Unsat {
			return trail, true
		}
	}
}

// AssignDecision forces lit to true: it records the binding in model and
// applies the same clause updates unit propagation would (§4.4's
// `F u {{l}}`), without requiring lit to already be a unit clause.
func (f *Formula) AssignDecision(lit Lit, model Model) {
	model.Set(lit)
	f.assignLiteral(lit)
}

// assignLiteral satisfies every clause containing lit and strips
// lit.Negation() from every clause containing it, per Rule 2 (i) and (ii).
func (f *Formula) assignLiteral(lit Lit) {
	for _, c := range append([]*Clause(nil), f.clausesContaining(lit)...) {
		f.markSatisfied(c)
	}
	neg := lit.Negation()
	for _, c := range append([]*Clause(nil), f.clausesContaining(neg)...) {
		f.RemoveLiteral(c, neg)
		if f.Status == Unsat {
			return
		}
	}
}

// PureLiteralElim satisfies every currently pure literal, per Rule 3. It is
// meant to be called after unit propagation has reached fixpoint: a literal
// is pure only once unit propagation can no longer change its polarity
// count. Returns the pure literals it assigned, in the order they were
// found.
func (f *Formula) PureLiteralElim(model Model) (assigned []Lit) {
	for {
		lit := f.PureLiteral(model)
		if lit == -1 {
			return assigned
		}
		model.Set(lit)
		assigned = append(assigned, lit)
		for _, c := range append([]*Clause(nil), f.clausesContaining(lit)...) {
			f.markSatisfied(c)
		}
	}
}

// Simplify runs tautology elimination once, then unit propagation and pure
// literal elimination to a combined fixpoint, per §4.2's DP loop body. If
// subsumption is true, Rule 4 is interleaved too. It returns the
// trail of literals it bound, in derivation order.
func (f *Formula) Simplify(model Model, subsumption bool) (trail []Lit) {
	f.TautologyElim()
	for {
		up, conflict := f.UnitPropagate(model)
		trail = append(trail, up...)
		if conflict {
			return trail
		}
		pure := f.PureLiteralElim(model)
		trail = append(trail, pure...)
		if len(pure) > 0 {
			continue
		}
		if subsumption && f.Subsume() {
			continue
		}
		return trail
	}
}
