package solver

// The Davis-Putnam procedure, per §4.4. State restoration is by value: each
// recursive branch gets its own formula, either a fresh clone or the
// caller's now-unused copy; nothing is undone. Grounded on
// original_source/dp.py:dp for the control flow (tautology elim once, then
// unit/pure to a combined fixpoint, then branch) and on
// original_source/DavisPutnamDefaultCleaned.py for the "subsumption
// disabled, first-literal branching" default variant.

// Option configures an optional DP knob. The only one today is
// WithSubsumption; more could be added without breaking SolveDP's
// signature.
type Option func(*dpConfig)

type dpConfig struct {
	subsumption bool
}

// WithSubsumption toggles Rule 4 (subsumption elimination) for SolveDP. Off
// by default everywhere per §9; pass WithSubsumption(true) to study DP with
// it enabled.
func WithSubsumption(enabled bool) Option {
	return func(c *dpConfig) { c.subsumption = enabled }
}

// SolveDPDefault is the classical DP variant: first-literal branching,
// subsumption disabled unconditionally. Corresponds to dp_default in §4.7.
func SolveDPDefault(f *Formula) (Status, Model) {
	return runDP(f, classicalBranch, false)
}

// SolveDP is the heuristic-branching DP variant: subsumption stays
// disabled by default (§9), but can be enabled with WithSubsumption.
// Corresponds to dp in §4.7.
func SolveDP(f *Formula, opts ...Option) (Status, Model) {
	var cfg dpConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return runDP(f, heuristicBranch, cfg.subsumption)
}

func runDP(f *Formula, branch branchFunc, subsumption bool) (Status, Model) {
	if f.Status == Unsat {
		return Unsat, nil
	}
	model := make(Model, f.NbVars)
	return dpSearch(f, model, branch, subsumption)
}

// dpSearch implements the recursive loop in §4.4:
//
//	F <- tautology_elim(F)
//	loop:
//	  F <- unit_propagate(F); if UNSAT return UNSAT
//	  F <- pure_literal_elim(F)
//	  if (optional) subsumption_elim(F), rerun loop if changed
//	  if F is empty: return SAT
//	  if F has an empty clause: return UNSAT
//	  l <- branch_literal(F)
//	  r <- solve_dp(F u {{l}})
//	  if r = SAT: return SAT
//	  return solve_dp(F u {{-l}})
func dpSearch(f *Formula, model Model, branch branchFunc, subsumption bool) (Status, Model) {
	f.Simplify(model, subsumption)
	if f.Status == Unsat {
		return Unsat, nil
	}
	if f.NbActiveClauses() == 0 {
		return Sat, model
	}

	lit := branch(f, model)
	if lit == -1 {
		// No variable has a nonzero count left: the formula is empty in
		// every way the heuristic can see, per §4.3.
		return Sat, model
	}

	trueModel := cloneModel(model)
	trueFormula := f.Clone()
	trueFormula.AssignDecision(lit, trueModel)
	if status, m := dpSearch(trueFormula, trueModel, branch, subsumption); status == Sat {
		return Sat, m
	}

	// f is no longer needed by the caller: reuse it in place for the other
	// branch instead of cloning again.
	f.AssignDecision(lit.Negation(), model)
	return dpSearch(f, model, branch, subsumption)
}

func cloneModel(m Model) Model {
	return append(Model(nil), m...)
}
