package solver

// The two-literal watching scheme, per §4.6. Clauses are never mutated
// here: each clause keeps exactly two "watched" literals (watch0, watch1),
// and a falsified watch triggers a search for a replacement among the
// clause's other literals instead of touching the clause's literal list.
// Grounded on original_source/dpll_watchers.py's watch_lists/propagate, and
// on gophersat's old watcher.go (unifyLiteral/watchClause/unwatchClause),
// adapted to this engine's deterministic model array instead of gophersat's
// trail-of-reasons.

// watchIndex maps each literal to the clauses currently watching it.
type watchIndex struct {
	byLit [][]*Clause
}

// newWatchIndex builds the initial watch assignment: every clause with at
// least two literals watches its first two, per §4.6 step 0. Clauses with
// fewer than two literals (units, and the empty clause) are handled by the
// caller before the watched search starts.
func newWatchIndex(f *Formula) *watchIndex {
	wi := &watchIndex{byLit: make([][]*Clause, 2*f.NbVars)}
	for _, c := range f.clauses {
		if c == nil || c.Len() < 2 {
			continue
		}
		c.watch0, c.watch1 = c.Get(0), c.Get(1)
		wi.add(c.watch0, c)
		wi.add(c.watch1, c)
	}
	return wi
}

func (wi *watchIndex) add(l Lit, c *Clause) {
	wi.byLit[litIndex(l)] = append(wi.byLit[litIndex(l)], c)
}

func (wi *watchIndex) remove(l Lit, c *Clause) {
	lst := wi.byLit[litIndex(l)]
	for i, x := range lst {
		if x == c {
			last := len(lst) - 1
			lst[i] = lst[last]
			wi.byLit[litIndex(l)] = lst[:last]
			return
		}
	}
}

// undoSwap is the inverse of the swap recorded by a watcherSwapped journal
// entry: e.lit was watching c in place of e.oldLit; put e.oldLit back.
func (wi *watchIndex) undoSwap(e journalEntry) {
	c := e.c
	if c.watch0 == e.lit {
		c.watch0 = e.oldLit
	} else {
		c.watch1 = e.oldLit
	}
	wi.remove(e.lit, c)
	wi.add(e.oldLit, c)
}

func otherWatch(c *Clause, l Lit) Lit {
	if c.watch0 == l {
		return c.watch1
	}
	return c.watch0
}

func setWatch(c *Clause, old, new Lit) {
	if c.watch0 == old {
		c.watch0 = new
	} else {
		c.watch1 = new
	}
}

func litTrue(model Model, l Lit) bool {
	switch model[l.Var()] {
	case 1:
		return l.IsPositive()
	case -1:
		return l.IsNeg()
	default:
		return false
	}
}

func litFalse(model Model, l Lit) bool {
	switch model[l.Var()] {
	case 1:
		return l.IsNeg()
	case -1:
		return l.IsPositive()
	default:
		return false
	}
}

// assignWatchedJ marks every clause containing lit as satisfied, keeping
// posCount/negCount/nbActive equal to the true multiplicities over the
// still-active clauses (invariant I2, §3) even though the watched scheme
// never strips lit.Negation() from surviving clauses the way assignLiteralJ's
// second half does for DPLL — propagateWatched's watch-swapping already
// finds conflicts and units without touching clause contents, so only the
// "mark satisfied" half applies here.
func (f *Formula) assignWatchedJ(lit Lit, j *journal) {
	for _, c := range append([]*Clause(nil), f.clausesContaining(lit)...) {
		f.markSatisfiedJ(c, j)
	}
}

// SolveDPLLWatchers is the watched-literal DPLL variant: argmax branching,
// pure-literal elimination to fixpoint alongside watched unit propagation —
// original_source/dpll_watchers.py's solve_dpll (step 2) and
// dp_with_watchers.py both run Rule 3 unconditionally, the same as the
// heuristic dpll variant. Corresponds to dpll_watchers in §4.7.
func SolveDPLLWatchers(f *Formula) (Status, Model) {
	if f.Status == Unsat {
		return Unsat, nil
	}
	f.TautologyElim()
	if f.Status == Unsat {
		return Unsat, nil
	}

	model := make(Model, f.NbVars)
	var trail []Lit
	var j journal
	for _, c := range f.clauses {
		if c == nil || c.Len() != 1 {
			continue
		}
		u := c.Get(0)
		if model[u.Var()] != 0 {
			if litFalse(model, u) {
				return Unsat, nil
			}
			continue
		}
		model.Set(u)
		trail = append(trail, u)
		f.assignWatchedJ(u, &j)
	}

	wi := newWatchIndex(f)
	if f.propagateWatchedToFixpoint(model, wi, &j, &trail, trail) {
		return Unsat, nil
	}
	if f.NbActiveClauses() == 0 {
		return Sat, model
	}

	return watcherSearch(f, model, wi, &j, trail)
}

// propagateWatched drains a queue of newly-true literals, swapping watches
// away from their negations and deriving further unit literals, per §4.6
// steps 1-3. It returns true on conflict. Every literal it binds is
// appended to *trail and counted via assignWatchedJ, so the caller's
// decision stack can undo exactly the literals and counts this call
// touched.
func (f *Formula) propagateWatched(model Model, wi *watchIndex, j *journal, trail *[]Lit, queue []Lit) bool {
	for qi := 0; qi < len(queue); qi++ {
		neg := queue[qi].Negation()
		watching := append([]*Clause(nil), wi.byLit[litIndex(neg)]...)
		for _, c := range watching {
			o := otherWatch(c, neg)
			if litTrue(model, o) {
				continue
			}
			replaced := false
			for _, r := range c.lits {
				if r == neg || r == o || litFalse(model, r) {
					continue
				}
				j.push(journalEntry{kind: watcherSwapped, c: c, lit: r, oldLit: neg})
				wi.remove(neg, c)
				wi.add(r, c)
				setWatch(c, neg, r)
				replaced = true
				break
			}
			if replaced {
				continue
			}
			if model[o.Var()] != 0 {
				return true // o is bound false: both watches falsified, conflict
			}
			model.Set(o)
			*trail = append(*trail, o)
			f.assignWatchedJ(o, j)
			queue = append(queue, o)
		}
	}
	return false
}

// propagateWatchedToFixpoint alternates watched unit propagation and pure-
// literal elimination until neither derives anything new, mirroring the
// combined fixpoint §4.2 specifies for Rules 2-3 (Simplify does the same
// for DP, and dpllSearch's propagate for heuristic DPLL, over occurrence
// lists). Pure literals are
// fed back into watched propagation since marking one satisfied can itself
// falsify a watch elsewhere.
func (f *Formula) propagateWatchedToFixpoint(model Model, wi *watchIndex, j *journal, trail *[]Lit, seed []Lit) bool {
	queue := seed
	for {
		if f.propagateWatched(model, wi, j, trail, queue) {
			return true
		}
		pure := f.pureLiteralElimJ(model, j)
		*trail = append(*trail, pure...)
		if len(pure) == 0 {
			return false
		}
		queue = pure
	}
}

// watcherSearch is dpllSearch's counterpart for the watched-literal engine:
// same decide/propagate/backtrack shape, but it is the trail (not the
// journal) that gets unwound to undo model bindings, since propagation
// here never touches Formula's clauses directly — only watch pointers and
// clause-satisfied flags, both of which the journal covers.
func watcherSearch(f *Formula, model Model, wi *watchIndex, j *journal, trail []Lit) (Status, Model) {
	type wDecision struct {
		lit       Lit
		jMark     int
		trailMark int
		flipped   bool
	}
	var stack []wDecision
	conflict := false

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
				f.undoTo(j, top.jMark, wi)
				if !top.flipped {
					top.flipped = true
					top.lit = top.lit.Negation()
					model.Set(top.lit)
					trail = append(trail, top.lit)
					f.assignWatchedJ(top.lit, j)
					conflict = f.propagateWatchedToFixpoint(model, wi, j, &trail, []Lit{top.lit})
					break
				}
				stack = stack[:len(stack)-1]
			}
			continue
		}

		if f.NbActiveClauses() == 0 {
			return Sat, model
		}
		lit := f.pickBranchLiteral(model)
		if lit == -1 {
			return Sat, model
		}
		jMark, trailMark := j.mark(), len(trail)
		model.Set(lit)
		trail = append(trail, lit)
		f.assignWatchedJ(lit, j)
		conflict = f.propagateWatchedToFixpoint(model, wi, j, &trail, []Lit{lit})
		stack = append(stack, wDecision{lit: lit, jMark: jMark, trailMark: trailMark})
	}
}
