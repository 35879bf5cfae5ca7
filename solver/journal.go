package solver

// The journal records reversible mutations made to a Formula during
// in-place search (SolveClassicalDPLL, SolveDPLL, SolveDPLLWatchers),
// so that backtracking to a trail mark restores the exact prior state
// without cloning, per Design Notes §9. Grounded on the undo-log kept by
// original_source/dpll.py's backtrack step, and on gophersat's pattern of
// undoing unit propagation and watch changes on conflict (solver.go's old
// unset/cancelUntil).
type journalKind byte

const (
	clauseDeactivated journalKind = iota // clause was removed via RemoveClause/markSatisfied
	literalRemoved                       // a literal was stripped from an active clause
	watcherSwapped                       // a clause's watched literal slot changed (watcher.go only)
)

type journalEntry struct {
	kind journalKind
	c    *Clause

	lit Lit // literalRemoved: the literal that was stripped; watcherSwapped: the new watch

	oldLit Lit // watcherSwapped: the literal that used to be watched

	prevStatus Status // literalRemoved: f.Status immediately before this mutation
}

// journal is an append-only log of journalEntry, popped in exact reverse
// order to undo. A mark is just a length: everything pushed after the mark
// is undone by undoTo.
type journal []journalEntry

func (j *journal) mark() int { return len(*j) }

func (j *journal) push(e journalEntry) { *j = append(*j, e) }

// undoTo pops j back to mark, applying each entry's inverse in exact
// reverse order of application. wi is nil for the plain trail-based DPLL
// procedures, which never push watcherSwapped entries.
func (f *Formula) undoTo(j *journal, mark int, wi *watchIndex) {
	for len(*j) > mark {
		last := len(*j) - 1
		e := (*j)[last]
		*j = (*j)[:last]
		switch e.kind {
		case clauseDeactivated:
			f.restoreClause(e.c)
		case literalRemoved:
			f.restoreLiteral(e.c, e.lit, e.prevStatus)
		case watcherSwapped:
			wi.undoSwap(e)
		}
	}
}

// restoreClause is the exact inverse of RemoveClause/markSatisfied.
func (f *Formula) restoreClause(c *Clause) {
	c.satisfied = false
	f.clauses[c.id] = c
	f.nbActive++
	for _, l := range c.lits {
		f.occurs[litIndex(l)] = append(f.occurs[litIndex(l)], c)
		f.bump(l, 1)
	}
}

// restoreLiteral is the exact inverse of RemoveLiteral: it puts l back onto
// c and back into the occurrence/frequency tables. Order within c.lits does
// not matter to any journaled caller (dpll.go never watches a positional
// slot in a clause it also mutates).
func (f *Formula) restoreLiteral(c *Clause, l Lit, prevStatus Status) {
	c.lits = append(c.lits, l)
	f.occurs[litIndex(l)] = append(f.occurs[litIndex(l)], c)
	f.bump(l, 1)
	f.Status = prevStatus
}

// removeClauseJ is RemoveClause plus a journal entry recording the undo.
func (f *Formula) removeClauseJ(c *Clause, j *journal) {
	if c.satisfied || f.clauses[c.id] == nil {
		return
	}
	f.clauses[c.id] = nil
	f.nbActive--
	for _, l := range c.lits {
		f.removeOccurrence(l, c)
		f.bump(l, -1)
	}
	j.push(journalEntry{kind: clauseDeactivated, c: c})
}

// markSatisfiedJ is markSatisfied plus a journal entry.
func (f *Formula) markSatisfiedJ(c *Clause, j *journal) {
	if c.satisfied {
		return
	}
	f.removeClauseJ(c, j)
	c.satisfied = true
}

// removeLiteralJ is RemoveLiteral plus a journal entry.
func (f *Formula) removeLiteralJ(c *Clause, l Lit, j *journal) {
	idx, ok := c.contains(l)
	if !ok {
		return
	}
	prevStatus := f.Status
	f.removeOccurrence(l, c)
	f.bump(l, -1)
	c.removeAt(idx)
	if c.Len() == 0 {
		f.Status = Unsat
	}
	j.push(journalEntry{kind: literalRemoved, c: c, lit: l, prevStatus: prevStatus})
}

// assignLiteralJ is assignLiteral plus journal entries for every mutation it
// performs, so the whole effect of binding lit can be undone by undoTo.
func (f *Formula) assignLiteralJ(lit Lit, j *journal) {
	for _, c := range append([]*Clause(nil), f.clausesContaining(lit)...) {
		f.markSatisfiedJ(c, j)
	}
	neg := lit.Negation()
	for _, c := range append([]*Clause(nil), f.clausesContaining(neg)...) {
		f.removeLiteralJ(c, neg, j)
		if f.Status == Unsat {
			return
		}
	}
}

// unitPropagateJ is UnitPropagate, journaled: same fixpoint loop, but every
// clause/literal mutation is recorded so a caller can undo exactly the
// propagation this call performed.
func (f *Formula) unitPropagateJ(model Model, j *journal) (trail []Lit, conflict bool) {
	for {
		c := f.UnitClause()
		if c == nil {
			return trail, false
		}
		lit := c.Get(0)
		if model[lit.Var()] != 0 {
			f.markSatisfiedJ(c, j)
			continue
		}
		model.Set(lit)
		trail = append(trail, lit)
		f.assignLiteralJ(lit, j)
		if f.Status == Unsat {
			return trail, true
		}
	}
}

// pureLiteralElimJ is PureLiteralElim, journaled.
func (f *Formula) pureLiteralElimJ(model Model, j *journal) (assigned []Lit) {
	for {
		lit := f.PureLiteral(model)
		if lit == -1 {
			return assigned
		}
		model.Set(lit)
		assigned = append(assigned, lit)
		for _, c := range append([]*Clause(nil), f.clausesContaining(lit)...) {
			f.markSatisfiedJ(c, j)
		}
	}
}
