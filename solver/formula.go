package solver

import "fmt"

// A Formula is a mutable collection of clauses over NbVars variables,
// interpreted as their conjunction. It owns a per-literal inverted index
// (occurs) for O(1)-amortized "which clauses contain l" queries, and two
// frequency tables (posCount/negCount) used by the branching heuristic.
//
// Invariants I1-I2 from the design: no clause is left as a tautology once
// TautologyElim has run, and posCount/negCount always equal the true
// multiplicities over the active clause set.
type Formula struct {
	NbVars int
	Status Status // Indet, or Unsat once an empty clause has been met.

	clauses  []*Clause   // indexed by Clause.id; nil once removed
	occurs   [][]*Clause // occurs[litIndex(l)] = active clauses currently containing l
	posCount []int32     // posCount[v] = nb of active clauses containing v positively
	negCount []int32     // negCount[v] = nb of active clauses containing v negatively
	nbActive int
}

// NewFormula returns an empty Formula over nbVars variables.
func NewFormula(nbVars int) *Formula {
	return &Formula{
		NbVars:   nbVars,
		occurs:   make([][]*Clause, 2*nbVars),
		posCount: make([]int32, nbVars),
		negCount: make([]int32, nbVars),
	}
}

// NbActiveClauses returns the number of clauses still part of the formula.
func (f *Formula) NbActiveClauses() int {
	return f.nbActive
}

// AddClause inserts c into the formula, assigning it a fresh id. An empty
// clause means the formula is immediately UNSAT, matching the construction
// contract in §4.1 and §6: an empty clause at construction time is not an
// error, it is a trivial proof of unsatisfiability.
func (f *Formula) AddClause(c *Clause) {
	c.id = len(f.clauses)
	f.clauses = append(f.clauses, c)
	if c.Len() == 0 {
		f.Status = Unsat
		return
	}
	f.nbActive++
	for _, l := range c.lits {
		f.occurs[litIndex(l)] = append(f.occurs[litIndex(l)], c)
		f.bump(l, 1)
	}
}

func (f *Formula) bump(l Lit, delta int32) {
	v := l.Var()
	if l.IsPositive() {
		f.posCount[v] += delta
	} else {
		f.negCount[v] += delta
	}
}

// RemoveClause marks c inactive: it stops appearing in occurs and in the
// frequency tables, and is no longer iterated by ActiveClauses/UnitClauses.
func (f *Formula) RemoveClause(c *Clause) {
	if c.satisfied || f.clauses[c.id] == nil {
		return
	}
	f.clauses[c.id] = nil
	f.nbActive--
	for _, l := range c.lits {
		f.removeOccurrence(l, c)
		f.bump(l, -1)
	}
}

func (f *Formula) removeOccurrence(l Lit, c *Clause) {
	lst := f.occurs[litIndex(l)]
	for i, x := range lst {
		if x == c {
			last := len(lst) - 1
			lst[i] = lst[last]
			f.occurs[litIndex(l)] = lst[:last]
			return
		}
	}
}

// RemoveLiteral deletes l from c. If c becomes empty, the formula is marked
// UNSAT, per §4.1: "if the clause becomes empty, the formula is UNSAT."
func (f *Formula) RemoveLiteral(c *Clause, l Lit) {
	idx, ok := c.contains(l)
	if !ok {
		return
	}
	f.removeOccurrence(l, c)
	f.bump(l, -1)
	c.removeAt(idx)
	if c.Len() == 0 {
		f.Status = Unsat
	}
}

// markSatisfied removes c from the formula because it now contains a true
// literal, without touching f.Status: a satisfied clause never causes UNSAT.
func (f *Formula) markSatisfied(c *Clause) {
	if c.satisfied {
		return
	}
	f.RemoveClause(c)
	c.satisfied = true
}

// ActiveClauses returns the clauses still part of the formula, in ascending
// id order — lowest clause id first, so callers that need a deterministic
// traversal (e.g. unit selection) get one for free.
func (f *Formula) ActiveClauses() []*Clause {
	res := make([]*Clause, 0, f.nbActive)
	for _, c := range f.clauses {
		if c != nil {
			res = append(res, c)
		}
	}
	return res
}

// UnitClause returns the first active unit clause, by ascending clause id,
// or nil if there is none. The deterministic, lowest-id-first order is
// required by §4.2 Rule 2 for reproducible tests.
func (f *Formula) UnitClause() *Clause {
	for _, c := range f.clauses {
		if c != nil && c.Len() == 1 {
			return c
		}
	}
	return nil
}

// PureLiteral returns an unassigned literal that currently appears in only
// one polarity across the active clause set, or -1 if there is none.
// Variables are scanned in ascending order for determinism. model must be
// consulted, not just the counts: DP/DPLL's RemoveLiteral strips a bound
// variable's falsified occurrences immediately, so its stale polarity
// always reads as zero there, but the watched-literal engine never strips
// literals from clauses, so a bound variable's negation can still show a
// nonzero count long after it stopped being a live choice.
func (f *Formula) PureLiteral(model Model) Lit {
	for v := Var(0); int(v) < f.NbVars; v++ {
		if model[v] != 0 {
			continue
		}
		pos, neg := f.posCount[v] > 0, f.negCount[v] > 0
		if pos && !neg {
			return v.SignedLit(false)
		}
		if neg && !pos {
			return v.SignedLit(true)
		}
	}
	return -1
}

// HasEmptyClause reports whether some active clause has no literals left.
func (f *Formula) HasEmptyClause() bool {
	for _, c := range f.clauses {
		if c != nil && c.Len() == 0 {
			return true
		}
	}
	return false
}

// clausesContaining returns the active clauses that still contain l.
func (f *Formula) clausesContaining(l Lit) []*Clause {
	return f.occurs[litIndex(l)]
}

// Clone returns an independent deep copy of f, used by the DP procedure's
// by-value recursion (§4.4): each recursive branch mutates its own formula,
// never the caller's.
func (f *Formula) Clone() *Formula {
	nf := &Formula{
		NbVars:   f.NbVars,
		Status:   f.Status,
		clauses:  make([]*Clause, len(f.clauses)),
		occurs:   make([][]*Clause, len(f.occurs)),
		posCount: append([]int32(nil), f.posCount...),
		negCount: append([]int32(nil), f.negCount...),
		nbActive: f.nbActive,
	}
	for i, c := range f.clauses {
		if c != nil {
			nf.clauses[i] = c.clone()
		}
	}
	for i, lst := range f.occurs {
		if len(lst) == 0 {
			continue
		}
		cp := make([]*Clause, len(lst))
		for j, c := range lst {
			cp[j] = nf.clauses[c.id]
		}
		nf.occurs[i] = cp
	}
	return nf
}

// CNF returns a DIMACS CNF representation of the formula's active clauses.
func (f *Formula) CNF() string {
	active := f.ActiveClauses()
	res := fmt.Sprintf("p cnf %d %d\n", f.NbVars, len(active))
	for _, c := range active {
		res += c.CNF() + "\n"
	}
	return res
}
