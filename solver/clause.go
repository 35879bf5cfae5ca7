package solver

import (
	"fmt"
	"strings"
)

// A Clause is a mutable disjunction of literals, referenced by pointer from
// every index that holds it (occurrence lists, watcher lists, journal
// entries); its id is its slot in Formula.clauses. It never back-references
// those indices.
type Clause struct {
	id        int
	lits      []Lit
	satisfied bool // true once some literal of the clause is known true

	watch0, watch1 Lit // used only by the watched-literal engine (watcher.go)
}

// NewClause returns a clause whose lits are given as an argument. Its id is
// assigned when it is added to a Formula.
func NewClause(lits []Lit) *Clause {
	return &Clause{id: -1, lits: lits}
}

// ID returns the clause's stable identifier within its Formula.
func (c *Clause) ID() int {
	return c.id
}

// Len returns the nb of lits currently in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// Get returns the ith literal from the clause.
func (c *Clause) Get(i int) Lit {
	return c.lits[i]
}

// First returns the first lit from the clause.
func (c *Clause) First() Lit {
	return c.lits[0]
}

// Second returns the second lit from the clause.
func (c *Clause) Second() Lit {
	return c.lits[1]
}

// Lits returns the clause's current literals. The returned slice must not
// be mutated by the caller.
func (c *Clause) Lits() []Lit {
	return c.lits
}

// Satisfied is true iff the clause is known to contain a literal bound to
// true, i.e. it is no longer active in the current search state.
func (c *Clause) Satisfied() bool {
	return c.satisfied
}

// IsTautology is true iff c contains both a literal and its negation.
// TautologyElim checks it for every active clause each time it runs; the
// rules never add literals, so a clause that is not a tautology cannot
// become one later.
func (c *Clause) IsTautology() bool {
	seen := make(map[Lit]bool, len(c.lits))
	for _, l := range c.lits {
		if seen[l.Negation()] {
			return true
		}
		seen[l] = true
	}
	return false
}

// contains reports whether l is one of the clause's current literals.
func (c *Clause) contains(l Lit) (idx int, ok bool) {
	for i, x := range c.lits {
		if x == l {
			return i, true
		}
	}
	return -1, false
}

// removeAt deletes the literal at position i, preserving the other literals'
// relative order.
func (c *Clause) removeAt(i int) {
	c.lits = append(c.lits[:i], c.lits[i+1:]...)
}

// clone returns an independent copy of c, used by the DP procedure's
// by-value recursion.
func (c *Clause) clone() *Clause {
	lits := make([]Lit, len(c.lits))
	copy(lits, c.lits)
	return &Clause{id: c.id, lits: lits, satisfied: c.satisfied}
}

// CNF returns a DIMACS CNF representation of the clause.
func (c *Clause) CNF() string {
	parts := make([]string, len(c.lits))
	for i, l := range c.lits {
		parts[i] = l.String()
	}
	return fmt.Sprintf("%s 0", strings.Join(parts, " "))
}

func (c *Clause) String() string {
	return c.CNF()
}
