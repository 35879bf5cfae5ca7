package solver

import "strconv"

// Status, Var and Lit are the solver's numeric vocabulary. The encoding
// below — Var zero-based, Lit as 2v/2v+1 with the sign in the low bit — is
// pinned exactly by the design notes this engine follows: it is what makes
// Negation a single XOR and Var a single shift, which every hot path here
// (occurrence-table indexing, watch-list indexing, branching) depends on.
// There is no alternative encoding to explore without giving up that
// property, so this section intentionally reads close to how any Go SAT
// solver built on it would write it.

// Status is the status of a given formula or clause at a given moment.
type Status byte

const (
	// Indet means the formula is not proven sat or unsat yet.
	Indet = Status(iota)
	// Sat means the formula or clause is satisfied.
	Sat
	// Unsat means the formula or clause is unsatisfied.
	Unsat
	// Unit is a constant meaning the clause contains only one unassigned literal.
	Unit
	// Many is a constant meaning the clause contains at least 2 unassigned literals.
	Many
)

func (s Status) String() string {
	switch s {
	case Indet:
		return "INDETERMINATE"
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	case Unit:
		return "UNIT"
	case Many:
		return "MANY"
	default:
		panic("solver: invalid status")
	}
}

// Var is a 0-based variable identifier: CNF variable 1 is Var 0.
type Var int32

// Lit packs a variable and its sign into one int32: 2v for the positive
// literal, 2v+1 for the negative one (CNF literal -3 is Lit 2*(3-1)+1 = 5).
type Lit int32

// IntToLit converts a nonzero signed CNF literal to a Lit.
func IntToLit(i int) Lit {
	if i < 0 {
		return Lit(2*(-i-1) + 1)
	}
	return Lit(2 * (i - 1))
}

// IntToVar converts a 1-based CNF variable identifier to a Var.
func IntToVar(i int) Var {
	return Var(i - 1)
}

// Lit returns the positive Lit associated to v.
func (v Var) Lit() Lit {
	return Lit(v * 2)
}

// SignedLit returns the Lit associated to v, negated if neg, positive else.
func (v Var) SignedLit(neg bool) Lit {
	if neg {
		return Lit(v*2) + 1
	}
	return Lit(v * 2)
}

// Var returns the variable l is a literal of.
func (l Lit) Var() Var {
	return Var(l / 2)
}

// Int returns the equivalent signed CNF literal.
func (l Lit) Int() int {
	res := int(l/2) + 1
	if l.IsNeg() {
		return -res
	}
	return res
}

// IsPositive is true iff l is the positive literal of its variable.
func (l Lit) IsPositive() bool {
	return l&1 == 0
}

// IsNeg is true iff l is the negative literal of its variable — the
// complement of IsPositive, kept as its own method since callers like
// litTrue/litFalse read more directly with a name for each polarity.
func (l Lit) IsNeg() bool {
	return l&1 == 1
}

// Negation returns -l: the low bit toggled, since sign is the only
// difference between a literal and its negation under this encoding.
func (l Lit) Negation() Lit {
	return l ^ 1
}

// String renders l as a signed CNF literal, for debugging and logging.
func (l Lit) String() string {
	return strconv.Itoa(l.Int())
}

// litIndex returns l's slot in a per-literal table such as Formula.occurs
// or watchIndex.byLit. Since Lit is already a dense 0-based index over
// 2*NbVars slots, this is the identity — kept as a named function so every
// table lookup site says what it's doing instead of relying on readers to
// remember Lit doubles as its own index.
func litIndex(l Lit) int {
	return int(l)
}
