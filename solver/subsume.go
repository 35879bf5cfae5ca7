package solver

// Rule 4 - subsumption. Disabled by default in every DP variant (§4.2,
// §9): "measured cost exceeds benefit on the benchmark inputs." Kept here,
// grounded on the commented-out Subsumes/SelfSubsumes helpers gophersat
// carries in preprocess.go and on original_source/dp.py's fourth_rule, so
// DP can still be studied in isolation with it enabled via
// WithSubsumption(true).

// subsumes reports whether c subsumes c2, i.e. every literal of c is also a
// literal of c2 and len(c) < len(c2) (a clause never subsumes itself).
func (c *Clause) subsumes(c2 *Clause) bool {
	if c.id == c2.id || c.Len() >= c2.Len() {
		return false
	}
	for _, lit := range c.lits {
		if _, ok := c2.contains(lit); !ok {
			return false
		}
	}
	return true
}

// Subsume removes every clause that is a strict superset of some other
// active clause, per Rule 4. It returns whether any clause was removed, so
// callers can re-run the simplification fixpoint.
func (f *Formula) Subsume() bool {
	active := f.ActiveClauses()
	changed := false
	for _, small := range active {
		if small.satisfied {
			continue
		}
		for _, big := range active {
			if big.satisfied || big.id == small.id {
				continue
			}
			if small.subsumes(big) {
				f.RemoveClause(big)
				changed = true
			}
		}
	}
	return changed
}
