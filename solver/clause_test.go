package solver

import "testing"

func TestClauseIsTautology(t *testing.T) {
	c := NewClause([]Lit{IntToLit(1), IntToLit(-2), IntToLit(2)})
	if !c.IsTautology() {
		t.Errorf("expected %s to be a tautology", c.CNF())
	}
	c = NewClause([]Lit{IntToLit(1), IntToLit(-2), IntToLit(3)})
	if c.IsTautology() {
		t.Errorf("expected %s not to be a tautology", c.CNF())
	}
}

func TestClauseContainsAndRemoveAt(t *testing.T) {
	c := NewClause([]Lit{IntToLit(1), IntToLit(2), IntToLit(3)})
	idx, ok := c.contains(IntToLit(2))
	if !ok || idx != 1 {
		t.Fatalf("expected to find lit 2 at index 1, got idx=%d ok=%v", idx, ok)
	}
	c.removeAt(idx)
	if c.Len() != 2 {
		t.Fatalf("expected 2 remaining lits, got %d", c.Len())
	}
	if _, ok := c.contains(IntToLit(2)); ok {
		t.Errorf("lit 2 should have been removed")
	}
}

func TestClauseClone(t *testing.T) {
	c := NewClause([]Lit{IntToLit(1), IntToLit(-2)})
	c.id = 4
	cp := c.clone()
	cp.removeAt(0)
	if c.Len() != 2 {
		t.Errorf("cloning must not affect the original clause's literals")
	}
	if cp.id != c.id {
		t.Errorf("clone must preserve id")
	}
}

func TestClauseCNF(t *testing.T) {
	c := NewClause([]Lit{IntToLit(1), IntToLit(-2), IntToLit(3)})
	if got, want := c.CNF(), "1 -2 3 0"; got != want {
		t.Errorf("CNF() = %q, want %q", got, want)
	}
}
