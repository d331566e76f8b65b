package core

import "testing"

func TestLiteralVarAndPositive(t *testing.T) {
	cases := []struct {
		lit      Literal
		wantVar  Variable
		wantPos  bool
		wantNeg  Literal
	}{
		{3, 3, true, -3},
		{-3, 3, false, 3},
		{1, 1, true, -1},
	}

	for _, c := range cases {
		if got := c.lit.Var(); got != c.wantVar {
			t.Errorf("Literal(%d).Var() = %d, want %d", c.lit, got, c.wantVar)
		}
		if got := c.lit.Positive(); got != c.wantPos {
			t.Errorf("Literal(%d).Positive() = %v, want %v", c.lit, got, c.wantPos)
		}
		if got := c.lit.Negate(); got != c.wantNeg {
			t.Errorf("Literal(%d).Negate() = %d, want %d", c.lit, got, c.wantNeg)
		}
	}
}

func TestCancelledNilIsNeverCancelled(t *testing.T) {
	if Cancelled(nil) {
		t.Errorf("Cancelled(nil) = true, want false")
	}

	always := func() bool { return true }
	if !Cancelled(Cancel(always)) {
		t.Errorf("Cancelled(always-true) = false, want true")
	}
}
