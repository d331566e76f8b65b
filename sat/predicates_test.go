package sat

import (
	"testing"

	"github.com/ashgrove-vane/satkernel/core"
)

func TestPureLiteral(t *testing.T) {
	in, err := FromClauses([][]int{{1, 2}, {-1, 2}, {3}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	if got, want := PureLiteral(in), 2; got != want {
		t.Errorf("PureLiteral() = %d, want %d", got, want)
	}
}

func TestPureLiteralNoneExists(t *testing.T) {
	in, err := FromClauses([][]int{{1, 2}, {-1, -2}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	if got := PureLiteral(in); got != 0 {
		t.Errorf("PureLiteral() = %d, want 0", got)
	}
}

func TestAutarkAssignment(t *testing.T) {
	in, err := FromClauses([][]int{{1, 2}, {-1, 3}, {4, 5}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	// {1:true, 3:true} touches clauses 0 and 1, satisfying both; clause 2
	// is untouched, so the assignment is autark.
	if !AutarkAssignment(in, Assignment{1: true, 3: true}) {
		t.Error("AutarkAssignment({1:true, 3:true}) = false, want true")
	}
	// {2:false} touches only clause 0 and fails to satisfy it.
	if AutarkAssignment(in, Assignment{2: false}) {
		t.Error("AutarkAssignment({2:false}) = true, want false")
	}
}

func TestIs2SATStructural(t *testing.T) {
	twoClause, err := FromClauses([][]int{{1, 2}, {-1, 3}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	if !Is2SAT(twoClause) {
		t.Error("Is2SAT() on an all-binary instance = false, want true")
	}

	threeClause, err := FromClauses([][]int{{1, 2, 3}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	if Is2SAT(threeClause) {
		t.Error("Is2SAT() on an instance with a ternary clause = true, want false")
	}
}

func TestIsToveySatisfied(t *testing.T) {
	// variable 1 occurs 3 times, exceeding k=1.
	in, err := FromClauses([][]int{{1}, {1, 2}, {-1, 3}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	if !IsToveySatisfied(in) {
		t.Error("IsToveySatisfied() = false, want true")
	}
}

func TestIsBiathletSatisfied(t *testing.T) {
	// n=1, one unit clause: s = 2^(1-1) = 1 = t = 2^1? no: t=2, s=1 < t.
	in, err := FromClauses([][]int{{1}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	if IsBiathletSatisfied(in) {
		t.Error("IsBiathletSatisfied() on a single unit clause over one variable = true, want false")
	}
}

func TestIsLLLSatisfiedRejectsNonUniformClauses(t *testing.T) {
	in, err := FromClauses([][]int{{1, 2}, {3}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	_, err = IsLLLSatisfied(in)
	if !core.IsKind(err, core.LllNotApplicable) {
		t.Errorf("IsLLLSatisfied() on non-uniform clauses returned %v, want LllNotApplicable", err)
	}
}

func TestIsLLLSatisfiedUniformClauses(t *testing.T) {
	in, err := FromClauses([][]int{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	satisfied, err := IsLLLSatisfied(in)
	if err != nil {
		t.Fatalf("IsLLLSatisfied() returned error: %v", err)
	}
	// No shared variables between the two clauses: zero neighbours each,
	// well below the 2^(k-2)=1 threshold.
	if satisfied {
		t.Error("IsLLLSatisfied() on disjoint binary clauses = true, want false")
	}
}
