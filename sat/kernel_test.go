package sat

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKernelStepUnitPropagation(t *testing.T) {
	in, err := FromClauses([][]int{{1}, {-1, 2}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	out, changed := KernelStep(in)
	if !changed {
		t.Fatal("KernelStep() reported no change on a unit-propagable instance")
	}
	if diff := cmp.Diff([][]int{{2}}, out.Clauses()); diff != "" {
		t.Errorf("KernelStep() mismatch (-want +got):\n%s", diff)
	}
}

func TestKernelStepTautologyElimination(t *testing.T) {
	// No unit clause present, so the tautology rule is the one that fires.
	in, err := FromClauses([][]int{{1, -1, 2}, {4, 5}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	out, changed := KernelStep(in)
	if !changed {
		t.Fatal("KernelStep() reported no change on a tautological clause")
	}
	if diff := cmp.Diff([][]int{{4, 5}}, out.Clauses()); diff != "" {
		t.Errorf("KernelStep() mismatch (-want +got):\n%s", diff)
	}
}

func TestKernelStepDuplicateAndSubsumption(t *testing.T) {
	in, err := FromClauses([][]int{{1, 2}, {1, 2}, {1, 2, 3}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	out, changed := KernelStep(in)
	if !changed {
		t.Fatal("KernelStep() reported no change on a duplicate/subsumed instance")
	}
	if got, want := out.NumClauses(), 1; got != want {
		t.Errorf("NumClauses() after dedup/subsumption = %d, want %d", got, want)
	}
}

func TestKernelStepPureLiteral(t *testing.T) {
	in, err := FromClauses([][]int{{1, 2}, {-1, 2}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	out, changed := KernelStep(in)
	if !changed {
		t.Fatal("KernelStep() reported no change on a pure-literal instance")
	}
	if got, want := out.NumClauses(), 0; got != want {
		t.Errorf("NumClauses() after pure literal elimination = %d, want %d", got, want)
	}
}

func TestMergeZweiEigeZwillinge(t *testing.T) {
	// Exercised directly rather than through KernelStep: variables 1 and 2
	// are pure in this pair alone, so KernelStep's earlier pure-literal
	// rule would fire first and mask the merge rule being tested here.
	in, err := FromClauses([][]int{{1, 2, 3}, {1, 2, -3}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	out, changed := mergeZweiEigeZwillinge(in)
	if !changed {
		t.Fatal("mergeZweiEigeZwillinge() reported no change on a matching pair")
	}
	if got, want := out.NumClauses(), 1; got != want {
		t.Fatalf("NumClauses() after merge = %d, want %d", got, want)
	}
	merged := out.Clauses()[0]
	sort.Ints(merged)
	if diff := cmp.Diff([]int{1, 2}, merged); diff != "" {
		t.Errorf("merged clause mismatch, order-independent (-want +got):\n%s", diff)
	}
}

func TestKernelStepFixpoint(t *testing.T) {
	// Every variable occurs both polarities (no pure literal), no clause
	// is a duplicate or subset of another, and no pair differs by exactly
	// one complementary literal (no zwei-eige-zwillinge merge applies).
	in, err := FromClauses([][]int{{1, 2}, {-1, 3}, {-2, -3}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	_, changed := KernelStep(in)
	if changed {
		t.Error("KernelStep() reported change on an already-reduced instance")
	}
}

func TestNormalizeToKernelReachesFixpoint(t *testing.T) {
	in, err := FromClauses([][]int{{1}, {-1, 2}, {2, 3}, {2, 3}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	out := NormalizeToKernel(in, nil)
	if _, changed := KernelStep(out); changed {
		t.Error("NormalizeToKernel() did not reach a fixpoint")
	}
}

func TestIsKernelInstanceRejectsReducible(t *testing.T) {
	in, err := FromClauses([][]int{{1}, {-1, 2}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	got := IsKernelInstance(in, nil)
	if got.IsKernel {
		t.Error("IsKernelInstance() on a reducible instance reported IsKernel=true")
	}
	if got.Reason != "reducible" {
		t.Errorf("Reason = %q, want %q", got.Reason, "reducible")
	}
}

func TestIsKernelInstanceRejectsEmptyClause(t *testing.T) {
	in, err := FromClauses([][]int{{1}, {-1}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	out := NormalizeToKernel(in, nil)
	got := IsKernelInstance(out, nil)
	if got.IsKernel {
		t.Error("IsKernelInstance() on an UNSAT-reduced instance reported IsKernel=true")
	}
	if got.Reason != "empty clause" {
		t.Errorf("Reason = %q, want %q", got.Reason, "empty clause")
	}
}

func TestIsKernelInstanceRejectsStrict2SATFamily(t *testing.T) {
	// A strict 2-SAT instance (every clause has exactly two literals) is
	// always polynomially decidable, so it must never classify as a
	// kernel instance, regardless of which earlier triviality gate (LLL,
	// Biathlet, connectivity, Tovey) it happens to also trip.
	in, err := FromClauses([][]int{{1, 2}, {-2, 3}, {-3, 4}, {-4, -1}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	got := IsKernelInstance(in, nil)
	if got.IsKernel {
		t.Error("IsKernelInstance() on a strict 2-SAT instance reported IsKernel=true")
	}
}
