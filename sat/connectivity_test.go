package sat

import "testing"

func TestIsOneConnectedComponentTrue(t *testing.T) {
	in, err := FromClauses([][]int{{1, 2}, {2, 3}, {3, 4}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	if !IsOneConnectedComponent(in) {
		t.Error("IsOneConnectedComponent() on a chained formula = false, want true")
	}
}

func TestIsOneConnectedComponentFalse(t *testing.T) {
	in, err := FromClauses([][]int{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	if IsOneConnectedComponent(in) {
		t.Error("IsOneConnectedComponent() on two disjoint clauses = true, want false")
	}
}

func TestIsOneConnectedComponentTrivialCases(t *testing.T) {
	empty, err := FromClauses(nil)
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	if !IsOneConnectedComponent(empty) {
		t.Error("IsOneConnectedComponent() on the empty instance = false, want true")
	}

	single, err := FromClauses([][]int{{1, 2, 3}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	if !IsOneConnectedComponent(single) {
		t.Error("IsOneConnectedComponent() on a single clause = false, want true")
	}
}
