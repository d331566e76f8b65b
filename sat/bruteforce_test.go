package sat

import "testing"

func TestIsSatisfiableBruteForceSAT(t *testing.T) {
	in, err := FromClauses([][]int{{1, 2}, {-1, 3}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	sat, tries := IsSatisfiableBruteForce(in)
	if !sat {
		t.Error("IsSatisfiableBruteForce() = false, want true")
	}
	if tries <= 0 || tries > 8 {
		t.Errorf("tries = %d, want in (0, 8]", tries)
	}
}

func TestIsSatisfiableBruteForceUNSAT(t *testing.T) {
	in, err := FromClauses([][]int{{1, 2}, {-1, 2}, {1, -2}, {-1, -2}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	sat, tries := IsSatisfiableBruteForce(in)
	if sat {
		t.Error("IsSatisfiableBruteForce() = true, want false")
	}
	if tries != 4 {
		t.Errorf("tries = %d, want 4 (all 2^2 assignments exhausted)", tries)
	}
}

func TestIsSatisfiableBruteForceEmptyInstance(t *testing.T) {
	in, err := FromClauses(nil)
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	sat, tries := IsSatisfiableBruteForce(in)
	if !sat || tries != 0 {
		t.Errorf("IsSatisfiableBruteForce() on the empty instance = (%v, %d), want (true, 0)", sat, tries)
	}
}
