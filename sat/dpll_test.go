package sat

import "testing"

func TestIsSatisfiableDPLLSimpleSAT(t *testing.T) {
	in, err := FromClauses([][]int{{1, 2}, {-1, 3}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	sat, iterations := IsSatisfiableDPLL(in, DLIS)
	if !sat {
		t.Error("IsSatisfiableDPLL() = false, want true")
	}
	if iterations <= 0 {
		t.Errorf("iterations = %d, want > 0", iterations)
	}
}

func TestIsSatisfiableDPLLUnitContradiction(t *testing.T) {
	in, err := FromClauses([][]int{{1}, {-1}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	sat, _ := IsSatisfiableDPLL(in, DLIS)
	if sat {
		t.Error("IsSatisfiableDPLL() = true, want false")
	}
}

func TestIsSatisfiableDPLLUnsat8Clause3Var(t *testing.T) {
	// All 8 combinations of 3 variables excluded: unsatisfiable.
	in, err := FromClauses([][]int{
		{1, 2, 3}, {1, 2, -3}, {1, -2, 3}, {1, -2, -3},
		{-1, 2, 3}, {-1, 2, -3}, {-1, -2, 3}, {-1, -2, -3},
	})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	sat, _ := IsSatisfiableDPLL(in, DLIS)
	if sat {
		t.Error("IsSatisfiableDPLL() on all 8 clauses over 3 variables = true, want false")
	}
}

func TestIsSatisfiableDPLLAgreesWithRecursiveForm(t *testing.T) {
	heuristics := []Heuristic{DLIS, DLCS, MOM, JeroslawWang, JeroslawWangTwoSided, ShortestClause}
	instances := [][][]int{
		{{1, 2}, {-1, 3}, {-2, -3}},
		{{1}, {-1}},
		{{1, 2, 3}, {-1, -2}, {2, -3}},
	}

	for _, raw := range instances {
		in, err := FromClauses(raw)
		if err != nil {
			t.Fatalf("FromClauses returned error: %v", err)
		}
		for _, h := range heuristics {
			iterative, _ := IsSatisfiableDPLL(in, h)
			recursive := IsSatisfiableDPLLRecursive(in, h)
			if iterative != recursive {
				t.Errorf("IsSatisfiableDPLL=%v, IsSatisfiableDPLLRecursive=%v disagree on %v", iterative, recursive, raw)
			}
		}
	}
}
