package sat

import (
	"testing"

	"github.com/ashgrove-vane/satkernel/core"
)

func TestIsSatisfiableDantsinFindsSatisfiableInstance(t *testing.T) {
	// n=3 makes CoveringRadius(3) = floor(0.75) = 0: the dense covering
	// code at that radius must enumerate every one of the 8 points (a
	// radius-0 ball covers only its own center), so one codeword already
	// satisfies the instance outright and no flips are needed.
	in, err := FromClauses([][]int{{1, 2, 3}, {-1, 2}, {-2, 3}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	sat, _ := IsSatisfiableDantsin(in, core.NewSystemRand(13))
	if !sat {
		t.Error("IsSatisfiableDantsin() = false, want true")
	}
}

// TestIsSatisfiableDantsinFindsSatisfiableInstanceWithFlips uses n=8 so
// CoveringRadius(8)=2 is positive: the first codeword tried is all-false,
// which satisfies none of these clauses and lies four flips from any
// solution, so the radius-2 search from it branches and flips before
// failing, and the count is positive whichever later codeword succeeds.
func TestIsSatisfiableDantsinFindsSatisfiableInstanceWithFlips(t *testing.T) {
	in, err := FromClauses([][]int{{1, 2}, {3, 4}, {5, 6}, {7, 8}})
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	sat, flips := IsSatisfiableDantsin(in, core.NewSystemRand(14))
	if !sat {
		t.Error("IsSatisfiableDantsin() = false, want true")
	}
	if flips <= 0 {
		t.Errorf("flips = %d, want > 0", flips)
	}
}

func TestIsSatisfiableDantsinEmptyInstance(t *testing.T) {
	in, err := FromClauses(nil)
	if err != nil {
		t.Fatalf("FromClauses returned error: %v", err)
	}
	sat, flips := IsSatisfiableDantsin(in, core.NewSystemRand(15))
	if !sat || flips != 0 {
		t.Errorf("IsSatisfiableDantsin() on the empty instance = (%v, %d), want (true, 0)", sat, flips)
	}
}
