package semiring

import "testing"

func TestMinPlusPropagateTakesSmaller(t *testing.T) {
	got := MinPlus.Propagate(3.5, 1.2)
	if got != 1.2 {
		t.Fatalf("want 1.2, got %v", got)
	}
}

func TestMinPlusCombineAdds(t *testing.T) {
	got := MinPlus.Combine(2, 3)
	if got != 5 {
		t.Fatalf("want 5, got %v", got)
	}
}

func TestMinPlusIdentityIsAbsorbingUnderPropagate(t *testing.T) {
	got := MinPlus.Propagate(MinPlus.Identity(), 7)
	if got != MinPlus.Identity() {
		t.Fatalf("want %v, got %v", MinPlus.Identity(), got)
	}
}

func TestMaxProbPropagateTakesLarger(t *testing.T) {
	got := MaxProb.Propagate(0.3, 0.8)
	if got != 0.8 {
		t.Fatalf("want 0.8, got %v", got)
	}
}

func TestMaxProbCombineMultiplies(t *testing.T) {
	got := MaxProb.Combine(0.5, 0.4)
	if got != 0.2 {
		t.Fatalf("want 0.2, got %v", got)
	}
}

func TestMaxProbIdentityIsNeutralUnderCombine(t *testing.T) {
	got := MaxProb.Combine(MaxProb.Identity(), 0.63)
	if got != 0.63 {
		t.Fatalf("want 0.63, got %v", got)
	}
}
