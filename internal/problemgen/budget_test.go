package problemgen

import "testing"

func TestBoundsFor_PartCeilings(t *testing.T) {
	table := DefaultBudgetTable()

	cases := []struct {
		part PartType
		want int
	}{
		{PartAbacus, 4},
		{PartVisualization, 2},
		{PartLinear, 4},
	}
	for _, tc := range cases {
		b := table.BoundsFor(PurposeFocus, tc.part)
		if b.Min != nil {
			t.Errorf("%s: unexpected lower bound", tc.part)
		}
		if b.Max == nil || *b.Max != tc.want {
			t.Errorf("%s: Max = %v, want %d", tc.part, b.Max, tc.want)
		}
	}
}

func TestBoundsFor_Challenge(t *testing.T) {
	table := DefaultBudgetTable()
	for _, part := range AllPartTypes() {
		b := table.BoundsFor(PurposeChallenge, part)
		if b.Min == nil || *b.Min != table.ChallengeMin {
			t.Errorf("%s challenge: Min = %v, want %d", part, b.Min, table.ChallengeMin)
		}
		if b.Max != nil {
			t.Errorf("%s challenge: unexpected ceiling %d", part, *b.Max)
		}
	}
}

func TestBoundsFor_Pure(t *testing.T) {
	table := DefaultBudgetTable()
	a := table.BoundsFor(PurposeReview, PartVisualization)
	b := table.BoundsFor(PurposeReview, PartVisualization)
	if *a.Max != *b.Max {
		t.Error("identical lookups returned different bounds")
	}
}

func TestBoundsFor_UnknownPart(t *testing.T) {
	table := DefaultBudgetTable()
	b := table.BoundsFor(PurposeFocus, PartType("unknown"))
	if b.Min != nil || b.Max != nil {
		t.Errorf("unknown part should be unbounded, got %+v", b)
	}
}
