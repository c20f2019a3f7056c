package comfort

import "testing"

func TestRangeForLevel(t *testing.T) {
	base := TermCountRange{Min: 2, Max: 4}
	ceiling := TermCountRange{Min: 5, Max: 10}

	cases := []struct {
		level float64
		want  TermCountRange
	}{
		{0, TermCountRange{Min: 2, Max: 4}},
		{1, TermCountRange{Min: 5, Max: 10}},
		{0.5, TermCountRange{Min: 4, Max: 7}},
		{-2, TermCountRange{Min: 2, Max: 4}},  // clamped low
		{1.5, TermCountRange{Min: 5, Max: 10}}, // clamped high
	}
	for _, tc := range cases {
		got := RangeForLevel(tc.level, base, ceiling)
		if got != tc.want {
			t.Errorf("RangeForLevel(%v) = %+v, want %+v", tc.level, got, tc.want)
		}
	}
}

func TestApplyTermCountOverride_CeilingOnly(t *testing.T) {
	computed := TermCountRange{Min: 4, Max: 8}

	// Override can lower.
	got := ApplyTermCountOverride(computed, &TermCountRange{Min: 2, Max: 6})
	if got != (TermCountRange{Min: 4, Max: 6}) {
		t.Errorf("got %+v, want {4 6}", got)
	}

	// Override never raises.
	got = ApplyTermCountOverride(computed, &TermCountRange{Min: 6, Max: 20})
	if got != computed {
		t.Errorf("got %+v, want unchanged %+v", got, computed)
	}

	// Nil override is a no-op.
	if got := ApplyTermCountOverride(computed, nil); got != computed {
		t.Errorf("nil override changed range: %+v", got)
	}
}

func TestApplyTermCountOverride_Floor(t *testing.T) {
	got := ApplyTermCountOverride(TermCountRange{Min: 3, Max: 7}, &TermCountRange{Min: 1, Max: 1})
	if got != (TermCountRange{Min: 2, Max: 2}) {
		t.Errorf("got %+v, want floored {2 2}", got)
	}
}

func TestApplyTermCountOverride_Idempotent(t *testing.T) {
	override := &TermCountRange{Min: 2, Max: 5}
	once := ApplyTermCountOverride(TermCountRange{Min: 4, Max: 9}, override)
	twice := ApplyTermCountOverride(once, override)
	if once != twice {
		t.Errorf("not idempotent: %+v then %+v", once, twice)
	}
}
