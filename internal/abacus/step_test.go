package abacus

import (
	"testing"

	"github.com/hikaru-dev/soroban/internal/skills"
)

func TestAnalyzeStep_BeadStateMatters(t *testing.T) {
	// +4 from 0: four earth beads are free.
	a := AnalyzeStep(0, 4)
	assertSkills(t, a, skills.DirectAddition)
	if a.Cost != 0 {
		t.Errorf("Cost = %d, want 0", a.Cost)
	}

	// +4 from 2: only two earth beads left, needs 4=5-1.
	a = AnalyzeStep(2, 4)
	assertSkills(t, a, skills.ID{Category: skills.CategoryFiveComplements, Key: "4=5-1"})
	if a.Cost != 1 {
		t.Errorf("Cost = %d, want 1", a.Cost)
	}
}

func TestAnalyzeStep_HeavenBead(t *testing.T) {
	assertSkills(t, AnalyzeStep(3, 5), skills.HeavenBead)
	assertSkills(t, AnalyzeStep(8, -5), skills.HeavenBeadSubtraction)
}

func TestAnalyzeStep_SimpleCombinations(t *testing.T) {
	// +7 from 2: heaven bead plus two earth beads, no carry.
	assertSkills(t, AnalyzeStep(2, 7), skills.SimpleCombinations)
	// -7 from 9: clear heaven bead and two earth beads.
	assertSkills(t, AnalyzeStep(9, -7), skills.SimpleCombinationsSub)
}

func TestAnalyzeStep_TenComplementCarry(t *testing.T) {
	// 8+4=12: carry, 4=10-6.
	a := AnalyzeStep(8, 4)
	assertSkills(t, a, skills.ID{Category: skills.CategoryTenComplements, Key: "4=10-6"})
	if a.Cost != 2 {
		t.Errorf("Cost = %d, want 2", a.Cost)
	}
}

func TestAnalyzeStep_CascadingCarry(t *testing.T) {
	// 99+1=100: the ones-column carry overflows the tens column too.
	a := AnalyzeStep(99, 1)
	assertSkills(t, a,
		skills.ID{Category: skills.CategoryTenComplements, Key: "1=10-9"},
		skills.CascadingCarry)
	if a.Cost != 2+3 {
		t.Errorf("Cost = %d, want 5", a.Cost)
	}
}

func TestAnalyzeStep_TenComplementBorrow(t *testing.T) {
	// 12-4=8: borrow, 4=10-6.
	a := AnalyzeStep(12, -4)
	assertSkills(t, a, skills.ID{Category: skills.CategoryTenComplementsSub, Key: "4=10-6"})
	if a.Cost != 2 {
		t.Errorf("Cost = %d, want 2", a.Cost)
	}
}

func TestAnalyzeStep_CascadingBorrow(t *testing.T) {
	// 100-1=99: the tens column is empty, so the borrow ripples.
	a := AnalyzeStep(100, -1)
	assertSkills(t, a,
		skills.ID{Category: skills.CategoryTenComplementsSub, Key: "1=10-9"},
		skills.CascadingBorrow)
	if a.Cost != 2+3 {
		t.Errorf("Cost = %d, want 5", a.Cost)
	}
}

func TestAnalyzeStep_MultiColumn(t *testing.T) {
	// 0+23: direct in both columns, deduplicated to one skill.
	a := AnalyzeStep(0, 23)
	assertSkills(t, a, skills.DirectAddition)

	// 5+17: ones column 5+7=12 carries (7=10-3); the carried one lands on
	// the new tens digit alongside +1, handled as direct movements.
	a = AnalyzeStep(5, 17)
	if len(a.Skills) == 0 || a.Skills[0] != (skills.ID{Category: skills.CategoryTenComplements, Key: "7=10-3"}) {
		t.Errorf("Skills = %v, want ten complement 7=10-3 first", a.Skills)
	}
}

func TestAnalyzeStep_Panics(t *testing.T) {
	cases := []struct {
		name           string
		current, delta int
	}{
		{"negative board", -1, 2},
		{"below zero", 3, -5},
		{"zero step", 4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			AnalyzeStep(tc.current, tc.delta)
		})
	}
}

func TestAnalysisCache(t *testing.T) {
	c := NewAnalysisCache()
	first := c.Analyze(2, 4)
	second := c.Analyze(2, 4)
	if len(first.Skills) != len(second.Skills) || first.Cost != second.Cost {
		t.Error("cached result differs from computed result")
	}
	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Size != 1 {
		t.Errorf("Stats = %+v, want 1 hit, 1 miss, size 1", stats)
	}
}

func TestAnalysisCache_NilSafe(t *testing.T) {
	var c *AnalysisCache
	a := c.Analyze(0, 4)
	if len(a.Skills) != 1 || a.Skills[0] != skills.DirectAddition {
		t.Errorf("nil cache Analyze = %v", a.Skills)
	}
	if s := c.Stats(); s != (CacheStats{}) {
		t.Errorf("nil cache Stats = %+v", s)
	}
}

func assertSkills(t *testing.T, a StepAnalysis, want ...skills.ID) {
	t.Helper()
	if len(a.Skills) != len(want) {
		t.Fatalf("Skills = %v, want %v", a.Skills, want)
	}
	for i := range want {
		if a.Skills[i] != want[i] {
			t.Errorf("Skills[%d] = %v, want %v", i, a.Skills[i], want[i])
		}
	}
}
