package comfort

import (
	"math"
	"testing"

	"github.com/hikaru-dev/soroban/internal/bkt"
	"github.com/hikaru-dev/soroban/internal/skills"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCompute_NoEvidence(t *testing.T) {
	practicing := []skills.ID{skills.DirectAddition, skills.HeavenBead}
	lvl := Compute(nil, practicing, ModeProgression, DefaultConfig())
	if !almostEqual(lvl.Value, 0.3) {
		t.Errorf("Value = %v, want default 0.3", lvl.Value)
	}
	if lvl.Factors.AvgMastery != nil {
		t.Error("AvgMastery should be nil with no evidence")
	}
}

func TestCompute_ZeroConfidenceIsNoEvidence(t *testing.T) {
	results := map[skills.ID]bkt.Result{
		skills.DirectAddition: {PKnown: 0.9, Confidence: 0},
	}
	lvl := Compute(results, []skills.ID{skills.DirectAddition}, ModeMaintenance, DefaultConfig())
	if !almostEqual(lvl.Value, 0.3) || lvl.Factors.AvgMastery != nil {
		t.Errorf("zero-confidence result should fall back to default, got %v", lvl.Value)
	}
}

func TestCompute_SingleSkill(t *testing.T) {
	results := map[skills.ID]bkt.Result{
		skills.DirectAddition: {PKnown: 0.8, Confidence: 0.6},
	}
	lvl := Compute(results, []skills.ID{skills.DirectAddition}, ModeProgression, DefaultConfig())

	bonus := math.Log(2) / 20
	want := 0.8*0.85 + bonus
	if !almostEqual(lvl.Value, want) {
		t.Errorf("Value = %v, want %v", lvl.Value, want)
	}
	if lvl.Factors.AvgMastery == nil || !almostEqual(*lvl.Factors.AvgMastery, 0.8) {
		t.Errorf("AvgMastery = %v, want 0.8", lvl.Factors.AvgMastery)
	}
	if !almostEqual(lvl.Factors.SkillCountBonus, bonus) {
		t.Errorf("SkillCountBonus = %v, want %v", lvl.Factors.SkillCountBonus, bonus)
	}
}

func TestCompute_ConfidenceWeighting(t *testing.T) {
	a := skills.DirectAddition
	b := skills.HeavenBead
	results := map[skills.ID]bkt.Result{
		a: {PKnown: 1.0, Confidence: 0.9},
		b: {PKnown: 0.0, Confidence: 0.1},
	}
	lvl := Compute(results, []skills.ID{a, b}, ModeMaintenance, DefaultConfig())

	// The confident skill dominates: avg = (1.0*0.9 + 0.0*0.1) / 1.0 = 0.9.
	if lvl.Factors.AvgMastery == nil || !almostEqual(*lvl.Factors.AvgMastery, 0.9) {
		t.Errorf("AvgMastery = %v, want 0.9", lvl.Factors.AvgMastery)
	}
}

func TestCompute_ModeMultipliers(t *testing.T) {
	results := map[skills.ID]bkt.Result{
		skills.DirectAddition: {PKnown: 0.8, Confidence: 0.5},
	}
	practicing := []skills.ID{skills.DirectAddition}
	cfg := DefaultConfig()

	rem := Compute(results, practicing, ModeRemediation, cfg).Value
	prog := Compute(results, practicing, ModeProgression, cfg).Value
	maint := Compute(results, practicing, ModeMaintenance, cfg).Value
	if !(rem < prog && prog < maint) {
		t.Errorf("mode ordering broken: rem=%v prog=%v maint=%v", rem, prog, maint)
	}
}

func TestCompute_UnknownModeDefaultsToUnity(t *testing.T) {
	results := map[skills.ID]bkt.Result{
		skills.DirectAddition: {PKnown: 0.5, Confidence: 0.5},
	}
	lvl := Compute(results, []skills.ID{skills.DirectAddition}, Mode("mystery"), DefaultConfig())
	if !almostEqual(lvl.Factors.ModeMultiplier, 1.0) {
		t.Errorf("ModeMultiplier = %v, want 1.0", lvl.Factors.ModeMultiplier)
	}
}

func TestCompute_BonusCapAndClamp(t *testing.T) {
	results := make(map[skills.ID]bkt.Result)
	var practicing []skills.ID
	for _, id := range skills.Catalog() {
		results[id] = bkt.Result{PKnown: 1.0, Confidence: 1.0}
		practicing = append(practicing, id)
	}
	lvl := Compute(results, practicing, ModeMaintenance, DefaultConfig())
	if !almostEqual(lvl.Factors.SkillCountBonus, 0.15) {
		t.Errorf("SkillCountBonus = %v, want capped 0.15", lvl.Factors.SkillCountBonus)
	}
	if !almostEqual(lvl.Value, 1.0) {
		t.Errorf("Value = %v, want clamped 1.0", lvl.Value)
	}
}
