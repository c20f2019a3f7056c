package readiness

import (
	"fmt"
	"testing"

	"github.com/hikaru-dev/soroban/internal/bkt"
	"github.com/hikaru-dev/soroban/internal/plan"
	"github.com/hikaru-dev/soroban/internal/problemgen"
	"github.com/hikaru-dev/soroban/internal/skills"
)

// solidHistory builds a log that passes every default gate: 32 correct,
// help-free attempts spread over 4 sessions at one second per term.
func solidHistory() []plan.AttemptResult {
	out := make([]plan.AttemptResult, 0, 32)
	for i := 0; i < 32; i++ {
		out = append(out, plan.AttemptResult{
			SessionID:      fmt.Sprintf("session-%d", i/8),
			Problem:        &problemgen.Problem{Terms: []int{1, 2, 3}},
			Correct:        true,
			ResponseTimeMs: 3000, // 1s per term
			Source:         plan.SourcePractice,
		})
	}
	return out
}

func TestAssess_SolidSkill(t *testing.T) {
	res := Assess(skills.DirectAddition, solidHistory(),
		&bkt.Result{PKnown: 0.9, Confidence: 0.7}, DefaultThresholds())

	if !res.Mastery.Met || !res.Volume.Met || !res.Speed.Met || !res.Consistency.Met {
		t.Fatalf("dimensions = %+v, want all met", res)
	}
	if !res.IsSolid {
		t.Error("IsSolid = false, want true")
	}
}

func TestAssess_AnyDimensionBlocks(t *testing.T) {
	th := DefaultThresholds()
	history := solidHistory()
	goodBKT := &bkt.Result{PKnown: 0.9, Confidence: 0.7}

	// Mastery fails.
	res := Assess(skills.DirectAddition, history, &bkt.Result{PKnown: 0.7, Confidence: 0.7}, th)
	if res.Mastery.Met || res.IsSolid {
		t.Error("low pKnown should block")
	}

	// Confidence alone fails mastery.
	res = Assess(skills.DirectAddition, history, &bkt.Result{PKnown: 0.95, Confidence: 0.3}, th)
	if res.Mastery.Met {
		t.Error("low confidence should block the mastery dimension")
	}

	// Speed fails: 20 seconds over 3 terms.
	slow := solidHistory()
	for i := range slow {
		slow[i].ResponseTimeMs = 20000
	}
	res = Assess(skills.DirectAddition, slow, goodBKT, th)
	if res.Speed.Met || res.IsSolid {
		t.Error("slow history should block")
	}

	// Consistency fails on a single recent miss.
	missed := solidHistory()
	missed[len(missed)-1].Correct = false
	res = Assess(skills.DirectAddition, missed, goodBKT, th)
	if res.Consistency.Met || res.IsSolid {
		t.Error("recent miss should block the perfect tail")
	}

	// Consistency fails on recent help even when correct.
	helped := solidHistory()
	helped[len(helped)-1].UsedHelp = true
	res = Assess(skills.DirectAddition, helped, goodBKT, th)
	if res.Consistency.Met {
		t.Error("recent help use should block the perfect tail")
	}
}

func TestAssess_VolumeRequiresSessionSpread(t *testing.T) {
	history := solidHistory()
	for i := range history {
		history[i].SessionID = "only-one"
	}
	res := Assess(skills.DirectAddition, history,
		&bkt.Result{PKnown: 0.9, Confidence: 0.7}, DefaultThresholds())
	if res.Volume.Met {
		t.Error("one session should not satisfy the volume gate")
	}
}

func TestAssess_ZeroOpportunitiesVolumePasses(t *testing.T) {
	res := Assess(skills.CascadingCarry, nil, nil, DefaultThresholds())
	if !res.Volume.Met {
		t.Error("never-practiced skill should pass volume")
	}
	// But it is not solid: mastery, speed, and consistency all fail.
	if res.IsSolid {
		t.Error("never-practiced skill reported solid")
	}
	if res.Mastery.Met || res.Speed.Met || res.Consistency.Met {
		t.Error("empty history should fail the evidence-based dimensions")
	}
}

func TestAssess_RetriesAndBookkeepingExcluded(t *testing.T) {
	history := solidHistory()
	// Pile on failed retries and zero-weight records; none should count.
	for i := 0; i < 10; i++ {
		history = append(history, plan.AttemptResult{
			SessionID: "retry-session",
			Correct:   false,
			IsRetry:   true,
			Source:    plan.SourcePractice,
		})
		history = append(history, plan.AttemptResult{
			SessionID: "refresh-session",
			Correct:   false,
			Source:    plan.SourceRecencyRefresh,
		})
	}
	res := Assess(skills.DirectAddition, history,
		&bkt.Result{PKnown: 0.9, Confidence: 0.7}, DefaultThresholds())
	if !res.IsSolid {
		t.Error("retries and bookkeeping records leaked into readiness evidence")
	}
}

func TestAssess_SpeedUsesMedian(t *testing.T) {
	history := solidHistory()
	// One outlier inside the window must not flip the median.
	history[len(history)-1].ResponseTimeMs = 60000
	res := Assess(skills.DirectAddition, history,
		&bkt.Result{PKnown: 0.9, Confidence: 0.7}, DefaultThresholds())
	if !res.Speed.Met {
		t.Errorf("median should absorb one outlier, value = %v", res.Speed.Value)
	}
}

func TestAssessAll_AndAllSolid(t *testing.T) {
	practicing := []skills.ID{skills.DirectAddition, skills.HeavenBead}
	histories := map[skills.ID][]plan.AttemptResult{
		skills.DirectAddition: solidHistory(),
	}
	estimates := map[skills.ID]bkt.Result{
		skills.DirectAddition: {PKnown: 0.9, Confidence: 0.7},
	}

	results := AssessAll(histories, estimates, practicing, DefaultThresholds())
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if !results[skills.DirectAddition].IsSolid {
		t.Error("DirectAddition should be solid")
	}
	if results[skills.HeavenBead].IsSolid {
		t.Error("unpracticed HeavenBead should not be solid")
	}
	if AllSolid(results) {
		t.Error("AllSolid should be false with one unsolid skill")
	}

	delete(results, skills.HeavenBead)
	if !AllSolid(results) {
		t.Error("AllSolid should be true when every entry is solid")
	}
}

func TestMedian(t *testing.T) {
	if got := median([]float64{3, 1, 2}); got != 2 {
		t.Errorf("odd median = %v, want 2", got)
	}
	if got := median([]float64{4, 1, 2, 3}); got != 2.5 {
		t.Errorf("even median = %v, want 2.5", got)
	}
}
