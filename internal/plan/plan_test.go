package plan

import (
	"testing"
	"time"

	"github.com/hikaru-dev/soroban/internal/problemgen"
)

func testProblem(answer int) *problemgen.Problem {
	return &problemgen.Problem{Terms: []int{answer}, Answer: answer}
}

func testPlan(slotsPerPart int) *Plan {
	parts := make([]Part, 0, PartCount)
	for _, pt := range problemgen.AllPartTypes() {
		slots := make([]Slot, slotsPerPart)
		for i := range slots {
			slots[i] = Slot{Purpose: problemgen.PurposeFocus, Problem: testProblem(i + 1)}
		}
		parts = append(parts, Part{Type: pt, Slots: slots})
	}
	return New(parts)
}

func startedPlan(slotsPerPart int) *Plan {
	p := testPlan(slotsPerPart)
	p.Approve()
	p.Start()
	return p
}

func attempt(p *Plan, correct bool) AttemptResult {
	info := p.CurrentProblemInfo()
	if info == nil {
		panic("no current problem")
	}
	return AttemptResult{
		SessionID:         p.ID,
		PartIndex:         info.PartIndex,
		SlotIndex:         info.SlotIndex,
		Problem:           info.Problem,
		Correct:           correct,
		Source:            SourcePractice,
		IsRetry:           info.IsRetry,
		Epoch:             info.Epoch,
		MasteryWeight:     MasteryWeight(correct, info.Epoch),
		OriginalSlotIndex: info.SlotIndex,
	}
}

func TestNew_RequiresThreeParts(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	New([]Part{{Type: problemgen.PartAbacus}})
}

func TestLifecycle(t *testing.T) {
	p := testPlan(1)
	if p.Status != StatusDraft {
		t.Fatalf("Status = %s, want draft", p.Status)
	}
	p.Approve()
	p.Start()
	if p.Status != StatusInProgress {
		t.Fatalf("Status = %s, want in_progress", p.Status)
	}
	p.Abandon()
	if p.Status != StatusAbandoned {
		t.Fatalf("Status = %s, want abandoned", p.Status)
	}
}

func TestLifecycle_InvalidTransitionPanics(t *testing.T) {
	p := testPlan(1)
	defer func() {
		if recover() == nil {
			t.Error("expected panic starting a draft")
		}
	}()
	p.Start()
}

func TestSetEpochCap_Bounds(t *testing.T) {
	p := testPlan(1)
	p.SetEpochCap(0)
	p.SetEpochCap(MaxRetryEpochs)
	defer func() {
		if recover() == nil {
			t.Error("expected panic raising cap past the invariant")
		}
	}()
	p.SetEpochCap(MaxRetryEpochs + 1)
}

func TestMasteryWeight(t *testing.T) {
	cases := []struct {
		correct bool
		epoch   int
		want    float64
	}{
		{true, 0, 1},
		{true, 1, 0.5},
		{true, 2, 0.25},
		{true, 5, 0.03125},
		{false, 0, 0},
		{false, 2, 0},
	}
	for _, tc := range cases {
		if got := MasteryWeight(tc.correct, tc.epoch); got != tc.want {
			t.Errorf("MasteryWeight(%v, %d) = %v, want %v", tc.correct, tc.epoch, got, tc.want)
		}
	}
}

func TestMasteryWeight_NegativeEpochPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MasteryWeight(true, -1)
}

func TestRecordResult_AllCorrectCompletes(t *testing.T) {
	p := startedPlan(2)
	for p.Status == StatusInProgress {
		p.RecordResult(attempt(p, true))
	}
	if p.Status != StatusCompleted {
		t.Fatalf("Status = %s, want completed", p.Status)
	}
	if len(p.Results) != PartCount*2 {
		t.Errorf("Results = %d, want %d", len(p.Results), PartCount*2)
	}
	for i := range p.RetryState {
		if rs := p.RetryState[i]; rs != nil && rs.CurrentEpoch != 0 {
			t.Errorf("part %d entered a retry epoch with no misses", i)
		}
	}
}

func TestRecordResult_MissReplaysSameProblem(t *testing.T) {
	p := startedPlan(2)
	missed := p.CurrentProblemInfo().Problem

	p.RecordResult(attempt(p, false)) // slot 0 wrong
	p.RecordResult(attempt(p, true))  // slot 1 correct

	info := p.CurrentProblemInfo()
	if info == nil || !info.IsRetry {
		t.Fatal("expected an active retry item")
	}
	if info.Epoch != 1 || info.SlotIndex != 0 {
		t.Errorf("retry info = epoch %d slot %d, want epoch 1 slot 0", info.Epoch, info.SlotIndex)
	}
	if info.Problem != missed {
		t.Error("retry presented a different problem than the one missed")
	}

	p.RecordResult(attempt(p, true)) // redeem via retry
	if p.CurrentPartIndex != 1 {
		t.Errorf("CurrentPartIndex = %d, want 1 after part resolved", p.CurrentPartIndex)
	}
}

func TestRecordResult_RetryWeightDecays(t *testing.T) {
	p := startedPlan(1)

	p.RecordResult(attempt(p, false)) // epoch 0 miss
	r := attempt(p, true)             // epoch 1 retry
	if r.MasteryWeight != 0.5 {
		t.Errorf("epoch-1 retry weight = %v, want 0.5", r.MasteryWeight)
	}
	p.RecordResult(r)
}

func TestRecordResult_EpochCapExhausted(t *testing.T) {
	p := startedPlan(1)

	// Three total attempts: original plus both retry epochs, all wrong.
	for i := 0; i <= MaxRetryEpochs; i++ {
		info := p.CurrentProblemInfo()
		if info == nil {
			t.Fatalf("no problem at attempt %d", i)
		}
		if info.Epoch != i {
			t.Fatalf("attempt %d at epoch %d", i, info.Epoch)
		}
		p.RecordResult(attempt(p, false))
	}

	// Budget spent: the miss stands and the plan moves on.
	if p.CurrentPartIndex != 1 {
		t.Errorf("CurrentPartIndex = %d, want 1", p.CurrentPartIndex)
	}
	if len(p.Results) != MaxRetryEpochs+1 {
		t.Errorf("Results = %d, want %d", len(p.Results), MaxRetryEpochs+1)
	}
}

func TestRecordResult_EpochCapZeroDisablesRetries(t *testing.T) {
	p := testPlan(1)
	p.SetEpochCap(0)
	p.Approve()
	p.Start()

	p.RecordResult(attempt(p, false))
	if p.CurrentPartIndex != 1 {
		t.Errorf("CurrentPartIndex = %d, want 1 with retries disabled", p.CurrentPartIndex)
	}
}

func TestRecordResult_ZeroWeightSourceNotRetried(t *testing.T) {
	p := startedPlan(1)
	r := attempt(p, false)
	r.Source = SourceRecencyRefresh
	p.RecordResult(r)
	if p.CurrentPartIndex != 1 {
		t.Errorf("recency-refresh miss queued a retry; part index = %d", p.CurrentPartIndex)
	}
}

func TestRecordResult_ResultsAppendOnly(t *testing.T) {
	p := startedPlan(2)
	var seen int
	for p.Status == StatusInProgress {
		before := len(p.Results)
		p.RecordResult(attempt(p, seen%2 == 0))
		seen++
		if len(p.Results) != before+1 {
			t.Fatalf("results log did not grow by exactly one")
		}
	}
}

func TestRecordResult_WrongPartPanics(t *testing.T) {
	p := startedPlan(1)
	r := attempt(p, true)
	r.PartIndex = 2
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	p.RecordResult(r)
}

func TestRecordResult_SpuriousRetryPanics(t *testing.T) {
	p := startedPlan(1)
	r := attempt(p, true)
	r.IsRetry = true
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	p.RecordResult(r)
}

func TestRedeemSlot_BeforeEpochStarts(t *testing.T) {
	p := startedPlan(2)
	p.RecordResult(attempt(p, false)) // miss slot 0
	p.RedeemSlot(0, 0)                // corrected by manual redo
	p.RecordResult(attempt(p, true))  // slot 1

	// The pending retry was redeemed, so no epoch runs.
	if p.CurrentPartIndex != 1 {
		t.Errorf("CurrentPartIndex = %d, want 1", p.CurrentPartIndex)
	}
}

func TestRedeemSlot_SkipsActiveRetryItem(t *testing.T) {
	p := startedPlan(3)
	p.RecordResult(attempt(p, false)) // miss slot 0
	p.RecordResult(attempt(p, false)) // miss slot 1
	p.RecordResult(attempt(p, true))  // slot 2

	info := p.CurrentProblemInfo()
	if info == nil || !info.IsRetry || info.SlotIndex != 0 {
		t.Fatal("expected retry epoch starting at slot 0")
	}

	p.RedeemSlot(0, 0)
	info = p.CurrentProblemInfo()
	if info == nil || info.SlotIndex != 1 {
		t.Fatalf("expected retry cursor to skip to slot 1, got %+v", info)
	}

	p.RecordResult(attempt(p, true))
	if p.CurrentPartIndex != 1 {
		t.Errorf("CurrentPartIndex = %d, want 1", p.CurrentPartIndex)
	}
}

func TestCurrentProblemInfo_NilOutsideProgress(t *testing.T) {
	p := testPlan(1)
	if p.CurrentProblemInfo() != nil {
		t.Error("draft plan should have no current problem")
	}
	p.Approve()
	p.Start()
	for p.Status == StatusInProgress {
		p.RecordResult(attempt(p, true))
	}
	if p.CurrentProblemInfo() != nil {
		t.Error("completed plan should have no current problem")
	}
}

func TestHealth(t *testing.T) {
	p := startedPlan(2)
	p.Results = []AttemptResult{
		{Correct: true, ResponseTimeMs: 2000},
		{Correct: false, ResponseTimeMs: 4000},
		{Correct: true, ResponseTimeMs: 2000},
		{Correct: true, ResponseTimeMs: 2000},
	}
	h := p.Health(2*time.Minute, 1.0)
	if h.Accuracy != 0.75 {
		t.Errorf("Accuracy = %v, want 0.75", h.Accuracy)
	}
	if h.Streak != 2 {
		t.Errorf("Streak = %d, want 2", h.Streak)
	}
	if h.AvgResponseMs != 2500 {
		t.Errorf("AvgResponseMs = %v, want 2500", h.AvgResponseMs)
	}
	if h.PacePct != 200 {
		t.Errorf("PacePct = %v, want 200", h.PacePct)
	}
	if h.Status != HealthOn {
		t.Errorf("Status = %s, want on-track", h.Status)
	}
}

func TestHealth_Struggling(t *testing.T) {
	p := startedPlan(2)
	p.Results = []AttemptResult{
		{Correct: false}, {Correct: false}, {Correct: true},
	}
	if h := p.Health(time.Minute, 10); h.Status != HealthStruggling {
		t.Errorf("Status = %s, want struggling", h.Status)
	}
}

func TestHealth_BehindPace(t *testing.T) {
	p := startedPlan(2)
	p.Results = []AttemptResult{{Correct: true}}
	if h := p.Health(10*time.Minute, 1.0); h.Status != HealthBehind {
		t.Errorf("Status = %s, want behind-pace", h.Status)
	}
}

func TestHealth_Empty(t *testing.T) {
	p := startedPlan(1)
	if h := p.Health(time.Minute, 1.0); h.Status != HealthOn {
		t.Errorf("empty log Status = %s, want on-track", h.Status)
	}
}
