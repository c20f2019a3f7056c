package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/hikaru-dev/soroban/internal/bkt"
	"github.com/hikaru-dev/soroban/internal/comfort"
	"github.com/hikaru-dev/soroban/internal/config"
	"github.com/hikaru-dev/soroban/internal/plan"
	"github.com/hikaru-dev/soroban/internal/skills"
	"github.com/hikaru-dev/soroban/internal/store"
)

// mockEventRepo implements store.EventRepo in memory.
type mockEventRepo struct {
	records   []store.AttemptRecord
	sessions  []store.SessionEventData
	masteries []store.MasteryEventData
	seq       int64
}

func (m *mockEventRepo) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	m.seq++
	m.records = append(m.records, store.AttemptRecord{
		Sequence:         m.seq,
		Timestamp:        time.Now().UTC(),
		AttemptEventData: data,
	})
	return nil
}

func (m *mockEventRepo) AppendSession(_ context.Context, data store.SessionEventData) error {
	m.sessions = append(m.sessions, data)
	return nil
}

func (m *mockEventRepo) AppendMastery(_ context.Context, data store.MasteryEventData) error {
	m.masteries = append(m.masteries, data)
	return nil
}

func (m *mockEventRepo) Attempts(_ context.Context) ([]store.AttemptRecord, error) {
	return m.records, nil
}

// mockSnapshotRepo implements store.PlanSnapshotRepo with compare-and-swap.
type mockSnapshotRepo struct {
	snaps map[string]*store.PlanSnapshot
	fail  error
}

func newMockSnapshotRepo() *mockSnapshotRepo {
	return &mockSnapshotRepo{snaps: make(map[string]*store.PlanSnapshot)}
}

func (m *mockSnapshotRepo) Save(_ context.Context, planID string, expectedVersion int64, data map[string]any) (int64, error) {
	if m.fail != nil {
		return 0, m.fail
	}
	existing := m.snaps[planID]
	if expectedVersion == 0 {
		if existing != nil {
			return 0, store.ErrVersionConflict
		}
		m.snaps[planID] = &store.PlanSnapshot{PlanID: planID, Version: 1, Data: data}
		return 1, nil
	}
	if existing == nil || existing.Version != expectedVersion {
		return 0, store.ErrVersionConflict
	}
	existing.Version++
	existing.Data = data
	return existing.Version, nil
}

func (m *mockSnapshotRepo) Get(_ context.Context, planID string) (*store.PlanSnapshot, error) {
	return m.snaps[planID], nil
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Session.SlotsPerPart = 1
	// The full catalog keeps every sampled sequence admissible, so slot
	// generation succeeds deterministically.
	var practicing []string
	for _, id := range skills.Catalog() {
		practicing = append(practicing, id.String())
	}
	cfg.Session.PracticingSkills = practicing
	return cfg
}

func newTestService(events *mockEventRepo, snaps *mockSnapshotRepo) *Service {
	return NewService(events, snaps, testConfig(), rand.New(rand.NewSource(1)))
}

func TestBuildPlan_Structure(t *testing.T) {
	svc := newTestService(&mockEventRepo{}, newMockSnapshotRepo())
	p, err := svc.BuildPlan(context.Background(), comfort.ModeProgression)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if p.Status != plan.StatusDraft {
		t.Errorf("Status = %s, want draft", p.Status)
	}
	if len(p.Parts) != plan.PartCount {
		t.Fatalf("Parts = %d, want %d", len(p.Parts), plan.PartCount)
	}
	if p.EpochCap != plan.MaxRetryEpochs {
		t.Errorf("EpochCap = %d, want %d", p.EpochCap, plan.MaxRetryEpochs)
	}
	for i, part := range p.Parts {
		if len(part.Slots) != 1 {
			t.Fatalf("part %d: slots = %d, want 1", i, len(part.Slots))
		}
		if part.Slots[0].Problem == nil {
			t.Errorf("part %d: slot not filled", i)
		}
	}
}

func TestSession_FullRunAllCorrect(t *testing.T) {
	events := &mockEventRepo{}
	snaps := newMockSnapshotRepo()
	svc := newTestService(events, snaps)
	ctx := context.Background()

	p, err := svc.BuildPlan(ctx, comfort.ModeProgression)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if err := svc.Start(ctx, p, string(comfort.ModeProgression)); err != nil {
		t.Fatalf("Start: %v", err)
	}

	for p.Status == plan.StatusInProgress {
		info := p.CurrentProblemInfo()
		res, err := svc.SubmitAnswer(ctx, p, Answer{Value: info.Problem.Answer, ResponseTimeMs: 2000})
		if err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
		if !res.Correct {
			t.Fatal("correct answer graded wrong")
		}
	}

	if len(events.records) != plan.PartCount {
		t.Errorf("attempt events = %d, want %d", len(events.records), plan.PartCount)
	}
	if len(events.sessions) != 2 || events.sessions[0].Kind != "started" || events.sessions[1].Kind != "completed" {
		t.Errorf("session events = %+v, want started then completed", events.sessions)
	}
	if len(events.masteries) != len(skills.Catalog()) {
		t.Errorf("mastery events = %d, want one per practicing skill", len(events.masteries))
	}

	snap, _ := snaps.Get(ctx, p.ID)
	if snap == nil {
		t.Fatal("no plan snapshot saved")
	}
	// One save at start plus one per submitted answer.
	if snap.Version != int64(1+plan.PartCount) {
		t.Errorf("snapshot version = %d, want %d", snap.Version, 1+plan.PartCount)
	}
}

func TestSubmitAnswer_WrongQueuesRetryWithSameProblem(t *testing.T) {
	events := &mockEventRepo{}
	svc := newTestService(events, newMockSnapshotRepo())
	ctx := context.Background()

	p, err := svc.BuildPlan(ctx, comfort.ModeProgression)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if err := svc.Start(ctx, p, "progression"); err != nil {
		t.Fatalf("Start: %v", err)
	}

	missed := p.CurrentProblemInfo().Problem
	res, err := svc.SubmitAnswer(ctx, p, Answer{Value: missed.Answer + 1})
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if res.Correct || res.MasteryWeight != 0 {
		t.Errorf("wrong answer recorded as %+v", res)
	}

	info := p.CurrentProblemInfo()
	if info == nil || !info.IsRetry || info.Epoch != 1 {
		t.Fatalf("expected epoch-1 retry, got %+v", info)
	}
	if info.Problem != missed {
		t.Error("retry regenerated the problem instead of replaying it")
	}

	res, err = svc.SubmitAnswer(ctx, p, Answer{Value: missed.Answer})
	if err != nil {
		t.Fatalf("retry SubmitAnswer: %v", err)
	}
	if !res.Correct || res.MasteryWeight != 0.5 {
		t.Errorf("epoch-1 retry result = correct %v weight %v, want true 0.5", res.Correct, res.MasteryWeight)
	}
	if !events.records[len(events.records)-1].IsRetry {
		t.Error("retry attempt event not flagged as retry")
	}
}

func TestSubmitAnswer_NoCurrentProblem(t *testing.T) {
	svc := newTestService(&mockEventRepo{}, newMockSnapshotRepo())
	p, err := svc.BuildPlan(context.Background(), comfort.ModeProgression)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	// Draft plan: nothing to answer.
	res, err := svc.SubmitAnswer(context.Background(), p, Answer{Value: 1})
	if err != nil || res != nil {
		t.Errorf("SubmitAnswer on draft = %v, %v; want nil, nil", res, err)
	}
}

func TestSavePlan_VersionConflictSurfaces(t *testing.T) {
	snaps := newMockSnapshotRepo()
	svc := newTestService(&mockEventRepo{}, snaps)
	ctx := context.Background()

	p, err := svc.BuildPlan(ctx, comfort.ModeProgression)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	snaps.fail = store.ErrVersionConflict
	err = svc.Start(ctx, p, "progression")
	if !errors.Is(err, store.ErrVersionConflict) {
		t.Errorf("Start error = %v, want version conflict", err)
	}
}

func TestHistories_ShardsPerSkill(t *testing.T) {
	events := &mockEventRepo{}
	for i := 0; i < 3; i++ {
		_ = events.AppendAttempt(context.Background(), store.AttemptEventData{
			SessionID: fmt.Sprintf("s%d", i),
			Terms:     []int{1, 2},
			Answer:    3,
			Correct:   true,
			SkillIDs:  []string{"basic.directAddition", "basic.heavenBead"},
			Source:    string(plan.SourcePractice),
		})
	}
	svc := newTestService(events, newMockSnapshotRepo())

	histories, err := svc.Histories(context.Background())
	if err != nil {
		t.Fatalf("Histories: %v", err)
	}
	if len(histories[skills.DirectAddition]) != 3 {
		t.Errorf("directAddition history = %d, want 3", len(histories[skills.DirectAddition]))
	}
	if len(histories[skills.HeavenBead]) != 3 {
		t.Errorf("heavenBead history = %d, want 3", len(histories[skills.HeavenBead]))
	}
	if len(histories[skills.DirectSubtraction]) != 0 {
		t.Error("unexercised skill has history")
	}
}

func TestObservations_WeightScheme(t *testing.T) {
	history := []plan.AttemptResult{
		{Correct: true, Source: plan.SourcePractice, MasteryWeight: 1},
		{Correct: true, Source: plan.SourcePractice, MasteryWeight: 0.5, IsRetry: true, Epoch: 1},
		{Correct: false, Source: plan.SourcePractice, MasteryWeight: 0},
		{Correct: true, Source: plan.SourceRecencyRefresh, MasteryWeight: 0},
	}
	obs := observations(history)
	wantWeights := []float64{1, 0.5, 1, 0}
	for i, w := range wantWeights {
		if obs[i].Weight != w {
			t.Errorf("obs[%d].Weight = %v, want %v", i, obs[i].Weight, w)
		}
	}
	// Wrong answers are full-weight evidence even though they earn no
	// mastery credit.
	if obs[2].Correct || obs[2].Weight != 1 {
		t.Error("wrong answer should be full-weight incorrect evidence")
	}
}

func TestEstimateAll_PerSkillOverride(t *testing.T) {
	events := &mockEventRepo{}
	_ = events.AppendAttempt(context.Background(), store.AttemptEventData{
		SessionID: "s0",
		Terms:     []int{1},
		Answer:    1,
		Correct:   true,
		SkillIDs:  []string{"basic.directAddition"},
		Source:    string(plan.SourcePractice),
		// Correct answers carry their mastery weight into replay.
		MasteryWeight: 1,
	})

	cfg := testConfig()
	override := cfg.BKT.Params
	override.PInit = 0.9
	cfg.BKT.PerSkill = map[string]bkt.Params{"basic.directAddition": override}

	svc := NewService(events, newMockSnapshotRepo(), cfg, rand.New(rand.NewSource(1)))
	estimates, err := svc.EstimateAll(context.Background())
	if err != nil {
		t.Fatalf("EstimateAll: %v", err)
	}
	if estimates[skills.DirectAddition].Opportunities != 1 {
		t.Errorf("Opportunities = %d, want 1", estimates[skills.DirectAddition].Opportunities)
	}
	if got := estimates[skills.DirectAddition].PKnown; got <= 0.9 {
		t.Errorf("PKnown = %v, want above the overridden 0.9 prior", got)
	}
	// A skill without an override keeps the global prior.
	if got := estimates[skills.HeavenBead].PKnown; got != cfg.BKT.Params.PInit {
		t.Errorf("unexercised PKnown = %v, want prior %v", got, cfg.BKT.Params.PInit)
	}
}
