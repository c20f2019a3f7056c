package store

import (
	"context"
	"errors"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndReplayAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			SessionID:     "session-1",
			PartIndex:     0,
			SlotIndex:     i,
			Terms:         []int{3, 4, -2},
			Answer:        5,
			StudentAnswer: 5,
			Correct:       true,
			TimeMs:        2500,
			SkillIDs:      []string{"basic.directAddition", "basic.directSubtraction"},
			Source:        "practice",
			MasteryWeight: 1,
		})
		if err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	records, err := repo.Attempts(ctx)
	if err != nil {
		t.Fatalf("replay attempts: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	for i, rec := range records {
		if rec.SlotIndex != i {
			t.Errorf("record %d out of order: slot %d", i, rec.SlotIndex)
		}
		if i > 0 && rec.Sequence <= records[i-1].Sequence {
			t.Errorf("sequence not increasing: %d then %d", records[i-1].Sequence, rec.Sequence)
		}
		if len(rec.Terms) != 3 || rec.Terms[2] != -2 {
			t.Errorf("terms round-trip broken: %v", rec.Terms)
		}
		if len(rec.SkillIDs) != 2 {
			t.Errorf("skill IDs round-trip broken: %v", rec.SkillIDs)
		}
	}
}

func TestSequenceSpansEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	if err := repo.AppendSession(ctx, SessionEventData{SessionID: "s1", Kind: "started", Mode: "progression"}); err != nil {
		t.Fatalf("append session: %v", err)
	}
	if err := repo.AppendAttempt(ctx, AttemptEventData{SessionID: "s1", Terms: []int{1}, Answer: 1, Source: "practice"}); err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	if err := repo.AppendMastery(ctx, MasteryEventData{SkillID: "basic.directAddition", PKnown: 0.5}); err != nil {
		t.Fatalf("append mastery: %v", err)
	}

	// The attempt drew from the shared counter after the session event, so
	// its sequence must be greater than 1.
	records, err := repo.Attempts(ctx)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if len(records) != 1 || records[0].Sequence < 2 {
		t.Errorf("attempt sequence = %v, want at least 2", records)
	}
}

func TestPlanSnapshot_CreateAndUpdate(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanSnapshots()
	ctx := context.Background()

	snap, err := repo.Get(ctx, "plan-1")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot before any save")
	}

	v, err := repo.Save(ctx, "plan-1", 0, map[string]any{"status": "draft"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if v != 1 {
		t.Errorf("created version = %d, want 1", v)
	}

	v, err = repo.Save(ctx, "plan-1", 1, map[string]any{"status": "in_progress"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if v != 2 {
		t.Errorf("updated version = %d, want 2", v)
	}

	snap, err = repo.Get(ctx, "plan-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if snap.Version != 2 {
		t.Errorf("stored version = %d, want 2", snap.Version)
	}
	if snap.Data["status"] != "in_progress" {
		t.Errorf("stored data = %v", snap.Data)
	}
}

func TestPlanSnapshot_VersionConflicts(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanSnapshots()
	ctx := context.Background()

	if _, err := repo.Save(ctx, "plan-1", 0, map[string]any{}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Creating again loses to the unique plan_id constraint.
	if _, err := repo.Save(ctx, "plan-1", 0, map[string]any{}); !errors.Is(err, ErrVersionConflict) {
		t.Errorf("double create error = %v, want version conflict", err)
	}

	// A stale expected version loses the compare-and-swap.
	if _, err := repo.Save(ctx, "plan-1", 5, map[string]any{}); !errors.Is(err, ErrVersionConflict) {
		t.Errorf("stale update error = %v, want version conflict", err)
	}

	// Updating a plan that was never created also conflicts.
	if _, err := repo.Save(ctx, "plan-2", 1, map[string]any{}); !errors.Is(err, ErrVersionConflict) {
		t.Errorf("phantom update error = %v, want version conflict", err)
	}
}
