package store

import (
	"context"
	"errors"
	"time"
)

// ErrVersionConflict is returned when a plan snapshot save loses an
// optimistic-concurrency race.
var ErrVersionConflict = errors.New("store: plan snapshot version conflict")

// AttemptEventData is the write shape for one attempt event.
type AttemptEventData struct {
	SessionID         string
	PartIndex         int
	SlotIndex         int
	Terms             []int
	Answer            int
	StudentAnswer     int
	Correct           bool
	TimeMs            int
	SkillIDs          []string
	UsedHelp          bool
	Source            string
	IsRetry           bool
	Epoch             int
	MasteryWeight     float64
	OriginalSlotIndex int
}

// AttemptRecord is an attempt event as read back, with its event metadata.
type AttemptRecord struct {
	Sequence  int64
	Timestamp time.Time
	AttemptEventData
}

// SessionEventData records a session lifecycle change.
type SessionEventData struct {
	SessionID string
	Kind      string // started, completed, abandoned
	Mode      string
}

// MasteryEventData snapshots a BKT readout for audit and display.
type MasteryEventData struct {
	SkillID        string
	PKnown         float64
	Confidence     float64
	Opportunities  int
	Classification string
}

// EventRepo provides append and replay access to domain events.
type EventRepo interface {
	AppendAttempt(ctx context.Context, data AttemptEventData) error
	AppendSession(ctx context.Context, data SessionEventData) error
	AppendMastery(ctx context.Context, data MasteryEventData) error

	// Attempts returns all attempt events in sequence order. Skill-level
	// histories are derived by the caller; attempts exercise several skills
	// at once, so the log is not sharded per skill.
	Attempts(ctx context.Context) ([]AttemptRecord, error)
}

// PlanSnapshot is the persisted plan state plus its concurrency version.
type PlanSnapshot struct {
	PlanID    string
	Version   int64
	UpdatedAt time.Time
	Data      map[string]any
}

// PlanSnapshotRepo manages plan state snapshots with optimistic concurrency:
// Save with expectedVersion 0 creates; any other value must match the stored
// version or Save returns ErrVersionConflict.
type PlanSnapshotRepo interface {
	Save(ctx context.Context, planID string, expectedVersion int64, data map[string]any) (newVersion int64, err error)
	Get(ctx context.Context, planID string) (*PlanSnapshot, error)
}
