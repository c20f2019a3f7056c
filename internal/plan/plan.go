// Package plan holds the practice-session plan model and its retry-epoch
// state machine. Transition functions take the full plan as their working
// state and mutate it explicitly; nothing here reads ambient globals, so
// identical plan snapshots plus identical inputs always produce identical
// next states.
package plan

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hikaru-dev/soroban/internal/problemgen"
)

// PartCount is the fixed number of parts in a session plan.
const PartCount = 3

// Status is the plan lifecycle state.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusApproved   Status = "approved"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusAbandoned  Status = "abandoned"
)

// Slot is one problem position within a part.
type Slot struct {
	Purpose     problemgen.Purpose
	Constraints problemgen.Constraints
	// Problem is the realized problem, nil until generation fills it.
	Problem *problemgen.Problem
}

// Part is one of the three session parts.
type Part struct {
	Type  problemgen.PartType
	Slots []Slot
}

// Plan is a three-part practice session.
type Plan struct {
	ID        string
	Parts     []Part
	Status    Status
	CreatedAt time.Time

	// CurrentPartIndex / CurrentSlotIndex are the live cursors. They advance
	// monotonically except while a retry epoch replays missed slots.
	CurrentPartIndex int
	CurrentSlotIndex int

	// Results is the append-only attempt log.
	Results []AttemptResult

	// RetryState is keyed by part index and initialized lazily on the first
	// miss in a part.
	RetryState map[int]*PartRetryState

	// EpochCap is the configured retry-epoch budget for this plan. It can be
	// set below MaxRetryEpochs but never above it.
	EpochCap int
}

// New creates a draft plan. Exactly three parts, in abacus / visualization /
// linear order, is a structural invariant; violations are a programming
// error.
func New(parts []Part) *Plan {
	if len(parts) != PartCount {
		panic(fmt.Sprintf("plan: expected %d parts, got %d", PartCount, len(parts)))
	}
	return &Plan{
		ID:         uuid.NewString(),
		Parts:      parts,
		Status:     StatusDraft,
		CreatedAt:  time.Now().UTC(),
		RetryState: make(map[int]*PartRetryState),
		EpochCap:   MaxRetryEpochs,
	}
}

// SetEpochCap lowers the retry budget for this plan. Raising it past the
// MaxRetryEpochs invariant is a programming error.
func (p *Plan) SetEpochCap(cap int) {
	if cap < 0 || cap > MaxRetryEpochs {
		panic(fmt.Sprintf("plan: epoch cap %d outside [0, %d]", cap, MaxRetryEpochs))
	}
	p.EpochCap = cap
}

// Approve moves a draft to approved.
func (p *Plan) Approve() {
	mustStatus(p.Status, StatusDraft)
	p.Status = StatusApproved
}

// Start moves an approved plan into progress.
func (p *Plan) Start() {
	mustStatus(p.Status, StatusApproved)
	p.Status = StatusInProgress
}

// Abandon marks an in-progress plan abandoned.
func (p *Plan) Abandon() {
	mustStatus(p.Status, StatusInProgress)
	p.Status = StatusAbandoned
}

func mustStatus(got, want Status) {
	if got != want {
		panic(fmt.Sprintf("plan: status %q, expected %q", got, want))
	}
}

// part returns the part at index, panicking on range violations.
func (p *Plan) part(idx int) *Part {
	if idx < 0 || idx >= len(p.Parts) {
		panic(fmt.Sprintf("plan: part index %d out of range", idx))
	}
	return &p.Parts[idx]
}
