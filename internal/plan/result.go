package plan

import (
	"fmt"
	"math"
	"time"

	"github.com/hikaru-dev/soroban/internal/problemgen"
	"github.com/hikaru-dev/soroban/internal/skills"
)

// Source tags where an attempt record came from. Recency refreshes and
// teacher exclusions carry zero weight for mastery computation; they exist to
// reset staleness timers or record the exclusion.
type Source string

const (
	SourcePractice        Source = "practice"
	SourceRecencyRefresh  Source = "recency-refresh"
	SourceTeacherCorrect  Source = "teacher-corrected"
	SourceTeacherExcluded Source = "teacher-excluded"
)

// CountsForMastery reports whether records with this source may move mastery
// estimates at all.
func (s Source) CountsForMastery() bool {
	return s != SourceRecencyRefresh && s != SourceTeacherExcluded
}

// AttemptResult is one completed problem attempt with its full context.
type AttemptResult struct {
	SessionID string
	PartIndex int
	SlotIndex int

	Problem        *problemgen.Problem
	Answer         int
	Correct        bool
	ResponseTimeMs int
	Skills         []skills.ID
	UsedHelp       bool
	Source         Source
	At             time.Time

	// Retry metadata.
	IsRetry           bool
	Epoch             int
	MasteryWeight     float64
	OriginalSlotIndex int
}

// MasteryWeight is the credit-decay scheme for retry epochs: a correct answer
// earns 1/2^epoch, a wrong answer earns nothing regardless of epoch. Getting
// it right on the third try is weaker evidence of mastery than getting it
// right immediately.
func MasteryWeight(correct bool, epoch int) float64 {
	if epoch < 0 {
		panic(fmt.Sprintf("plan: negative epoch %d", epoch))
	}
	if !correct {
		return 0
	}
	return 1.0 / math.Pow(2, float64(epoch))
}
