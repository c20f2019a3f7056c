package session

import (
	"encoding/json"
	"fmt"

	"github.com/hikaru-dev/soroban/internal/plan"
	"github.com/hikaru-dev/soroban/internal/problemgen"
	"github.com/hikaru-dev/soroban/internal/skills"
	"github.com/hikaru-dev/soroban/internal/store"
)

// recordToResult rebuilds the in-memory attempt result from a stored event.
// The problem is reconstructed from its terms; the trace is not persisted
// and is not needed for replay.
func recordToResult(rec store.AttemptRecord) plan.AttemptResult {
	ids := make([]skills.ID, 0, len(rec.SkillIDs))
	for _, dotted := range rec.SkillIDs {
		if id, ok := skills.Parse(dotted); ok {
			ids = append(ids, id)
		}
	}
	return plan.AttemptResult{
		SessionID:      rec.SessionID,
		PartIndex:      rec.PartIndex,
		SlotIndex:      rec.SlotIndex,
		Problem:        &problemgen.Problem{Terms: rec.Terms, Answer: rec.Answer},
		Answer:         rec.StudentAnswer,
		Correct:        rec.Correct,
		ResponseTimeMs: rec.TimeMs,
		Skills:         ids,
		UsedHelp:       rec.UsedHelp,
		Source:         plan.Source(rec.Source),
		At:             rec.Timestamp,

		IsRetry:           rec.IsRetry,
		Epoch:             rec.Epoch,
		MasteryWeight:     rec.MasteryWeight,
		OriginalSlotIndex: rec.OriginalSlotIndex,
	}
}

// resultToEvent is the write-side mirror of recordToResult.
func resultToEvent(r plan.AttemptResult) store.AttemptEventData {
	dotted := make([]string, 0, len(r.Skills))
	for _, id := range r.Skills {
		dotted = append(dotted, id.String())
	}
	return store.AttemptEventData{
		SessionID:         r.SessionID,
		PartIndex:         r.PartIndex,
		SlotIndex:         r.SlotIndex,
		Terms:             r.Problem.Terms,
		Answer:            r.Problem.Answer,
		StudentAnswer:     r.Answer,
		Correct:           r.Correct,
		TimeMs:            r.ResponseTimeMs,
		SkillIDs:          dotted,
		UsedHelp:          r.UsedHelp,
		Source:            string(r.Source),
		IsRetry:           r.IsRetry,
		Epoch:             r.Epoch,
		MasteryWeight:     r.MasteryWeight,
		OriginalSlotIndex: r.OriginalSlotIndex,
	}
}

func sessionEvent(sessionID, kind, mode string) store.SessionEventData {
	return store.SessionEventData{SessionID: sessionID, Kind: kind, Mode: mode}
}

func masteryEvent(skillID string, pKnown, confidence float64, opportunities int, classification string) store.MasteryEventData {
	return store.MasteryEventData{
		SkillID:        skillID,
		PKnown:         pKnown,
		Confidence:     confidence,
		Opportunities:  opportunities,
		Classification: classification,
	}
}

// planToMap serializes a plan for the snapshot blob. The persistence format
// is a collaborator concern; internally the plan stays strongly typed.
func planToMap(p *plan.Plan) (map[string]any, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal plan: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("remap plan: %w", err)
	}
	return m, nil
}
