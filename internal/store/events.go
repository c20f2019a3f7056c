package store

import (
	"context"
	"fmt"

	"github.com/hikaru-dev/soroban/ent"
	"github.com/hikaru-dev/soroban/ent/attemptevent"
)

// eventRepo implements EventRepo over the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetPartIndex(data.PartIndex).
		SetSlotIndex(data.SlotIndex).
		SetTerms(data.Terms).
		SetAnswer(data.Answer).
		SetStudentAnswer(data.StudentAnswer).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		SetSkillIds(data.SkillIDs).
		SetUsedHelp(data.UsedHelp).
		SetSource(data.Source).
		SetIsRetry(data.IsRetry).
		SetEpoch(data.Epoch).
		SetMasteryWeight(data.MasteryWeight).
		SetOriginalSlotIndex(data.OriginalSlotIndex).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetKind(data.Kind).
		SetMode(data.Mode).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendMastery(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.MasteryEvent.Create().
		SetSequence(seqNum).
		SetSkillID(data.SkillID).
		SetPKnown(data.PKnown).
		SetConfidence(data.Confidence).
		SetOpportunities(data.Opportunities).
		SetClassification(data.Classification).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}

func (r *eventRepo) Attempts(ctx context.Context) ([]AttemptRecord, error) {
	events, err := r.client.AttemptEvent.Query().
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	records := make([]AttemptRecord, 0, len(events))
	for _, e := range events {
		records = append(records, AttemptRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AttemptEventData: AttemptEventData{
				SessionID:         e.SessionID,
				PartIndex:         e.PartIndex,
				SlotIndex:         e.SlotIndex,
				Terms:             e.Terms,
				Answer:            e.Answer,
				StudentAnswer:     e.StudentAnswer,
				Correct:           e.Correct,
				TimeMs:            e.TimeMs,
				SkillIDs:          e.SkillIds,
				UsedHelp:          e.UsedHelp,
				Source:            e.Source,
				IsRetry:           e.IsRetry,
				Epoch:             e.Epoch,
				MasteryWeight:     e.MasteryWeight,
				OriginalSlotIndex: e.OriginalSlotIndex,
			},
		})
	}
	return records, nil
}
