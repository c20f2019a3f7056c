package session

import (
	"context"
	"fmt"
	"time"

	"github.com/hikaru-dev/soroban/internal/plan"
)

// Start approves and starts a plan, records the session start event, and
// saves the initial snapshot.
func (s *Service) Start(ctx context.Context, p *plan.Plan, mode string) error {
	p.Approve()
	p.Start()

	if err := s.events.AppendSession(ctx, sessionEvent(p.ID, "started", mode)); err != nil {
		return err
	}
	return s.savePlan(ctx, p)
}

// Answer is the grading input for the current problem.
type Answer struct {
	Value          int
	ResponseTimeMs int
	UsedHelp       bool
}

// SubmitAnswer grades the student's answer against the current problem,
// records the result (driving retry-epoch transitions), persists the attempt
// event and the updated snapshot, and returns the recorded result. Returns
// nil when the plan has no current problem.
func (s *Service) SubmitAnswer(ctx context.Context, p *plan.Plan, a Answer) (*plan.AttemptResult, error) {
	info := p.CurrentProblemInfo()
	if info == nil {
		return nil, nil
	}
	if info.Problem == nil {
		return nil, fmt.Errorf("session: slot %d of part %d has no generated problem", info.SlotIndex, info.PartIndex)
	}

	correct := a.Value == info.Problem.Answer
	result := plan.AttemptResult{
		SessionID:      p.ID,
		PartIndex:      info.PartIndex,
		SlotIndex:      info.SlotIndex,
		Problem:        info.Problem,
		Answer:         a.Value,
		Correct:        correct,
		ResponseTimeMs: a.ResponseTimeMs,
		Skills:         info.Problem.SkillsRequired,
		UsedHelp:       a.UsedHelp,
		Source:         plan.SourcePractice,
		At:             time.Now().UTC(),

		IsRetry:           info.IsRetry,
		Epoch:             info.Epoch,
		MasteryWeight:     plan.MasteryWeight(correct, info.Epoch),
		OriginalSlotIndex: info.SlotIndex,
	}

	p.RecordResult(result)

	if err := s.events.AppendAttempt(ctx, resultToEvent(result)); err != nil {
		return nil, err
	}
	if p.Status == plan.StatusCompleted {
		if err := s.finishSession(ctx, p); err != nil {
			return nil, err
		}
	}
	if err := s.savePlan(ctx, p); err != nil {
		return nil, err
	}
	return &result, nil
}

// RedeemSlot records a successful manual redo of a previously-missed slot,
// so later retry epochs skip it, and persists the updated state.
func (s *Service) RedeemSlot(ctx context.Context, p *plan.Plan, partIdx, slotIdx int) error {
	p.RedeemSlot(partIdx, slotIdx)
	if p.Status == plan.StatusCompleted {
		if err := s.finishSession(ctx, p); err != nil {
			return err
		}
	}
	return s.savePlan(ctx, p)
}

// finishSession emits the completion event plus a mastery readout per
// practicing skill, so the audit log tracks where estimates landed.
func (s *Service) finishSession(ctx context.Context, p *plan.Plan) error {
	if err := s.events.AppendSession(ctx, sessionEvent(p.ID, "completed", "")); err != nil {
		return err
	}
	estimates, err := s.EstimateAll(ctx)
	if err != nil {
		return err
	}
	for _, id := range s.PracticingSkills() {
		est := estimates[id]
		data := masteryEvent(id.String(), est.PKnown, est.Confidence, est.Opportunities, string(est.Classification))
		if err := s.events.AppendMastery(ctx, data); err != nil {
			return err
		}
	}
	return nil
}

// savePlan snapshots the plan with optimistic concurrency, tracking the
// version this service last wrote.
func (s *Service) savePlan(ctx context.Context, p *plan.Plan) error {
	data, err := planToMap(p)
	if err != nil {
		return err
	}
	newVersion, err := s.snapshots.Save(ctx, p.ID, s.versions[p.ID], data)
	if err != nil {
		return fmt.Errorf("save plan %s: %w", p.ID, err)
	}
	s.versions[p.ID] = newVersion
	return nil
}
