// Package session orchestrates the engine over the store: it rebuilds BKT
// estimates and readiness from the attempt log, builds session plans sized by
// comfort level, grades answers, and writes everything back as events.
package session

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/hikaru-dev/soroban/internal/bkt"
	"github.com/hikaru-dev/soroban/internal/config"
	"github.com/hikaru-dev/soroban/internal/plan"
	"github.com/hikaru-dev/soroban/internal/problemgen"
	"github.com/hikaru-dev/soroban/internal/readiness"
	"github.com/hikaru-dev/soroban/internal/skills"
	"github.com/hikaru-dev/soroban/internal/store"
)

// Service ties the engine packages to the persistence collaborator.
type Service struct {
	events    store.EventRepo
	snapshots store.PlanSnapshotRepo
	cfg       config.Config
	gen       *problemgen.Generator

	// versions tracks the optimistic-concurrency version of each plan this
	// service has saved.
	versions map[string]int64
}

// NewService creates a session service. rnd drives problem generation; pass
// a seeded source for deterministic output.
func NewService(events store.EventRepo, snapshots store.PlanSnapshotRepo, cfg config.Config, rnd *rand.Rand) *Service {
	return &Service{
		events:    events,
		snapshots: snapshots,
		cfg:       cfg,
		gen:       problemgen.New(rnd),
		versions:  make(map[string]int64),
	}
}

// PracticingSkills resolves the configured practicing set.
func (s *Service) PracticingSkills() []skills.ID {
	ids := make([]skills.ID, 0, len(s.cfg.Session.PracticingSkills))
	for _, dotted := range s.cfg.Session.PracticingSkills {
		if id, ok := skills.Parse(dotted); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Histories loads the attempt log and shards it per exercised skill, in
// event order. A multi-skill attempt appears in every skill it exercised.
func (s *Service) Histories(ctx context.Context) (map[skills.ID][]plan.AttemptResult, error) {
	records, err := s.events.Attempts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load attempt log: %w", err)
	}

	out := make(map[skills.ID][]plan.AttemptResult)
	for _, rec := range records {
		result := recordToResult(rec)
		for _, id := range result.Skills {
			out[id] = append(out[id], result)
		}
	}
	return out, nil
}

// EstimateAll rebuilds BKT readouts for the practicing set by replaying each
// skill's history.
func (s *Service) EstimateAll(ctx context.Context) (map[skills.ID]bkt.Result, error) {
	histories, err := s.Histories(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	out := make(map[skills.ID]bkt.Result)
	for _, id := range s.PracticingSkills() {
		est := bkt.NewEstimator(s.paramsFor(id), s.cfg.BKT.ConfidenceK, s.cfg.BKT.ConfidenceThreshold)
		out[id] = est.Estimate(observations(histories[id]), now)
	}
	return out, nil
}

// paramsFor applies any per-skill BKT parameter override.
func (s *Service) paramsFor(id skills.ID) bkt.Params {
	if p, ok := s.cfg.BKT.PerSkill[id.String()]; ok {
		return p
	}
	return s.cfg.BKT.Params
}

// observations converts a skill's attempt history into BKT evidence. A wrong
// answer is always full-weight evidence; a correct answer carries its
// retry-decayed mastery weight; bookkeeping sources carry zero weight and
// only advance the practice clock.
func observations(history []plan.AttemptResult) []bkt.Observation {
	obs := make([]bkt.Observation, 0, len(history))
	for _, r := range history {
		w := 0.0
		if r.Source.CountsForMastery() {
			if r.Correct {
				w = r.MasteryWeight
			} else {
				w = 1.0
			}
		}
		obs = append(obs, bkt.Observation{Correct: r.Correct, At: r.At, Weight: w})
	}
	return obs
}

// SkillReport pairs a skill's BKT readout with its readiness assessment.
type SkillReport struct {
	SkillID   skills.ID
	BKT       bkt.Result
	Readiness readiness.Result
}

// Report assesses the whole practicing set. Used by the stats command and by
// plan building to retire solid skills.
func (s *Service) Report(ctx context.Context) ([]SkillReport, error) {
	histories, err := s.Histories(ctx)
	if err != nil {
		return nil, err
	}
	estimates, err := s.EstimateAll(ctx)
	if err != nil {
		return nil, err
	}

	practicing := s.PracticingSkills()
	assessed := readiness.AssessAll(histories, estimates, practicing, s.cfg.Readiness)

	reports := make([]SkillReport, 0, len(practicing))
	for _, id := range practicing {
		reports = append(reports, SkillReport{
			SkillID:   id,
			BKT:       estimates[id],
			Readiness: assessed[id],
		})
	}
	return reports, nil
}
