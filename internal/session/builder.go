package session

import (
	"context"
	"sort"

	"github.com/hikaru-dev/soroban/internal/bkt"
	"github.com/hikaru-dev/soroban/internal/comfort"
	"github.com/hikaru-dev/soroban/internal/plan"
	"github.com/hikaru-dev/soroban/internal/problemgen"
	"github.com/hikaru-dev/soroban/internal/skills"
)

// BuildPlan assembles a draft three-part session plan: comfort level sizes
// the term counts, the budget table bounds per-term complexity, and focus
// slots target the weakest non-solid skills.
func (s *Service) BuildPlan(ctx context.Context, mode comfort.Mode) (*plan.Plan, error) {
	reports, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}

	bktBySkill := make(map[skills.ID]bkt.Result, len(reports))
	active := make([]skills.ID, 0, len(reports))
	for _, r := range reports {
		bktBySkill[r.SkillID] = r.BKT
		if !r.Readiness.IsSolid {
			active = append(active, r.SkillID)
		}
	}
	if len(active) == 0 {
		// Everything is solid: fall back to maintenance over the whole set.
		for _, r := range reports {
			active = append(active, r.SkillID)
		}
	}

	level := comfort.Compute(bktBySkill, active, mode, s.cfg.Comfort)
	termRange := comfort.RangeForLevel(level.Value, s.cfg.Session.BaseTerms, s.cfg.Session.CeilingTerms)
	termRange = comfort.ApplyTermCountOverride(termRange, s.cfg.Session.TermCountOverride)

	allowed := skills.NewSet()
	for _, id := range s.PracticingSkills() {
		allowed.Enable(id)
	}
	target := s.focusTargets(reports, active)

	parts := make([]plan.Part, 0, plan.PartCount)
	for _, partType := range problemgen.AllPartTypes() {
		part := plan.Part{Type: partType}
		for i := 0; i < s.cfg.Session.SlotsPerPart; i++ {
			purpose := s.cfg.Session.PurposeMix[i%len(s.cfg.Session.PurposeMix)]
			bounds := s.cfg.Budgets.BoundsFor(purpose, partType)
			constraints := problemgen.Constraints{
				NumberRange: s.cfg.Session.NumberRange,
				MinTerms:    termRange.Min,
				MaxTerms:    termRange.Max,
				Complexity:  &bounds,
			}
			slot := plan.Slot{Purpose: purpose, Constraints: constraints}
			slot.Problem = s.fillSlot(constraints, allowed, target, purpose)
			part.Slots = append(part.Slots, slot)
		}
		parts = append(parts, part)
	}

	p := plan.New(parts)
	p.SetEpochCap(s.cfg.Session.RetryEpochCap)
	return p, nil
}

// fillSlot generates a problem for a slot, relaxing constraints when the
// strict combination is infeasible: drop the complexity bound first, then
// the target filter. A slot left without a problem is served as a skipped
// slot by the caller.
func (s *Service) fillSlot(c problemgen.Constraints, allowed, target skills.Set, purpose problemgen.Purpose) *problemgen.Problem {
	slotTarget := target
	if purpose != problemgen.PurposeFocus {
		slotTarget = nil
	}

	if p := s.gen.Generate(c, allowed, slotTarget, nil); p != nil {
		return p
	}
	relaxed := c
	relaxed.Complexity = nil
	if p := s.gen.Generate(relaxed, allowed, slotTarget, nil); p != nil {
		return p
	}
	return s.gen.Generate(relaxed, allowed, nil, nil)
}

// focusTargets picks up to three of the weakest active skills as the target
// set for focus slots.
func (s *Service) focusTargets(reports []SkillReport, active []skills.ID) skills.Set {
	activeSet := make(map[skills.ID]bool, len(active))
	for _, id := range active {
		activeSet[id] = true
	}

	candidates := make([]SkillReport, 0, len(reports))
	for _, r := range reports {
		if activeSet[r.SkillID] {
			candidates = append(candidates, r)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].BKT.PKnown < candidates[j].BKT.PKnown
	})

	target := skills.NewSet()
	for i := 0; i < len(candidates) && i < 3; i++ {
		target.Enable(candidates[i].SkillID)
	}
	return target
}
