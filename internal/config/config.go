// Package config holds every tunable the engine consumes: BKT parameters,
// readiness thresholds, complexity budgets, comfort multipliers, and session
// composition. All of it is data injected into the engine packages — nothing
// in the core hard-codes a threshold, so tests and operators can override
// any of them.
package config

import (
	"fmt"

	"github.com/hikaru-dev/soroban/internal/bkt"
	"github.com/hikaru-dev/soroban/internal/comfort"
	"github.com/hikaru-dev/soroban/internal/plan"
	"github.com/hikaru-dev/soroban/internal/problemgen"
	"github.com/hikaru-dev/soroban/internal/readiness"
)

// BKTConfig groups the estimator tunables.
type BKTConfig struct {
	Params              bkt.Params `json:"params"`
	ConfidenceK         float64    `json:"confidenceK"`
	ConfidenceThreshold float64    `json:"confidenceThreshold"`
	// PerSkill overrides the global parameters for specific skills, keyed by
	// dotted skill ID.
	PerSkill map[string]bkt.Params `json:"perSkill,omitempty"`
}

// SessionConfig shapes plan composition.
type SessionConfig struct {
	// SlotsPerPart is how many problem slots each of the three parts gets.
	SlotsPerPart int `json:"slotsPerPart"`
	// PurposeMix is the slot purpose cycle applied within a part.
	PurposeMix []problemgen.Purpose `json:"purposeMix"`
	// NumberRange bounds term magnitudes for generated problems.
	NumberRange problemgen.Range `json:"numberRange"`
	// BaseTerms/CeilingTerms anchor the comfort-level interpolation of term
	// counts: a 0.0 comfort student gets BaseTerms, a 1.0 student
	// CeilingTerms.
	BaseTerms    comfort.TermCountRange `json:"baseTerms"`
	CeilingTerms comfort.TermCountRange `json:"ceilingTerms"`
	// TermCountOverride, when set, caps term counts regardless of comfort.
	TermCountOverride *comfort.TermCountRange `json:"termCountOverride,omitempty"`
	// PracticingSkills is the active skill set, as dotted IDs. Solid skills
	// retire from this set as readiness confirms them.
	PracticingSkills []string `json:"practicingSkills"`
	// RetryEpochCap is the per-plan retry budget (at most plan.MaxRetryEpochs).
	RetryEpochCap int `json:"retryEpochCap"`
	// ExpectedSlotsPerMinute is the pace baseline for session health.
	ExpectedSlotsPerMinute float64 `json:"expectedSlotsPerMinute"`
}

// Config is the full tunable set.
type Config struct {
	BKT       BKTConfig              `json:"bkt"`
	Readiness readiness.Thresholds   `json:"readiness"`
	Comfort   comfort.Config         `json:"comfort"`
	Budgets   problemgen.BudgetTable `json:"budgets"`
	Session   SessionConfig          `json:"session"`
}

// Default returns the standard tunables.
func Default() Config {
	return Config{
		BKT: BKTConfig{
			Params:              bkt.DefaultParams(),
			ConfidenceK:         bkt.DefaultConfidenceK,
			ConfidenceThreshold: bkt.DefaultConfidenceThreshold,
		},
		Readiness: readiness.DefaultThresholds(),
		Comfort:   comfort.DefaultConfig(),
		Budgets:   problemgen.DefaultBudgetTable(),
		Session: SessionConfig{
			SlotsPerPart: 5,
			PurposeMix: []problemgen.Purpose{
				problemgen.PurposeFocus,
				problemgen.PurposeReinforce,
				problemgen.PurposeFocus,
				problemgen.PurposeReview,
				problemgen.PurposeChallenge,
			},
			NumberRange: problemgen.Range{Min: 1, Max: 9},
			PracticingSkills: []string{
				"basic.directAddition",
				"basic.directSubtraction",
				"basic.heavenBead",
				"basic.heavenBeadSubtraction",
				"basic.simpleCombinations",
				"basic.simpleCombinationsSub",
				"fiveComplements.4=5-1",
				"fiveComplements.3=5-2",
				"fiveComplementsSub.4=5-1",
			},
			BaseTerms:              comfort.TermCountRange{Min: 2, Max: 4},
			CeilingTerms:           comfort.TermCountRange{Min: 5, Max: 10},
			RetryEpochCap:          plan.MaxRetryEpochs,
			ExpectedSlotsPerMinute: 1.5,
		},
	}
}

// Validate checks cross-field invariants that the JSON schema cannot express.
func (c Config) Validate() error {
	if err := c.BKT.Params.Validate(); err != nil {
		return err
	}
	for id, p := range c.BKT.PerSkill {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("per-skill params %q: %w", id, err)
		}
	}
	if c.Session.RetryEpochCap < 0 || c.Session.RetryEpochCap > plan.MaxRetryEpochs {
		return fmt.Errorf("config: retryEpochCap %d outside [0, %d]", c.Session.RetryEpochCap, plan.MaxRetryEpochs)
	}
	if c.Session.SlotsPerPart < 1 {
		return fmt.Errorf("config: slotsPerPart must be positive, got %d", c.Session.SlotsPerPart)
	}
	if c.Session.NumberRange.Min < 1 || c.Session.NumberRange.Max < c.Session.NumberRange.Min {
		return fmt.Errorf("config: invalid numberRange [%d, %d]", c.Session.NumberRange.Min, c.Session.NumberRange.Max)
	}
	return nil
}
