// Package comfort turns a student's BKT readouts into a single 0-1 comfort
// level used to size problem difficulty, and resolves the term-count range a
// session should use.
package comfort

import (
	"math"

	"github.com/hikaru-dev/soroban/internal/bkt"
	"github.com/hikaru-dev/soroban/internal/skills"
)

// Mode is the session mode supplied by the external session-mode classifier.
type Mode string

const (
	ModeRemediation Mode = "remediation"
	ModeProgression Mode = "progression"
	ModeMaintenance Mode = "maintenance"
)

// Config holds the comfort tunables. All values are injected data so tests
// and operators can override them.
type Config struct {
	// Default is returned when no practicing skill has confident evidence.
	Default float64 `json:"default"`
	// ModeMultipliers scale average mastery per session mode.
	ModeMultipliers map[Mode]float64 `json:"modeMultipliers"`
	// SkillCountBonusCap caps the log-diminishing breadth bonus.
	SkillCountBonusCap float64 `json:"skillCountBonusCap"`
}

// DefaultConfig returns the standard comfort tunables.
func DefaultConfig() Config {
	return Config{
		Default: 0.3,
		ModeMultipliers: map[Mode]float64{
			ModeRemediation: 0.6,
			ModeProgression: 0.85,
			ModeMaintenance: 1.0,
		},
		SkillCountBonusCap: 0.15,
	}
}

// Factors exposes the intermediates behind a comfort level for debug and
// tooltip display.
type Factors struct {
	// AvgMastery is nil when no practicing skill had confident evidence.
	AvgMastery      *float64
	Mode            Mode
	ModeMultiplier  float64
	SkillCountBonus float64
}

// Level is a computed comfort level with its explanation.
type Level struct {
	Value   float64
	Factors Factors
}

// Compute blends confidence-weighted mastery across the practicing skill set
// with the session-mode multiplier and a small breadth bonus.
func Compute(results map[skills.ID]bkt.Result, practicing []skills.ID, mode Mode, cfg Config) Level {
	mult := cfg.ModeMultipliers[mode]
	if mult == 0 {
		mult = 1.0
	}

	var weightedSum, confidenceSum float64
	counted := 0
	for _, id := range practicing {
		r, ok := results[id]
		if !ok || r.Confidence <= 0 {
			continue
		}
		weightedSum += r.PKnown * r.Confidence
		confidenceSum += r.Confidence
		counted++
	}

	if counted == 0 {
		// No confident evidence: conservative default, no mastery factor.
		return Level{
			Value: cfg.Default,
			Factors: Factors{
				Mode:           mode,
				ModeMultiplier: mult,
			},
		}
	}

	avg := weightedSum / confidenceSum
	bonus := math.Min(cfg.SkillCountBonusCap, math.Log(float64(counted)+1)/20)
	value := clamp(avg*mult+bonus, 0, 1)

	return Level{
		Value: value,
		Factors: Factors{
			AvgMastery:      &avg,
			Mode:            mode,
			ModeMultiplier:  mult,
			SkillCountBonus: bonus,
		},
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
