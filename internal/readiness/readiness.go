// Package readiness decides when a skill is solidly learned and can retire
// from active practice. Four independent dimensions — mastery, volume, speed,
// consistency — are each evaluated against fixed thresholds and combined with
// a logical AND.
package readiness

import (
	"sort"

	"github.com/hikaru-dev/soroban/internal/bkt"
	"github.com/hikaru-dev/soroban/internal/plan"
	"github.com/hikaru-dev/soroban/internal/skills"
)

// Thresholds are the configurable readiness gates.
type Thresholds struct {
	MasteryPKnown     float64 `json:"masteryPKnown"`
	MasteryConfidence float64 `json:"masteryConfidence"`

	MinOpportunities int `json:"minOpportunities"`
	MinSessions      int `json:"minSessions"`

	// SpeedWindow most recent attempts feed the seconds-per-term median.
	SpeedWindow       int     `json:"speedWindow"`
	MaxSecondsPerTerm float64 `json:"maxSecondsPerTerm"`

	// AccuracyWindow most recent attempts feed the accuracy check; the
	// PerfectTail most recent must all be correct and help-free.
	AccuracyWindow int     `json:"accuracyWindow"`
	MinAccuracy    float64 `json:"minAccuracy"`
	PerfectTail    int     `json:"perfectTail"`
}

// DefaultThresholds returns the standard gates.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MasteryPKnown:     0.85,
		MasteryConfidence: 0.5,
		MinOpportunities:  20,
		MinSessions:       3,
		SpeedWindow:       10,
		MaxSecondsPerTerm: 4.0,
		AccuracyWindow:    15,
		MinAccuracy:       0.85,
		PerfectTail:       5,
	}
}

// Dimension is one readiness criterion: whether it passed plus the raw
// metric behind the decision.
type Dimension struct {
	Met   bool
	Value float64
}

// Result is the four-dimension readout for one skill.
type Result struct {
	SkillID     skills.ID
	Mastery     Dimension
	Volume      Dimension
	Speed       Dimension
	Consistency Dimension
	IsSolid     bool
}

// Assess evaluates one skill. history is the full chronological attempt log
// for the skill; bktResult may be nil when the skill has no estimate yet
// (treated as pKnown 0, confidence 0).
func Assess(skillID skills.ID, history []plan.AttemptResult, bktResult *bkt.Result, th Thresholds) Result {
	qualifying := filterQualifying(history)

	r := Result{SkillID: skillID}
	r.Mastery = assessMastery(bktResult, th)
	r.Volume = assessVolume(qualifying, th)
	r.Speed = assessSpeed(qualifying, th)
	r.Consistency = assessConsistency(qualifying, th)
	r.IsSolid = r.Mastery.Met && r.Volume.Met && r.Speed.Met && r.Consistency.Met
	return r
}

// AssessAll evaluates every skill in the practicing set. historyBySkill and
// bktBySkill may be missing entries for never-practiced skills.
func AssessAll(historyBySkill map[skills.ID][]plan.AttemptResult, bktBySkill map[skills.ID]bkt.Result, practicing []skills.ID, th Thresholds) map[skills.ID]Result {
	out := make(map[skills.ID]Result, len(practicing))
	for _, id := range practicing {
		var bktResult *bkt.Result
		if r, ok := bktBySkill[id]; ok {
			bktResult = &r
		}
		out[id] = Assess(id, historyBySkill[id], bktResult, th)
	}
	return out
}

// AllSolid is the plan-level readiness: every assessed skill solid.
func AllSolid(results map[skills.ID]Result) bool {
	for _, r := range results {
		if !r.IsSolid {
			return false
		}
	}
	return true
}

// filterQualifying drops retries and zero-weight bookkeeping records; they
// exist for scheduling, not as readiness evidence.
func filterQualifying(history []plan.AttemptResult) []plan.AttemptResult {
	out := make([]plan.AttemptResult, 0, len(history))
	for _, r := range history {
		if r.IsRetry || !r.Source.CountsForMastery() {
			continue
		}
		out = append(out, r)
	}
	return out
}

func assessMastery(bktResult *bkt.Result, th Thresholds) Dimension {
	pKnown, confidence := 0.0, 0.0
	if bktResult != nil {
		pKnown = bktResult.PKnown
		confidence = bktResult.Confidence
	}
	return Dimension{
		Met:   pKnown >= th.MasteryPKnown && confidence >= th.MasteryConfidence,
		Value: pKnown,
	}
}

func assessVolume(qualifying []plan.AttemptResult, th Thresholds) Dimension {
	n := len(qualifying)
	if n == 0 {
		// A skill never practiced cannot block advancement; it is simply
		// not yet a concern.
		return Dimension{Met: true, Value: 0}
	}
	sessions := make(map[string]bool)
	for _, r := range qualifying {
		sessions[r.SessionID] = true
	}
	met := n >= th.MinOpportunities && len(sessions) >= th.MinSessions
	return Dimension{Met: met, Value: float64(n)}
}

func assessSpeed(qualifying []plan.AttemptResult, th Thresholds) Dimension {
	recent := tail(qualifying, th.SpeedWindow)
	if len(recent) == 0 {
		return Dimension{Met: false, Value: 0}
	}
	perTerm := make([]float64, 0, len(recent))
	for _, r := range recent {
		terms := 1
		if r.Problem != nil && len(r.Problem.Terms) > 0 {
			terms = len(r.Problem.Terms)
		}
		perTerm = append(perTerm, float64(r.ResponseTimeMs)/1000/float64(terms))
	}
	med := median(perTerm)
	return Dimension{Met: med <= th.MaxSecondsPerTerm, Value: med}
}

func assessConsistency(qualifying []plan.AttemptResult, th Thresholds) Dimension {
	window := tail(qualifying, th.AccuracyWindow)
	if len(window) == 0 {
		return Dimension{Met: false, Value: 0}
	}
	correct := 0
	for _, r := range window {
		if r.Correct {
			correct++
		}
	}
	accuracy := float64(correct) / float64(len(window))

	tailAttempts := tail(qualifying, th.PerfectTail)
	tailClean := len(tailAttempts) >= th.PerfectTail
	for _, r := range tailAttempts {
		if !r.Correct || r.UsedHelp {
			tailClean = false
		}
	}

	return Dimension{
		Met:   accuracy >= th.MinAccuracy && tailClean,
		Value: accuracy,
	}
}

func tail(rs []plan.AttemptResult, n int) []plan.AttemptResult {
	if n <= 0 || len(rs) <= n {
		return rs
	}
	return rs[len(rs)-n:]
}

// median with the usual even-count midpoint average.
func median(vs []float64) float64 {
	sorted := append([]float64(nil), vs...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
