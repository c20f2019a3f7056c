package plan

import "time"

// HealthStatus summarizes how a live session is going.
type HealthStatus string

const (
	HealthOn         HealthStatus = "on-track"
	HealthStruggling HealthStatus = "struggling"
	HealthBehind     HealthStatus = "behind-pace"
)

// SessionHealth is a derived view over the results log plus elapsed time.
// It holds no state of its own; recompute it whenever the log grows.
type SessionHealth struct {
	Status        HealthStatus
	Accuracy      float64
	PacePct       float64
	Streak        int
	AvgResponseMs float64
}

// Health computes the current session health snapshot. expectedPerMinute is
// the pace baseline: slots the student is expected to clear per minute.
func (p *Plan) Health(elapsed time.Duration, expectedPerMinute float64) SessionHealth {
	h := SessionHealth{Status: HealthOn}
	if len(p.Results) == 0 {
		return h
	}

	correct := 0
	totalMs := 0
	for _, r := range p.Results {
		if r.Correct {
			correct++
		}
		totalMs += r.ResponseTimeMs
	}
	h.Accuracy = float64(correct) / float64(len(p.Results))
	h.AvgResponseMs = float64(totalMs) / float64(len(p.Results))

	// Streak counts trailing consecutive correct answers.
	for i := len(p.Results) - 1; i >= 0 && p.Results[i].Correct; i-- {
		h.Streak++
	}

	if expectedPerMinute > 0 && elapsed > 0 {
		expected := expectedPerMinute * elapsed.Minutes()
		h.PacePct = 100 * float64(len(p.Results)) / expected
	}

	switch {
	case h.Accuracy < 0.6:
		h.Status = HealthStruggling
	case h.PacePct > 0 && h.PacePct < 70:
		h.Status = HealthBehind
	}
	return h
}
