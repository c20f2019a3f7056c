// Package bkt implements two-state Bayesian Knowledge Tracing: it converts a
// chronological attempt history for one skill into a mastery probability, a
// confidence score, and a weak/developing/strong classification. Estimation
// is a pure function of the history — results are always rebuilt by full
// replay, never mutated incrementally, so the same history always produces
// the same output.
package bkt

import (
	"math"
	"time"
)

const (
	// DefaultConfidenceK controls how fast confidence saturates with
	// opportunity count: confidence = 1 - exp(-opportunities/k).
	DefaultConfidenceK = 8.0

	// DefaultConfidenceThreshold is the minimum confidence for a
	// classification to be reported at all.
	DefaultConfidenceThreshold = 0.3

	strongThreshold = 0.8
	weakThreshold   = 0.5
)

// Classification buckets a mastery estimate once confidence is sufficient.
type Classification string

const (
	// ClassificationNone means confidence is too low to classify.
	ClassificationNone       Classification = ""
	ClassificationWeak       Classification = "weak"
	ClassificationDeveloping Classification = "developing"
	ClassificationStrong     Classification = "strong"
)

// Observation is one piece of attempt evidence for a skill.
//
// Weight scales how strongly the observation moves the posterior: 1 for an
// ordinary attempt, 1/2^epoch for retry credit on correct answers, and 0 for
// bookkeeping records (recency refreshes, teacher exclusions) which advance
// the last-practiced clock but never touch the posterior.
type Observation struct {
	Correct bool
	At      time.Time
	Weight  float64
}

// Band is an uncertainty range around the mastery estimate.
type Band struct {
	Low  float64
	High float64
}

// Result is the full BKT readout for one skill.
type Result struct {
	PKnown                float64
	Confidence            float64
	Opportunities         int
	SuccessCount          int
	Uncertainty           Band
	LastPracticedAt       time.Time
	DaysSinceLastPractice float64
	Classification        Classification
}

// Estimator holds model parameters plus the confidence tunables. The zero
// value is not usable; construct with NewEstimator.
type Estimator struct {
	params              Params
	confidenceK         float64
	confidenceThreshold float64
}

// NewEstimator builds an estimator. Zero tunables fall back to defaults.
func NewEstimator(params Params, confidenceK, confidenceThreshold float64) *Estimator {
	if confidenceK <= 0 {
		confidenceK = DefaultConfidenceK
	}
	if confidenceThreshold <= 0 {
		confidenceThreshold = DefaultConfidenceThreshold
	}
	return &Estimator{
		params:              params,
		confidenceK:         confidenceK,
		confidenceThreshold: confidenceThreshold,
	}
}

// Estimate replays the history in order and returns the resulting readout.
// now anchors DaysSinceLastPractice.
func (e *Estimator) Estimate(history []Observation, now time.Time) Result {
	p := e.params.PInit
	res := Result{}

	for _, obs := range history {
		if !obs.At.IsZero() && obs.At.After(res.LastPracticedAt) {
			res.LastPracticedAt = obs.At
		}
		if obs.Weight <= 0 {
			// Staleness bookkeeping only.
			continue
		}
		w := obs.Weight
		if w > 1 {
			w = 1
		}

		res.Opportunities++
		if obs.Correct {
			res.SuccessCount++
		}

		// Bayes update on the observation, then the learning transition,
		// both attenuated by the observation weight.
		post := posterior(p, obs.Correct, e.params)
		post = w*post + (1-w)*p
		p = post + (1-post)*e.params.PLearn*w
	}

	res.PKnown = p
	res.Confidence = 1 - math.Exp(-float64(res.Opportunities)/e.confidenceK)
	res.Uncertainty = uncertaintyBand(p, res.Confidence)
	if !res.LastPracticedAt.IsZero() {
		res.DaysSinceLastPractice = now.Sub(res.LastPracticedAt).Hours() / 24
	}
	res.Classification = Classify(res.PKnown, res.Confidence, e.confidenceThreshold)
	return res
}

// posterior applies the standard BKT evidence update for one observation.
func posterior(p float64, correct bool, params Params) float64 {
	if correct {
		num := p * (1 - params.PSlip)
		den := num + (1-p)*params.PGuess
		if den == 0 {
			return p
		}
		return num / den
	}
	num := p * params.PSlip
	den := num + (1-p)*(1-params.PGuess)
	if den == 0 {
		return p
	}
	return num / den
}

// uncertaintyBand spreads around pKnown in proportion to what confidence is
// missing, clamped to [0,1].
func uncertaintyBand(p, confidence float64) Band {
	spread := 0.5 * (1 - confidence)
	return Band{
		Low:  clamp(p-spread, 0, 1),
		High: clamp(p+spread, 0, 1),
	}
}

// Classify buckets a mastery estimate. Below the confidence threshold no
// classification is made. Band lower bounds are inclusive: exactly 0.8 is
// strong, exactly 0.5 is developing.
func Classify(pKnown, confidence, confidenceThreshold float64) Classification {
	if confidence < confidenceThreshold {
		return ClassificationNone
	}
	switch {
	case pKnown >= strongThreshold:
		return ClassificationStrong
	case pKnown < weakThreshold:
		return ClassificationWeak
	default:
		return ClassificationDeveloping
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
