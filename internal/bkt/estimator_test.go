package bkt

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func obsRun(correct bool, n int, start time.Time) []Observation {
	out := make([]Observation, n)
	for i := range out {
		out[i] = Observation{Correct: correct, At: start.Add(time.Duration(i) * time.Minute), Weight: 1}
	}
	return out
}

func TestEstimate_EmptyHistory(t *testing.T) {
	e := NewEstimator(DefaultParams(), 0, 0)
	res := e.Estimate(nil, time.Now())
	if !almostEqual(res.PKnown, DefaultParams().PInit) {
		t.Errorf("PKnown = %v, want PInit %v", res.PKnown, DefaultParams().PInit)
	}
	if res.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", res.Confidence)
	}
	if res.Classification != ClassificationNone {
		t.Errorf("Classification = %q, want none", res.Classification)
	}
	if !res.LastPracticedAt.IsZero() || res.DaysSinceLastPractice != 0 {
		t.Error("empty history should report no last practice")
	}
}

func TestEstimate_SingleCorrect(t *testing.T) {
	p := DefaultParams()
	e := NewEstimator(p, 0, 0)
	res := e.Estimate([]Observation{{Correct: true, Weight: 1}}, time.Now())

	// Hand-computed: bayes then learn transition.
	post := p.PInit * (1 - p.PSlip) / (p.PInit*(1-p.PSlip) + (1-p.PInit)*p.PGuess)
	want := post + (1-post)*p.PLearn
	if !almostEqual(res.PKnown, want) {
		t.Errorf("PKnown = %v, want %v", res.PKnown, want)
	}
	if res.Opportunities != 1 || res.SuccessCount != 1 {
		t.Errorf("Opportunities/SuccessCount = %d/%d, want 1/1", res.Opportunities, res.SuccessCount)
	}
}

func TestEstimate_CorrectRaisesIncorrectLowers(t *testing.T) {
	e := NewEstimator(DefaultParams(), 0, 0)
	now := time.Now()

	base := e.Estimate(obsRun(true, 3, now), now).PKnown
	higher := e.Estimate(obsRun(true, 4, now), now).PKnown
	if higher <= base {
		t.Errorf("extra correct answer did not raise estimate: %v -> %v", base, higher)
	}

	wrongBayes := posterior(base, false, DefaultParams())
	if wrongBayes >= base {
		t.Errorf("incorrect evidence did not lower posterior: %v -> %v", base, wrongBayes)
	}
}

func TestEstimate_DeterministicReplay(t *testing.T) {
	e := NewEstimator(DefaultParams(), 0, 0)
	now := time.Now()
	history := []Observation{
		{Correct: true, Weight: 1},
		{Correct: false, Weight: 1},
		{Correct: true, Weight: 0.5},
		{Correct: true, Weight: 1},
	}
	a := e.Estimate(history, now)
	b := e.Estimate(history, now)
	if a != b {
		t.Errorf("replay not deterministic: %+v vs %+v", a, b)
	}
}

func TestEstimate_ZeroWeightAdvancesClockOnly(t *testing.T) {
	e := NewEstimator(DefaultParams(), 0, 0)
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	now := at.Add(48 * time.Hour)

	res := e.Estimate([]Observation{{Correct: true, At: at, Weight: 0}}, now)
	if res.Opportunities != 0 {
		t.Errorf("Opportunities = %d, want 0", res.Opportunities)
	}
	if !almostEqual(res.PKnown, DefaultParams().PInit) {
		t.Errorf("PKnown moved on zero-weight observation: %v", res.PKnown)
	}
	if !res.LastPracticedAt.Equal(at) {
		t.Errorf("LastPracticedAt = %v, want %v", res.LastPracticedAt, at)
	}
	if !almostEqual(res.DaysSinceLastPractice, 2) {
		t.Errorf("DaysSinceLastPractice = %v, want 2", res.DaysSinceLastPractice)
	}
}

func TestEstimate_PartialWeightAttenuates(t *testing.T) {
	e := NewEstimator(DefaultParams(), 0, 0)
	now := time.Now()

	full := e.Estimate([]Observation{{Correct: true, Weight: 1}}, now).PKnown
	half := e.Estimate([]Observation{{Correct: true, Weight: 0.5}}, now).PKnown
	if !(half > DefaultParams().PInit && half < full) {
		t.Errorf("half-weight estimate %v not between prior %v and full %v",
			half, DefaultParams().PInit, full)
	}

	// Weights above 1 clamp to 1.
	over := e.Estimate([]Observation{{Correct: true, Weight: 3}}, now).PKnown
	if !almostEqual(over, full) {
		t.Errorf("overweight = %v, want clamped to %v", over, full)
	}
}

func TestConfidence_Saturation(t *testing.T) {
	e := NewEstimator(DefaultParams(), 8, 0)
	now := time.Now()

	prev := 0.0
	for _, n := range []int{1, 4, 8, 16, 32} {
		res := e.Estimate(obsRun(true, n, now), now)
		want := 1 - math.Exp(-float64(n)/8)
		if !almostEqual(res.Confidence, want) {
			t.Errorf("Confidence(%d) = %v, want %v", n, res.Confidence, want)
		}
		if res.Confidence <= prev {
			t.Errorf("confidence not monotone at n=%d", n)
		}
		prev = res.Confidence
	}
}

func TestUncertaintyBand(t *testing.T) {
	b := uncertaintyBand(0.5, 0.8)
	if !almostEqual(b.Low, 0.4) || !almostEqual(b.High, 0.6) {
		t.Errorf("band = %+v, want [0.4, 0.6]", b)
	}
	// Clamped at the edges.
	b = uncertaintyBand(0.95, 0.5)
	if !almostEqual(b.High, 1) {
		t.Errorf("High = %v, want clamped to 1", b.High)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		pKnown, confidence float64
		want               Classification
	}{
		{0.9, 0.1, ClassificationNone},
		{0.8, 0.5, ClassificationStrong},
		{0.79, 0.5, ClassificationDeveloping},
		{0.5, 0.5, ClassificationDeveloping},
		{0.49, 0.5, ClassificationWeak},
		{0.1, 0.3, ClassificationWeak},
	}
	for _, tc := range cases {
		got := Classify(tc.pKnown, tc.confidence, DefaultConfidenceThreshold)
		if got != tc.want {
			t.Errorf("Classify(%v, %v) = %q, want %q", tc.pKnown, tc.confidence, got, tc.want)
		}
	}
}

func TestParams_Validate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("default params invalid: %v", err)
	}

	bad := DefaultParams()
	bad.PSlip = 0.5
	if err := bad.Validate(); err == nil {
		t.Error("pSlip = 0.5 should be rejected")
	}

	bad = DefaultParams()
	bad.PGuess = -0.1
	if err := bad.Validate(); err == nil {
		t.Error("negative pGuess should be rejected")
	}

	bad = DefaultParams()
	bad.PInit = 1.1
	if err := bad.Validate(); err == nil {
		t.Error("pInit above 1 should be rejected")
	}
}
