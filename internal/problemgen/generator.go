// Package problemgen synthesizes soroban arithmetic problems under numeric,
// skill, and complexity constraints. Generation is rejection sampling with a
// bounded attempt budget: an infeasible constraint combination yields no
// problem plus diagnostics, never an error.
package problemgen

import (
	"fmt"
	"math/rand"

	"github.com/hikaru-dev/soroban/internal/abacus"
	"github.com/hikaru-dev/soroban/internal/skills"
)

// DefaultMaxAttempts bounds the rejection-sampling loop.
const DefaultMaxAttempts = 100

// Generator produces problems from an injected random source. It is not safe
// for concurrent use; create one per goroutine (the analysis cache is owned
// by the generator for the same reason).
type Generator struct {
	rnd         *rand.Rand
	cache       *abacus.AnalysisCache
	maxAttempts int
}

// Option configures a Generator.
type Option func(*Generator)

// WithMaxAttempts overrides the rejection-sampling attempt budget.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) { g.maxAttempts = n }
}

// WithCache supplies a shared step-analysis cache.
func WithCache(c *abacus.AnalysisCache) Option {
	return func(g *Generator) { g.cache = c }
}

// New creates a Generator around rnd. Callers seed rnd themselves, which
// makes generation deterministic under test.
func New(rnd *rand.Rand, opts ...Option) *Generator {
	g := &Generator{
		rnd:         rnd,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.cache == nil {
		g.cache = abacus.NewAnalysisCache()
	}
	return g
}

// Diagnostics tallies why generation attempts were rejected, so infeasible
// constraints are diagnosable rather than a silent empty result.
type Diagnostics struct {
	Attempts           int
	SumFailures        int
	SkillMismatches    int
	ComplexityFailures int
}

// Generate returns a problem satisfying the constraints and skill filters, or
// nil when no attempt within the budget succeeded. Callers own the fallback
// policy for the nil case.
func (g *Generator) Generate(c Constraints, allowed, target, forbidden skills.Set) *Problem {
	p, _ := g.GenerateWithDiagnostics(c, allowed, target, forbidden)
	return p
}

// GenerateWithDiagnostics is Generate plus per-failure-category tallies.
func (g *Generator) GenerateWithDiagnostics(c Constraints, allowed, target, forbidden skills.Set) (*Problem, Diagnostics) {
	validateConstraints(c)

	var diag Diagnostics
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		diag.Attempts++

		terms := g.sampleTerms(c, allowed)
		if terms == nil {
			// The term builder painted itself into a corner (e.g. every
			// candidate magnitude would break the running-total invariant).
			diag.SumFailures++
			continue
		}

		p := g.trace(terms)
		if violatesSum(p.Answer, c) {
			diag.SumFailures++
			continue
		}
		if c.Complexity != nil && violatesComplexity(p.Trace, *c.Complexity) {
			diag.ComplexityFailures++
			continue
		}
		if !MatchesSkills(p, allowed, target, forbidden) {
			diag.SkillMismatches++
			continue
		}
		return p, diag
	}
	return nil, diag
}

// sampleTerms builds one candidate signed-term sequence. Every prefix sum
// stays non-negative: an abacus cannot hold a negative intermediate state.
// Returns nil if a term cannot be placed.
func (g *Generator) sampleTerms(c Constraints, allowed skills.Set) []int {
	count := c.MinTerms + g.rnd.Intn(c.MaxTerms-c.MinTerms+1)
	subtractionAllowed := allowed.HasSubtraction()

	terms := make([]int, 0, count)
	total := 0
	for i := 0; i < count; i++ {
		// Subtraction needs a predecessor and enough on the board to stay
		// non-negative; a subtraction request from value 0 fails for this
		// term, never produces a negative total.
		canSubtract := subtractionAllowed && i > 0 && total >= c.NumberRange.Min
		subtract := canSubtract && g.rnd.Intn(2) == 1

		if subtract {
			upper := c.NumberRange.Max
			if upper > total {
				upper = total
			}
			mag := c.NumberRange.Min + g.rnd.Intn(upper-c.NumberRange.Min+1)
			terms = append(terms, -mag)
			total -= mag
			continue
		}

		mag := c.NumberRange.Min + g.rnd.Intn(c.NumberRange.Max-c.NumberRange.Min+1)
		terms = append(terms, mag)
		total += mag
	}
	return terms
}

// trace replays the sequence step by step, classifying each step's required
// techniques against the actual bead state.
func (g *Generator) trace(terms []int) *Problem {
	p := &Problem{
		Terms: terms,
		Trace: make([]TraceStep, 0, len(terms)),
	}
	seen := make(map[skills.ID]bool)
	total := 0
	for _, term := range terms {
		analysis := g.cache.Analyze(total, term)
		after := total + term
		p.Trace = append(p.Trace, TraceStep{
			Before: total,
			Term:   term,
			After:  after,
			Skills: analysis.Skills,
			Cost:   analysis.Cost,
		})
		for _, id := range analysis.Skills {
			if !seen[id] {
				seen[id] = true
				p.SkillsRequired = append(p.SkillsRequired, id)
			}
		}
		total = after
	}
	p.Answer = total
	return p
}

func violatesSum(answer int, c Constraints) bool {
	if c.MinSum != nil && answer < *c.MinSum {
		return true
	}
	if c.MaxSum != nil && answer > *c.MaxSum {
		return true
	}
	return false
}

func violatesComplexity(trace []TraceStep, b Bounds) bool {
	for _, step := range trace {
		if b.Min != nil && step.Cost < *b.Min {
			return true
		}
		if b.Max != nil && step.Cost > *b.Max {
			return true
		}
	}
	return false
}

func validateConstraints(c Constraints) {
	if c.MinTerms < 1 || c.MaxTerms < c.MinTerms {
		panic(fmt.Sprintf("problemgen: invalid term count bounds [%d, %d]", c.MinTerms, c.MaxTerms))
	}
	if c.NumberRange.Min < 1 || c.NumberRange.Max < c.NumberRange.Min {
		panic(fmt.Sprintf("problemgen: invalid number range [%d, %d]", c.NumberRange.Min, c.NumberRange.Max))
	}
}
