package problemgen

import "github.com/hikaru-dev/soroban/internal/skills"

// PartType identifies the three session part modalities.
type PartType string

const (
	// PartAbacus is tool-assisted: the student works on a physical soroban.
	PartAbacus PartType = "abacus"
	// PartVisualization is mental work on an imagined soroban.
	PartVisualization PartType = "visualization"
	// PartLinear is straight mental arithmetic without bead imagery.
	PartLinear PartType = "linear"
)

// AllPartTypes returns the part types in session order.
func AllPartTypes() []PartType {
	return []PartType{PartAbacus, PartVisualization, PartLinear}
}

// Purpose describes why a slot exists in the plan.
type Purpose string

const (
	PurposeFocus     Purpose = "focus"
	PurposeReinforce Purpose = "reinforce"
	PurposeReview    Purpose = "review"
	PurposeChallenge Purpose = "challenge"
)

// Range bounds the absolute magnitude of a single term.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Constraints describe what a generated problem must satisfy.
type Constraints struct {
	NumberRange Range `json:"numberRange"`
	MinTerms    int   `json:"minTerms"`
	MaxTerms    int   `json:"maxTerms"`
	// MinSum/MaxSum bound the final answer; nil means unbounded.
	MinSum *int `json:"minSum,omitempty"`
	MaxSum *int `json:"maxSum,omitempty"`
	// Complexity bounds the per-term technique cost; nil means no bound.
	Complexity *Bounds `json:"complexity,omitempty"`
}

// TraceStep records one term of the generation trace.
type TraceStep struct {
	Before int
	Term   int
	After  int
	Skills []skills.ID
	Cost   int
}

// Problem is an arithmetic sequence problem. Immutable once created.
type Problem struct {
	// Terms is the ordered signed term sequence: positive adds, negative
	// subtracts. Every prefix sum is non-negative.
	Terms []int
	// Answer is the sum of Terms.
	Answer int
	// SkillsRequired lists the techniques the sequence exercises, derived
	// from the step-by-step trace.
	SkillsRequired []skills.ID
	// Trace is the per-step derivation of SkillsRequired.
	Trace []TraceStep
}
