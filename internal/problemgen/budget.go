package problemgen

// Bounds is a per-term complexity budget. Nil ends are unbounded.
type Bounds struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

// BudgetTable maps (purpose, part type) to per-term complexity bounds. It is
// configuration data with no state: two lookups with identical arguments
// always return equal results.
type BudgetTable struct {
	// PartCeilings caps per-term cost for focus/reinforce/review slots.
	// Abacus and linear share a ceiling; visualization is lower because
	// purely mental computation is harder per unit of complexity.
	PartCeilings map[PartType]int `json:"partCeilings"`
	// ChallengeMin forces at least this much technique cost per term in
	// challenge slots. Challenge slots have no ceiling.
	ChallengeMin int `json:"challengeMin"`
}

// DefaultBudgetTable returns the standard complexity budgets.
func DefaultBudgetTable() BudgetTable {
	return BudgetTable{
		PartCeilings: map[PartType]int{
			PartAbacus:        4,
			PartVisualization: 2,
			PartLinear:        4,
		},
		ChallengeMin: 1,
	}
}

// BoundsFor resolves the complexity bounds for a slot.
func (t BudgetTable) BoundsFor(purpose Purpose, part PartType) Bounds {
	if purpose == PurposeChallenge {
		min := t.ChallengeMin
		return Bounds{Min: &min}
	}
	if ceiling, ok := t.PartCeilings[part]; ok {
		return Bounds{Max: &ceiling}
	}
	return Bounds{}
}
