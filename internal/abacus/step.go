// Package abacus models soroban bead arithmetic: given a running total and a
// signed term, it determines which techniques the operator must apply, column
// by column, to carry out the movement. Classification is driven by the
// actual bead state (earth beads, heaven bead, neighbor columns), not by the
// numeric delta alone: +4 from 0 is a direct movement, +4 from 2 needs the
// five complement.
package abacus

import (
	"fmt"

	"github.com/hikaru-dev/soroban/internal/skills"
)

// Technique costs used for per-term complexity accounting. Basic bead
// movements are free; complements and cascades are what make a term hard.
const (
	costFiveComplement = 1
	costTenComplement  = 2
	costCascade        = 3
)

// StepAnalysis describes one term applied to a running total.
type StepAnalysis struct {
	// Skills lists the techniques required, deduplicated, in the order the
	// columns demand them (least significant first).
	Skills []skills.ID
	// Cost is the summed technique cost for the step.
	Cost int
}

// AnalyzeStep classifies the techniques needed to apply delta to current.
// current must be non-negative and current+delta must not go negative; a
// violation means the caller broke the running-total invariant and is
// reported as a panic, not an error.
func AnalyzeStep(current, delta int) StepAnalysis {
	if current < 0 {
		panic(fmt.Sprintf("abacus: negative board value %d", current))
	}
	if current+delta < 0 {
		panic(fmt.Sprintf("abacus: step %+d from %d goes below zero", delta, current))
	}
	if delta == 0 {
		panic("abacus: zero-valued step")
	}

	acc := &analysisAccumulator{}
	if delta > 0 {
		analyzeAddition(current, delta, acc)
	} else {
		analyzeSubtraction(current, -delta, acc)
	}
	return StepAnalysis{Skills: acc.ids, Cost: acc.cost}
}

// analysisAccumulator collects techniques with set semantics while keeping
// first-use order.
type analysisAccumulator struct {
	ids  []skills.ID
	seen map[skills.ID]bool
	cost int
}

func (a *analysisAccumulator) add(id skills.ID, cost int) {
	a.cost += cost
	if a.seen == nil {
		a.seen = make(map[skills.ID]bool)
	}
	if a.seen[id] {
		return
	}
	a.seen[id] = true
	a.ids = append(a.ids, id)
}

func analyzeAddition(value, add int, acc *analysisAccumulator) {
	col := 0
	for rem := add; rem > 0; rem /= 10 {
		d := rem % 10
		if d == 0 {
			col++
			continue
		}
		vcol := digitAt(value, col)
		if vcol+d <= 9 {
			classifyColumnAdd(vcol, d, acc)
		} else {
			// Carry: d = 10 - (10-d). Subtract the complement in this
			// column, carry one into the next.
			acc.add(skills.ID{Category: skills.CategoryTenComplements, Key: skills.TenComplementKey(d)}, costTenComplement)
			if digitAt(value, col+1) == 9 {
				// The carried one overflows the neighbor as well.
				acc.add(skills.CascadingCarry, costCascade)
			}
		}
		value += d * pow10(col)
		col++
	}
}

func analyzeSubtraction(value, sub int, acc *analysisAccumulator) {
	col := 0
	for rem := sub; rem > 0; rem /= 10 {
		d := rem % 10
		if d == 0 {
			col++
			continue
		}
		vcol := digitAt(value, col)
		if vcol-d >= 0 {
			classifyColumnSub(vcol, d, acc)
		} else {
			// Borrow: -d = -10 + (10-d). Take one from the neighbor, add the
			// complement back in this column.
			acc.add(skills.ID{Category: skills.CategoryTenComplementsSub, Key: skills.TenComplementKey(d)}, costTenComplement)
			if digitAt(value, col+1) == 0 {
				// The neighbor is empty: the borrow ripples further left.
				acc.add(skills.CascadingBorrow, costCascade)
			}
		}
		value -= d * pow10(col)
		col++
	}
}

// classifyColumnAdd handles an in-column addition (vcol+d <= 9) of digit d.
func classifyColumnAdd(vcol, d int, acc *analysisAccumulator) {
	earth := vcol % 5
	switch {
	case d <= 4 && earth+d <= 4:
		acc.add(skills.DirectAddition, 0)
	case d <= 4:
		// Not enough earth beads: d = 5 - (5-d), set the heaven bead and
		// clear the complement. The heaven bead must be down here, or the
		// sum would have carried.
		acc.add(skills.ID{Category: skills.CategoryFiveComplements, Key: skills.FiveComplementKey(d)}, costFiveComplement)
	case d == 5:
		acc.add(skills.HeavenBead, 0)
	default:
		// 6-9 without a carry: heaven bead plus d-5 earth beads, both
		// guaranteed available when vcol+d <= 9.
		acc.add(skills.SimpleCombinations, 0)
	}
}

// classifyColumnSub handles an in-column subtraction (vcol-d >= 0) of digit d.
func classifyColumnSub(vcol, d int, acc *analysisAccumulator) {
	earth := vcol % 5
	switch {
	case d <= 4 && earth >= d:
		acc.add(skills.DirectSubtraction, 0)
	case d <= 4:
		// Earth beads insufficient; the heaven bead must be up. Clear it and
		// restore the complement: -d = -5 + (5-d).
		acc.add(skills.ID{Category: skills.CategoryFiveComplementsSub, Key: skills.FiveComplementKey(d)}, costFiveComplement)
	case d == 5:
		acc.add(skills.HeavenBeadSubtraction, 0)
	default:
		acc.add(skills.SimpleCombinationsSub, 0)
	}
}

func digitAt(v, col int) int {
	return v / pow10(col) % 10
}

func pow10(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
