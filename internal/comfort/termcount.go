package comfort

import "math"

// MinTermFloor is the absolute floor for term counts: a problem with fewer
// than two terms is not a sequence.
const MinTermFloor = 2

// TermCountRange bounds how many terms a generated problem may have.
type TermCountRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// RangeForLevel maps a comfort level onto a term-count range between base and
// ceiling: more comfortable students get longer sequences.
func RangeForLevel(level float64, base, ceiling TermCountRange) TermCountRange {
	level = clamp(level, 0, 1)
	minT := base.Min + int(math.Round(level*float64(ceiling.Min-base.Min)))
	maxT := base.Max + int(math.Round(level*float64(ceiling.Max-base.Max)))
	return floorRange(TermCountRange{Min: minT, Max: maxT})
}

// ApplyTermCountOverride clamps a computed range under an operator-configured
// ceiling. The override only ever lowers bounds; it never raises the computed
// range. After the ceiling, the absolute floor of MinTermFloor applies to
// both bounds, and min <= max is restored by collapsing to the floor if the
// floor pushed min past the computed max. Applying the same override twice is
// a no-op after the first.
func ApplyTermCountOverride(computed TermCountRange, override *TermCountRange) TermCountRange {
	r := computed
	if override != nil {
		if r.Min > override.Max {
			r.Min = override.Max
		}
		if r.Max > override.Max {
			r.Max = override.Max
		}
	}
	return floorRange(r)
}

func floorRange(r TermCountRange) TermCountRange {
	if r.Min < MinTermFloor {
		r.Min = MinTermFloor
	}
	if r.Max < MinTermFloor {
		r.Max = MinTermFloor
	}
	if r.Min > r.Max {
		r.Max = r.Min
	}
	return r
}
