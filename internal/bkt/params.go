package bkt

import (
	"errors"
	"fmt"
)

// Sentinel errors for the bkt package. Check with errors.Is.
var (
	ErrInvalidParams = errors.New("bkt: parameters out of bounds")
)

// Params are the four standard two-state BKT model parameters.
type Params struct {
	// PInit is the prior probability the skill is already known.
	PInit float64 `json:"pInit"`
	// PLearn is the probability of transitioning to known after an attempt.
	PLearn float64 `json:"pLearn"`
	// PSlip is the probability of answering wrong despite knowing the skill.
	PSlip float64 `json:"pSlip"`
	// PGuess is the probability of answering right without knowing the skill.
	PGuess float64 `json:"pGuess"`
}

// DefaultParams are conservative global defaults; per-skill overrides come
// from configuration.
func DefaultParams() Params {
	return Params{
		PInit:  0.1,
		PLearn: 0.15,
		PSlip:  0.1,
		PGuess: 0.2,
	}
}

// Validate checks the parameters keep observations informative: slips and
// guesses must stay below one half or correctness evidence inverts.
func (p Params) Validate() error {
	check := func(name string, v, lo, hi float64) error {
		if v < lo || v > hi {
			return fmt.Errorf("%w: %s = %v, bounds [%v, %v]", ErrInvalidParams, name, v, lo, hi)
		}
		return nil
	}
	if err := check("pInit", p.PInit, 0, 1); err != nil {
		return err
	}
	if err := check("pLearn", p.PLearn, 0, 1); err != nil {
		return err
	}
	if err := check("pSlip", p.PSlip, 0, 0.499); err != nil {
		return err
	}
	return check("pGuess", p.PGuess, 0, 0.499)
}
