package problemgen

import (
	"testing"

	"github.com/hikaru-dev/soroban/internal/skills"
)

func problemRequiring(ids ...skills.ID) *Problem {
	return &Problem{SkillsRequired: ids}
}

func TestMatchesSkills_AllowedGate(t *testing.T) {
	p := problemRequiring(skills.DirectAddition, skills.HeavenBead)

	if !MatchesSkills(p, skills.SetOf("basic.directAddition", "basic.heavenBead"), nil, nil) {
		t.Error("fully allowed problem rejected")
	}
	if MatchesSkills(p, skills.SetOf("basic.directAddition"), nil, nil) {
		t.Error("problem with unallowed skill accepted")
	}
}

func TestMatchesSkills_Forbidden(t *testing.T) {
	p := problemRequiring(skills.DirectAddition, skills.HeavenBead)
	allowed := skills.SetOf("basic.directAddition", "basic.heavenBead")

	if MatchesSkills(p, allowed, nil, skills.SetOf("basic.heavenBead")) {
		t.Error("forbidden skill not rejected")
	}

	// A disabled entry in the forbidden set does not forbid.
	forbidden := skills.NewSet()
	forbidden.Enable(skills.HeavenBead)
	forbidden.Disable(skills.HeavenBead)
	if !MatchesSkills(p, allowed, nil, forbidden) {
		t.Error("disabled forbidden entry still rejects")
	}
}

func TestMatchesSkills_Target(t *testing.T) {
	p := problemRequiring(skills.DirectAddition)
	allowed := skills.SetOf("basic.directAddition", "basic.heavenBead")

	// Empty target is vacuously satisfied.
	if !MatchesSkills(p, allowed, skills.NewSet(), nil) {
		t.Error("empty target rejected a valid problem")
	}
	if !MatchesSkills(p, allowed, skills.SetOf("basic.directAddition"), nil) {
		t.Error("matching target rejected")
	}
	if MatchesSkills(p, allowed, skills.SetOf("basic.heavenBead"), nil) {
		t.Error("non-intersecting target accepted")
	}
}
