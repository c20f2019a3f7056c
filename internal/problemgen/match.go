package problemgen

import "github.com/hikaru-dev/soroban/internal/skills"

// MatchesSkills reports whether a problem's required skills satisfy the
// allowed/target/forbidden filters:
//
//   - every required skill must be enabled in allowed;
//   - no required skill may be enabled in forbidden;
//   - if target has at least one enabled skill, the problem must exercise at
//     least one of them; an empty target is vacuously satisfied.
//
// A skill whose category is not recognized by the filter sets conservatively
// fails the allowed check rather than crashing.
func MatchesSkills(p *Problem, allowed, target, forbidden skills.Set) bool {
	for _, id := range p.SkillsRequired {
		if !allowed.Enabled(id) {
			return false
		}
		if forbidden != nil && forbidden.Enabled(id) {
			return false
		}
	}

	if target == nil || target.Empty() {
		return true
	}
	for _, id := range p.SkillsRequired {
		if target.Enabled(id) {
			return true
		}
	}
	return false
}
