// Package gaps compares a user's skill profile against the requirements of a
// target role and ranks the shortfalls.
package gaps

import (
	"sort"

	"github.com/adina/skillpilot/internal/catalog"
	"github.com/adina/skillpilot/internal/profile"
)

// Gap is one skill's shortfall against a role requirement.
type Gap struct {
	Skill          string
	Current        profile.SkillLevel
	Desired        profile.SkillLevel
	Gap            int // desired - current, floored at 0
	SuggestedLevel profile.SkillLevel
}

// Analyze computes a gap record for every skill the role requires, sorted by
// gap descending. Skills missing from the profile count as Novice, never as
// absent. Zero-gap records are included; filtering happens downstream.
// Equal gaps keep the requirement table's declared order, which is why the
// sort must be stable.
func Analyze(p profile.Profile, targetRole string) []Gap {
	desired := catalog.DesiredSkillsForRole(targetRole)

	out := make([]Gap, 0, len(desired))
	for _, req := range desired {
		current := p.Level(req.Skill)
		gap := int(req.Desired) - int(current)
		if gap < 0 {
			gap = 0
		}
		suggested := req.Desired
		if current > suggested {
			suggested = current
		}
		out = append(out, Gap{
			Skill:          req.Skill,
			Current:        current,
			Desired:        req.Desired,
			Gap:            gap,
			SuggestedLevel: suggested,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Gap > out[j].Gap
	})
	return out
}
