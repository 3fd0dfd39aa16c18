// Package recommend selects courses for skill gaps and aggregates them into
// per-skill recommendations.
package recommend

import (
	"sort"

	"github.com/adina/skillpilot/internal/catalog"
	"github.com/adina/skillpilot/internal/gaps"
	"github.com/adina/skillpilot/internal/profile"
)

// MaxCoursesPerSkill caps how many courses a single recommendation carries.
const MaxCoursesPerSkill = 3

// Recommendation is the course plan for one gapped skill.
type Recommendation struct {
	Skill          string
	Gap            int
	SuggestedLevel profile.SkillLevel
	Courses        []catalog.Course
}

// targetRank maps a target proficiency to the difficulty band to aim for.
func targetRank(level profile.SkillLevel) int {
	switch {
	case level <= 2:
		return 0
	case level == 3:
		return 1
	default:
		return 2
	}
}

// CoursesForSkill returns up to MaxCoursesPerSkill catalog courses for the
// skill, ordered by how close each course's difficulty sits to the band the
// target level calls for. Equidistant courses keep catalog order. An unknown
// skill yields an empty list.
func CoursesForSkill(skill string, level profile.SkillLevel) []catalog.Course {
	pool := catalog.CoursesForSkill(skill)
	target := targetRank(level)

	sort.SliceStable(pool, func(i, j int) bool {
		return distance(pool[i].Difficulty.Rank(), target) < distance(pool[j].Difficulty.Rank(), target)
	})

	if len(pool) > MaxCoursesPerSkill {
		pool = pool[:MaxCoursesPerSkill]
	}
	return pool
}

// Generate runs gap analysis for the profile against the target role and
// builds a recommendation for every skill with a positive gap. Output order
// follows the gap analysis order (gap descending, stable).
func Generate(p profile.Profile, targetRole string) []Recommendation {
	var out []Recommendation
	for _, g := range gaps.Analyze(p, targetRole) {
		if g.Gap == 0 {
			continue
		}
		out = append(out, Recommendation{
			Skill:          g.Skill,
			Gap:            g.Gap,
			SuggestedLevel: g.SuggestedLevel,
			Courses:        CoursesForSkill(g.Skill, g.SuggestedLevel),
		})
	}
	return out
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
