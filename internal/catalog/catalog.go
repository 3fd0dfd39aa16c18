// Package catalog holds the static reference data the recommendation engine
// works from: role skill requirements, the course catalog, and job market
// trends. All data is immutable process-wide; accessor functions return
// copies so callers can't corrupt the tables.
package catalog

import (
	"regexp"
	"sort"

	"github.com/adina/skillpilot/internal/profile"
)

// SkillRequirement pairs a skill with the proficiency a role demands.
// Requirements are kept as an ordered slice rather than a map: the declared
// order is part of the engine contract (gap ranking tie-breaks preserve it).
type SkillRequirement struct {
	Skill   string
	Desired profile.SkillLevel
}

// Difficulty is a course difficulty band.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Rank returns the ordinal position of a difficulty band, used for
// distance-based course matching.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyBeginner:
		return 0
	case DifficultyIntermediate:
		return 1
	case DifficultyAdvanced:
		return 2
	default:
		return 0
	}
}

// Course is a catalog entry for a single training course.
type Course struct {
	ID         string
	Title      string
	Provider   string
	URL        string
	Skill      string
	Difficulty Difficulty
	Hours      int
}

// MarketTrend is a job-market demand datapoint for one skill.
type MarketTrend struct {
	Skill       string
	DemandIndex int     // 0-100
	GrowthYoY   float64 // -1.0 to 1.0
}

// rolePattern matches a role name to its skill requirements. Patterns are
// evaluated in declaration order; the first match wins.
type rolePattern struct {
	pattern      *regexp.Regexp
	requirements []SkillRequirement
}

var rolePatterns = []rolePattern{
	{
		pattern: regexp.MustCompile(`(?i)full\s*stack`),
		requirements: []SkillRequirement{
			{"React", 4}, {"TypeScript", 4}, {"Node.js", 4}, {"SQL", 3}, {"Docker", 3},
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)data`),
		requirements: []SkillRequirement{
			{"Python", 4}, {"Machine Learning", 4}, {"SQL", 4}, {"Docker", 2},
		},
	},
}

// defaultRequirements covers frontend and any unrecognized role.
var defaultRequirements = []SkillRequirement{
	{"React", 4}, {"TypeScript", 4}, {"Node.js", 3}, {"SQL", 3},
}

var marketTrends = []MarketTrend{
	{Skill: "React", DemandIndex: 88, GrowthYoY: 0.12},
	{Skill: "TypeScript", DemandIndex: 84, GrowthYoY: 0.15},
	{Skill: "Node.js", DemandIndex: 81, GrowthYoY: 0.09},
	{Skill: "Python", DemandIndex: 90, GrowthYoY: 0.11},
	{Skill: "SQL", DemandIndex: 78, GrowthYoY: 0.06},
	{Skill: "Machine Learning", DemandIndex: 86, GrowthYoY: 0.17},
	{Skill: "Docker", DemandIndex: 75, GrowthYoY: 0.08},
}

var courses = []Course{
	{ID: "c1", Title: "React Fundamentals", Provider: "Meta", URL: "https://www.coursera.org/learn/react-basics", Skill: "React", Difficulty: DifficultyBeginner, Hours: 12},
	{ID: "c2", Title: "Advanced React Patterns", Provider: "Frontend Masters", URL: "https://frontendmasters.com", Skill: "React", Difficulty: DifficultyAdvanced, Hours: 8},
	{ID: "c3", Title: "TypeScript for Professionals", Provider: "Udemy", URL: "https://www.udemy.com", Skill: "TypeScript", Difficulty: DifficultyIntermediate, Hours: 10},
	{ID: "c4", Title: "Node.js: The Complete Guide", Provider: "Udemy", URL: "https://www.udemy.com", Skill: "Node.js", Difficulty: DifficultyIntermediate, Hours: 20},
	{ID: "c5", Title: "Practical Machine Learning", Provider: "Coursera", URL: "https://www.coursera.org", Skill: "Machine Learning", Difficulty: DifficultyBeginner, Hours: 15},
	{ID: "c6", Title: "Docker Deep Dive", Provider: "Pluralsight", URL: "https://www.pluralsight.com", Skill: "Docker", Difficulty: DifficultyAdvanced, Hours: 9},
	{ID: "c7", Title: "SQL for Data Analysis", Provider: "DataCamp", URL: "https://www.datacamp.com", Skill: "SQL", Difficulty: DifficultyIntermediate, Hours: 6},
}

// DesiredSkillsForRole resolves a free-text role name to its skill
// requirements. Matching is case-insensitive substring matching in a fixed
// priority order; anything unmatched (including "frontend") falls through to
// the default frontend requirements.
func DesiredSkillsForRole(role string) []SkillRequirement {
	for _, rp := range rolePatterns {
		if rp.pattern.MatchString(role) {
			return cloneRequirements(rp.requirements)
		}
	}
	return cloneRequirements(defaultRequirements)
}

// Courses returns the full course catalog.
func Courses() []Course {
	out := make([]Course, len(courses))
	copy(out, courses)
	return out
}

// CoursesForSkill returns catalog courses whose skill matches exactly, in
// catalog order. Unknown skills yield an empty slice, never an error.
func CoursesForSkill(skill string) []Course {
	var out []Course
	for _, c := range courses {
		if c.Skill == skill {
			out = append(out, c)
		}
	}
	return out
}

// Trends returns the full market trend table.
func Trends() []MarketTrend {
	out := make([]MarketTrend, len(marketTrends))
	copy(out, marketTrends)
	return out
}

// TopTrends returns up to n trends ordered by demand index descending.
// Ties keep catalog order. A non-positive n returns an empty slice; an
// oversized n returns the whole table.
func TopTrends(n int) []MarketTrend {
	sorted := Trends()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DemandIndex > sorted[j].DemandIndex
	})
	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

func cloneRequirements(reqs []SkillRequirement) []SkillRequirement {
	out := make([]SkillRequirement, len(reqs))
	copy(out, reqs)
	return out
}
