// Package resume turns free resume text into a partial skill profile using a
// naive keyword scan. It is intentionally dumb: presence of a skill keyword
// sets that skill to Intermediate, nothing is inferred from context.
package resume

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/adina/skillpilot/internal/profile"
)

// skillVocabulary is the fixed set of skills the scanner can detect.
// Detection is case-insensitive substring matching.
var skillVocabulary = []string{
	"React", "TypeScript", "Node.js", "Python", "SQL", "Machine Learning", "Docker",
}

// DetectedLevel is the level assigned to every detected skill.
const DetectedLevel = profile.LevelIntermediate

// DefaultExperienceYears is used when no experience phrase is found.
const DefaultExperienceYears = 2

// Vocabulary returns a copy of the detectable skill set.
func Vocabulary() []string {
	out := make([]string, len(skillVocabulary))
	copy(out, skillVocabulary)
	return out
}

var (
	rolePattern       = regexp.MustCompile(`(?i)developer|engineer`)
	experiencePattern = regexp.MustCompile(`(?i)([0-9]+)\+?\s*(years|yrs)`)
)

// Extract scans resume text and returns a partial profile. It never fails:
// empty or unrecognizable text yields an empty skill map, an empty role, and
// the default experience years.
func Extract(text string) profile.Partial {
	skills := make(map[string]profile.SkillLevel)
	lower := strings.ToLower(text)
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			skills[skill] = DetectedLevel
		}
	}

	role := ""
	if rolePattern.MatchString(text) {
		role = "Software Engineer"
	}

	years := DefaultExperienceYears
	if m := experiencePattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			years = n
		}
	}

	return profile.Partial{
		Role:            role,
		ExperienceYears: years,
		Skills:          skills,
	}
}
