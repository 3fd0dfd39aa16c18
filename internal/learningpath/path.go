// Package learningpath flattens course recommendations into an ordered
// sequence of trackable steps.
package learningpath

import (
	"github.com/adina/skillpilot/internal/profile"
	"github.com/adina/skillpilot/internal/recommend"
)

// Step is one course in a learning path. ID is deterministic
// ("<skill>-<courseID>") so step state survives rebuild-and-diff workflows.
type Step struct {
	ID        string
	Skill     string
	CourseID  string
	Title     string
	Hours     int
	Completed bool
}

// LearningPath is an ordered sequence of steps toward a target role.
// Steps are fixed at build time; Completed is the only mutable field, and
// mutation always goes through ToggleStep, which returns a new path.
type LearningPath struct {
	UserID     string
	TargetRole string
	Steps      []Step
}

// TotalHours sums the duration of all steps.
func (lp LearningPath) TotalHours() int {
	total := 0
	for _, s := range lp.Steps {
		total += s.Hours
	}
	return total
}

// CompletedCount returns how many steps are done.
func (lp LearningPath) CompletedCount() int {
	n := 0
	for _, s := range lp.Steps {
		if s.Completed {
			n++
		}
	}
	return n
}

// Build generates recommendations for the profile against the target role and
// flattens them into a path. Step order is the nested traversal order:
// recommendations outer, each recommendation's courses inner. Consumers number
// steps by position, so this order is a contract.
func Build(p profile.Profile, targetRole string) LearningPath {
	recs := recommend.Generate(p, targetRole)

	var steps []Step
	for _, r := range recs {
		for _, c := range r.Courses {
			steps = append(steps, Step{
				ID:       r.Skill + "-" + c.ID,
				Skill:    r.Skill,
				CourseID: c.ID,
				Title:    c.Title,
				Hours:    c.Hours,
			})
		}
	}

	return LearningPath{
		UserID:     p.ID,
		TargetRole: targetRole,
		Steps:      steps,
	}
}

// ToggleStep returns a new path with the matching step's Completed flag
// inverted. An unknown step ID is a no-op, not an error: the returned path
// equals the input. Duplicate IDs (possible only under a pathological
// catalog) all toggle together; the operation stays duplicate-tolerant.
func ToggleStep(lp LearningPath, stepID string) LearningPath {
	steps := make([]Step, len(lp.Steps))
	copy(steps, lp.Steps)
	for i := range steps {
		if steps[i].ID == stepID {
			steps[i].Completed = !steps[i].Completed
		}
	}
	return LearningPath{
		UserID:     lp.UserID,
		TargetRole: lp.TargetRole,
		Steps:      steps,
	}
}
