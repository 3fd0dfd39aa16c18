package recommend

import (
	"testing"

	"github.com/adina/skillpilot/internal/profile"
)

func TestCoursesForSkillDifficultyOrdering(t *testing.T) {
	// React has c1 (beginner) and c2 (advanced).
	tests := []struct {
		level profile.SkillLevel
		want  []string
	}{
		{1, []string{"c1", "c2"}}, // target beginner: c1 distance 0
		{2, []string{"c1", "c2"}},
		{3, []string{"c1", "c2"}}, // target intermediate: both distance 1, catalog order
		{4, []string{"c2", "c1"}}, // target advanced: c2 distance 0
		{5, []string{"c2", "c1"}},
	}

	for _, tt := range tests {
		got := CoursesForSkill("React", tt.level)
		if len(got) != len(tt.want) {
			t.Fatalf("level %d: got %d courses, want %d", tt.level, len(got), len(tt.want))
		}
		for i, id := range tt.want {
			if got[i].ID != id {
				t.Errorf("level %d: course[%d] = %s, want %s", tt.level, i, got[i].ID, id)
			}
		}
	}
}

func TestCoursesForSkillProperties(t *testing.T) {
	skills := []string{"React", "TypeScript", "Node.js", "SQL", "Python", "Docker", "Machine Learning", "COBOL"}
	for _, skill := range skills {
		for lvl := profile.SkillLevel(1); lvl <= 5; lvl++ {
			got := CoursesForSkill(skill, lvl)
			if len(got) > MaxCoursesPerSkill {
				t.Errorf("%s@%d: %d courses exceeds cap", skill, lvl, len(got))
			}
			for _, c := range got {
				if c.Skill != skill {
					t.Errorf("%s@%d: course %s belongs to skill %s", skill, lvl, c.ID, c.Skill)
				}
			}
		}
	}
}

func TestCoursesForUnknownSkill(t *testing.T) {
	if got := CoursesForSkill("Basket Weaving", 3); len(got) != 0 {
		t.Errorf("unknown skill returned %v", got)
	}
}

func TestGenerateFiltersZeroGaps(t *testing.T) {
	// React already at desired level, everything else gapped.
	p := profile.Profile{Skills: map[string]profile.SkillLevel{"React": 4}}
	recs := Generate(p, "Frontend Engineer")

	for _, r := range recs {
		if r.Skill == "React" {
			t.Error("zero-gap skill React should be filtered out")
		}
		if r.Gap <= 0 {
			t.Errorf("%s: non-positive gap %d in output", r.Skill, r.Gap)
		}
	}
	if len(recs) != 3 {
		t.Errorf("got %d recommendations, want 3", len(recs))
	}
}

func TestGenerateOrderMatchesGapRanking(t *testing.T) {
	p := profile.Profile{Skills: map[string]profile.SkillLevel{"React": 2}}
	recs := Generate(p, "Frontend Engineer")

	wantOrder := []string{"TypeScript", "React", "Node.js", "SQL"}
	if len(recs) != len(wantOrder) {
		t.Fatalf("got %d recommendations, want %d", len(recs), len(wantOrder))
	}
	for i, skill := range wantOrder {
		if recs[i].Skill != skill {
			t.Errorf("rec[%d] = %s, want %s", i, recs[i].Skill, skill)
		}
	}
}

func TestGenerateCourseSelectionUsesSuggestedLevel(t *testing.T) {
	p := profile.Profile{} // all skills Novice
	recs := Generate(p, "Frontend Engineer")

	for _, r := range recs {
		if r.Skill != "React" {
			continue
		}
		// Suggested level is 4 (desired), so the advanced course leads.
		if len(r.Courses) == 0 || r.Courses[0].ID != "c2" {
			t.Errorf("React courses = %v, want c2 first", r.Courses)
		}
		return
	}
	t.Error("React recommendation missing")
}

func TestGenerateNoGapsNoRecommendations(t *testing.T) {
	p := profile.Profile{Skills: map[string]profile.SkillLevel{
		"React": 5, "TypeScript": 5, "Node.js": 5, "SQL": 5,
	}}
	if recs := Generate(p, "Frontend Engineer"); len(recs) != 0 {
		t.Errorf("fully-skilled profile produced %d recommendations", len(recs))
	}
}
