package gaps

import (
	"testing"

	"github.com/adina/skillpilot/internal/profile"
)

func TestAnalyzeOrdering(t *testing.T) {
	// React at 2 gives gap 2; TypeScript/Node.js/SQL default to Novice,
	// giving gaps 3, 2, 2. Expected order: TypeScript first, then React,
	// Node.js, SQL in requirement order (stable ties).
	p := profile.Profile{Skills: map[string]profile.SkillLevel{"React": 2}}
	got := Analyze(p, "Frontend Engineer")

	wantOrder := []string{"TypeScript", "React", "Node.js", "SQL"}
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d gaps, want %d", len(got), len(wantOrder))
	}
	for i, skill := range wantOrder {
		if got[i].Skill != skill {
			t.Errorf("gap[%d] = %s, want %s", i, got[i].Skill, skill)
		}
	}
	if got[0].Gap != 3 {
		t.Errorf("TypeScript gap = %d, want 3", got[0].Gap)
	}
	if got[1].Gap != 2 || got[1].Current != 2 {
		t.Errorf("React gap = %d current = %d, want gap 2 current 2", got[1].Gap, got[1].Current)
	}
}

func TestAnalyzeNeverNegative(t *testing.T) {
	p := profile.Profile{Skills: map[string]profile.SkillLevel{
		"React": 5, "TypeScript": 5, "Node.js": 5, "SQL": 5,
	}}
	for _, g := range Analyze(p, "Frontend Engineer") {
		if g.Gap < 0 {
			t.Errorf("%s: negative gap %d", g.Skill, g.Gap)
		}
		if g.Gap != 0 {
			t.Errorf("%s: expected zero gap at expert level, got %d", g.Skill, g.Gap)
		}
	}
}

func TestAnalyzeSuggestedLevelInvariants(t *testing.T) {
	profiles := []profile.Profile{
		{Skills: nil},
		{Skills: map[string]profile.SkillLevel{"SQL": 5, "Python": 1}},
		{Skills: map[string]profile.SkillLevel{"React": 3, "Docker": 4}},
	}
	roles := []string{"Frontend Engineer", "Full Stack Developer", "Data Scientist", "???"}

	for _, p := range profiles {
		for _, role := range roles {
			for _, g := range Analyze(p, role) {
				if g.SuggestedLevel < g.Current {
					t.Errorf("%s/%s: suggested %d < current %d", role, g.Skill, g.SuggestedLevel, g.Current)
				}
				if g.SuggestedLevel < g.Desired {
					t.Errorf("%s/%s: suggested %d < desired %d", role, g.Skill, g.SuggestedLevel, g.Desired)
				}
			}
		}
	}
}

func TestAnalyzeSuggestedLevelAboveDesired(t *testing.T) {
	// A skill the user already exceeds keeps the user's level as suggested.
	p := profile.Profile{Skills: map[string]profile.SkillLevel{"SQL": 5}}
	for _, g := range Analyze(p, "Frontend Engineer") {
		if g.Skill == "SQL" {
			if g.SuggestedLevel != 5 {
				t.Errorf("SQL suggested = %d, want 5", g.SuggestedLevel)
			}
			if g.Gap != 0 {
				t.Errorf("SQL gap = %d, want 0", g.Gap)
			}
			return
		}
	}
	t.Error("SQL gap record missing")
}

func TestAnalyzeEmptyProfile(t *testing.T) {
	got := Analyze(profile.Profile{}, "Data Scientist")
	if len(got) != 4 {
		t.Fatalf("got %d gaps, want 4", len(got))
	}
	// Every skill defaults to Novice, so each gap is desired-1.
	for _, g := range got {
		if g.Current != profile.LevelNovice {
			t.Errorf("%s: current = %d, want Novice", g.Skill, g.Current)
		}
		if g.Gap != int(g.Desired)-1 {
			t.Errorf("%s: gap = %d, want %d", g.Skill, g.Gap, int(g.Desired)-1)
		}
	}
	// Python, Machine Learning and SQL all tie at gap 3 and must keep the
	// requirement table's declared order; Docker (gap 1) comes last.
	wantOrder := []string{"Python", "Machine Learning", "SQL", "Docker"}
	for i, skill := range wantOrder {
		if got[i].Skill != skill {
			t.Errorf("gap[%d] = %s, want %s", i, got[i].Skill, skill)
		}
	}
}
