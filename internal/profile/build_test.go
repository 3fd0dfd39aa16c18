package profile

import "testing"

func TestBuildDefaults(t *testing.T) {
	p := Build(Partial{})

	if p.ID != "u1" {
		t.Errorf("ID = %q, want %q", p.ID, "u1")
	}
	if p.Name != "Alex Developer" {
		t.Errorf("Name = %q, want %q", p.Name, "Alex Developer")
	}
	if p.Role != "Frontend Engineer" {
		t.Errorf("Role = %q, want %q", p.Role, "Frontend Engineer")
	}
	if p.ExperienceYears != 3 {
		t.Errorf("ExperienceYears = %d, want 3", p.ExperienceYears)
	}

	wantSkills := map[string]SkillLevel{
		"React": 3, "TypeScript": 2, "Node.js": 2, "SQL": 2,
	}
	if len(p.Skills) != len(wantSkills) {
		t.Fatalf("got %d skills, want %d", len(p.Skills), len(wantSkills))
	}
	for skill, want := range wantSkills {
		if got := p.Skills[skill]; got != want {
			t.Errorf("Skills[%q] = %d, want %d", skill, got, want)
		}
	}
}

func TestBuildOverrides(t *testing.T) {
	p := Build(Partial{
		Name:            "Sam",
		Role:            "Data Analyst",
		ExperienceYears: 7,
		Skills:          map[string]SkillLevel{"React": 5, "Python": 4},
	})

	if p.Name != "Sam" {
		t.Errorf("Name = %q, want %q", p.Name, "Sam")
	}
	if p.Role != "Data Analyst" {
		t.Errorf("Role = %q, want %q", p.Role, "Data Analyst")
	}
	if p.ExperienceYears != 7 {
		t.Errorf("ExperienceYears = %d, want 7", p.ExperienceYears)
	}
	// Partial skill wins over the baseline, new skills are unioned in.
	if p.Skills["React"] != 5 {
		t.Errorf("Skills[React] = %d, want 5", p.Skills["React"])
	}
	if p.Skills["Python"] != 4 {
		t.Errorf("Skills[Python] = %d, want 4", p.Skills["Python"])
	}
	if p.Skills["SQL"] != 2 {
		t.Errorf("Skills[SQL] = %d, want 2 (baseline preserved)", p.Skills["SQL"])
	}
}

func TestMerge(t *testing.T) {
	base := Build(Partial{})
	merged := Merge(base, Partial{
		Role:   "Full Stack Developer",
		Skills: map[string]SkillLevel{"Docker": 3, "React": 4},
	})

	if merged.Role != "Full Stack Developer" {
		t.Errorf("Role = %q, want %q", merged.Role, "Full Stack Developer")
	}
	if merged.Name != base.Name {
		t.Errorf("Name = %q, want unchanged %q", merged.Name, base.Name)
	}
	if merged.Skills["Docker"] != 3 {
		t.Errorf("Skills[Docker] = %d, want 3", merged.Skills["Docker"])
	}
	if merged.Skills["React"] != 4 {
		t.Errorf("Skills[React] = %d, want 4", merged.Skills["React"])
	}

	// Merge must not mutate the base profile.
	if base.Role != "Frontend Engineer" {
		t.Errorf("base.Role mutated to %q", base.Role)
	}
	if _, ok := base.Skills["Docker"]; ok {
		t.Error("base.Skills mutated: Docker added")
	}
	if base.Skills["React"] != 3 {
		t.Errorf("base.Skills[React] mutated to %d", base.Skills["React"])
	}
}

func TestRemoveSkills(t *testing.T) {
	base := Build(Partial{})
	out := RemoveSkills(base, "React", "Rust")

	if _, ok := out.Skills["React"]; ok {
		t.Error("Skills[React] still present after removal")
	}
	if len(out.Skills) != len(base.Skills)-1 {
		t.Errorf("got %d skills, want %d", len(out.Skills), len(base.Skills)-1)
	}
	if out.Skills["TypeScript"] != base.Skills["TypeScript"] {
		t.Errorf("Skills[TypeScript] = %d, want unchanged %d",
			out.Skills["TypeScript"], base.Skills["TypeScript"])
	}

	// RemoveSkills must not mutate the base profile.
	if base.Skills["React"] != 3 {
		t.Errorf("base.Skills[React] = %d, want 3", base.Skills["React"])
	}
}

func TestLevelDefaultsToNovice(t *testing.T) {
	p := Profile{Skills: map[string]SkillLevel{"SQL": 4}}
	if got := p.Level("SQL"); got != 4 {
		t.Errorf("Level(SQL) = %d, want 4", got)
	}
	if got := p.Level("Rust"); got != LevelNovice {
		t.Errorf("Level(Rust) = %d, want %d", got, LevelNovice)
	}
}

func TestSkillLevelClamp(t *testing.T) {
	tests := []struct {
		in   SkillLevel
		want SkillLevel
	}{
		{-2, LevelNovice},
		{0, LevelNovice},
		{1, 1},
		{3, 3},
		{5, 5},
		{9, LevelExpert},
	}
	for _, tt := range tests {
		if got := tt.in.Clamp(); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
