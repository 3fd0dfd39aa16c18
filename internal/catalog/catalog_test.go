package catalog

import "testing"

func requirementsEqual(got, want []SkillRequirement) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestDesiredSkillsForRole(t *testing.T) {
	fullStack := []SkillRequirement{
		{"React", 4}, {"TypeScript", 4}, {"Node.js", 4}, {"SQL", 3}, {"Docker", 3},
	}
	data := []SkillRequirement{
		{"Python", 4}, {"Machine Learning", 4}, {"SQL", 4}, {"Docker", 2},
	}
	frontend := []SkillRequirement{
		{"React", 4}, {"TypeScript", 4}, {"Node.js", 3}, {"SQL", 3},
	}

	tests := []struct {
		role string
		want []SkillRequirement
	}{
		{"Full Stack Developer", fullStack},
		{"Senior FULLSTACK Engineer", fullStack},
		{"full  stack", fullStack},
		{"Data Scientist", data},
		{"Big Data Engineer", data},
		{"Frontend Engineer", frontend},
		{"Backend Engineer", frontend},
		{"", frontend},
		{"Basket Weaver", frontend},
	}

	for _, tt := range tests {
		got := DesiredSkillsForRole(tt.role)
		if !requirementsEqual(got, tt.want) {
			t.Errorf("DesiredSkillsForRole(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestPatternPriority(t *testing.T) {
	// "full stack" wins over "data" when both patterns match.
	got := DesiredSkillsForRole("Full Stack Data Developer")
	if len(got) != 5 || got[0].Skill != "React" {
		t.Errorf("full stack pattern should win, got %v", got)
	}
}

func TestDesiredSkillsReturnsCopy(t *testing.T) {
	a := DesiredSkillsForRole("Frontend Engineer")
	a[0].Desired = 1
	b := DesiredSkillsForRole("Frontend Engineer")
	if b[0].Desired != 4 {
		t.Errorf("catalog requirements mutated through returned slice: %v", b[0])
	}
}

func TestCoursesForSkill(t *testing.T) {
	react := CoursesForSkill("React")
	if len(react) != 2 {
		t.Fatalf("got %d React courses, want 2", len(react))
	}
	if react[0].ID != "c1" || react[1].ID != "c2" {
		t.Errorf("React courses out of catalog order: %s, %s", react[0].ID, react[1].ID)
	}

	if got := CoursesForSkill("COBOL"); len(got) != 0 {
		t.Errorf("unknown skill should yield no courses, got %v", got)
	}
}

func TestDifficultyRank(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want int
	}{
		{DifficultyBeginner, 0},
		{DifficultyIntermediate, 1},
		{DifficultyAdvanced, 2},
	}
	for _, tt := range tests {
		if got := tt.d.Rank(); got != tt.want {
			t.Errorf("Rank(%q) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestTopTrends(t *testing.T) {
	top := TopTrends(3)
	want := []struct {
		skill  string
		demand int
	}{
		{"Python", 90},
		{"React", 88},
		{"Machine Learning", 86},
	}
	if len(top) != len(want) {
		t.Fatalf("got %d trends, want %d", len(top), len(want))
	}
	for i, w := range want {
		if top[i].Skill != w.skill || top[i].DemandIndex != w.demand {
			t.Errorf("TopTrends(3)[%d] = %s(%d), want %s(%d)",
				i, top[i].Skill, top[i].DemandIndex, w.skill, w.demand)
		}
	}
}

func TestTopTrendsBounds(t *testing.T) {
	if got := TopTrends(0); len(got) != 0 {
		t.Errorf("TopTrends(0) returned %d trends", len(got))
	}
	if got := TopTrends(-1); len(got) != 0 {
		t.Errorf("TopTrends(-1) returned %d trends", len(got))
	}
	all := TopTrends(100)
	if len(all) != len(Trends()) {
		t.Errorf("TopTrends(100) returned %d trends, want %d", len(all), len(Trends()))
	}
	// Full ordering check: demand never increases.
	for i := 1; i < len(all); i++ {
		if all[i].DemandIndex > all[i-1].DemandIndex {
			t.Errorf("trends not sorted at %d: %d > %d", i, all[i].DemandIndex, all[i-1].DemandIndex)
		}
	}
}
