package resume

import (
	"testing"

	"github.com/adina/skillpilot/internal/profile"
)

func TestExtractScenario(t *testing.T) {
	text := "Senior Software Engineer with 5 years experience in React and SQL"
	got := Extract(text)

	if got.Role != "Software Engineer" {
		t.Errorf("Role = %q, want %q", got.Role, "Software Engineer")
	}
	if got.ExperienceYears != 5 {
		t.Errorf("ExperienceYears = %d, want 5", got.ExperienceYears)
	}

	want := map[string]profile.SkillLevel{"React": 3, "SQL": 3}
	if len(got.Skills) != len(want) {
		t.Fatalf("got %d skills %v, want %d", len(got.Skills), got.Skills, len(want))
	}
	for skill, lvl := range want {
		if got.Skills[skill] != lvl {
			t.Errorf("Skills[%q] = %d, want %d", skill, got.Skills[skill], lvl)
		}
	}
}

func TestExtractSkillDetection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"case insensitive", "expert in typescript and DOCKER", []string{"TypeScript", "Docker"}},
		{"multi word skill", "built machine learning pipelines", []string{"Machine Learning"}},
		{"substring match", "nodejs is not matched but Node.js is", []string{"Node.js"}},
		{"none", "I enjoy gardening", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			if len(got.Skills) != len(tt.want) {
				t.Fatalf("got skills %v, want %v", got.Skills, tt.want)
			}
			for _, skill := range tt.want {
				if got.Skills[skill] != DetectedLevel {
					t.Errorf("Skills[%q] = %d, want %d", skill, got.Skills[skill], DetectedLevel)
				}
			}
		})
	}
}

func TestExtractRoleInference(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"backend developer for hire", "Software Engineer"},
		{"Site Reliability ENGINEER", "Software Engineer"},
		{"product manager", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Extract(tt.text).Role; got != tt.want {
			t.Errorf("Extract(%q).Role = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractExperience(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"10 years of experience", 10},
		{"8+ yrs shipping software", 8},
		{"3years in ops", 3},
		{"12 Years", 12},
		{"no numbers here", 2},
		{"joined in 2019", 2}, // year alone, no "years"/"yrs" suffix
		{"", 2},
	}
	for _, tt := range tests {
		if got := Extract(tt.text).ExperienceYears; got != tt.want {
			t.Errorf("Extract(%q).ExperienceYears = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestExtractFirstExperienceMatchWins(t *testing.T) {
	got := Extract("4 years at Acme, 9 years total")
	if got.ExperienceYears != 4 {
		t.Errorf("ExperienceYears = %d, want first match 4", got.ExperienceYears)
	}
}
