package dashboard

import (
	"strings"
	"testing"

	"github.com/adina/skillpilot/internal/profile"
)

func TestDashboardScreen_Title(t *testing.T) {
	s := New(profile.Build(profile.Partial{}))
	if s.Title() != "Dashboard" {
		t.Errorf("Title = %q, want %q", s.Title(), "Dashboard")
	}
}

func TestDashboardScreen_Display(t *testing.T) {
	p := profile.Build(profile.Partial{
		Name: "Sam Tester",
		Role: "Data Engineer",
	})
	s := New(p)
	view := s.View(80, 24)

	if !strings.Contains(view, "Sam Tester") {
		t.Error("expected profile name in dashboard view")
	}
	if !strings.Contains(view, "Data Engineer") {
		t.Error("expected target role in dashboard view")
	}
	// Data roles require Python, which the baseline profile lacks entirely.
	if !strings.Contains(view, "Python") {
		t.Error("expected Python gap in dashboard view")
	}
}

func TestDashboardScreen_MetSkillsMarked(t *testing.T) {
	p := profile.Build(profile.Partial{})
	for skill := range p.Skills {
		p.Skills[skill] = profile.LevelExpert
	}
	s := New(p)
	view := s.View(80, 24)
	if !strings.Contains(view, "met") {
		t.Error("expected met marker for satisfied requirements")
	}
}
