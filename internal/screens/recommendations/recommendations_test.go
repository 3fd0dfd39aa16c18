package recommendations

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/adina/skillpilot/internal/profile"
)

func testProfile() profile.Profile {
	return profile.Build(profile.Partial{Role: "Frontend Engineer"})
}

func TestRecommendationsScreen_Title(t *testing.T) {
	s := New(testProfile())
	if s.Title() != "Recommendations" {
		t.Errorf("Title = %q, want %q", s.Title(), "Recommendations")
	}
}

func TestRecommendationsScreen_Display(t *testing.T) {
	s := New(testProfile())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty recommendations view")
	}
	// Largest gap for the default profile is TypeScript (2 -> 4).
	if !strings.Contains(view, "TypeScript") {
		t.Error("expected TypeScript in recommendations view")
	}
}

func TestRecommendationsScreen_CursorMoves(t *testing.T) {
	s := New(testProfile())
	if len(s.recs) < 2 {
		t.Fatalf("expected at least 2 recommendations, got %d", len(s.recs))
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.cursor != 0 {
		t.Errorf("cursor after up at top = %d, want 0", s.cursor)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", s.cursor)
	}

	for range len(s.recs) + 2 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.cursor != len(s.recs)-1 {
		t.Errorf("cursor after overshoot = %d, want %d", s.cursor, len(s.recs)-1)
	}
}

func TestRecommendationsScreen_NoGaps(t *testing.T) {
	p := testProfile()
	for skill := range p.Skills {
		p.Skills[skill] = profile.LevelExpert
	}
	s := New(p)
	view := s.View(80, 24)
	if !strings.Contains(view, "No skill gaps") {
		t.Error("expected the no-gaps message for a fully levelled profile")
	}
}

func TestRecommendationsScreen_KeyHints(t *testing.T) {
	s := New(testProfile())
	hints := s.KeyHints()
	if len(hints) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(hints))
	}
}
