package profileedit

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/adina/skillpilot/internal/profile"
)

// fakeProfileRepo records Upsert calls in memory.
type fakeProfileRepo struct {
	saved []profile.Profile
	err   error
}

func (f *fakeProfileRepo) Upsert(_ context.Context, p profile.Profile, _ string) (profile.Profile, error) {
	if f.err != nil {
		return profile.Profile{}, f.err
	}
	f.saved = append(f.saved, p)
	return p, nil
}

func (f *fakeProfileRepo) Latest(context.Context) (*profile.Profile, error) { return nil, nil }

func (f *fakeProfileRepo) GetByEmail(context.Context, string) (*profile.Profile, error) {
	return nil, nil
}

func (f *fakeProfileRepo) ResumeText(context.Context, string) (string, error) { return "", nil }

func TestEditScreen_Title(t *testing.T) {
	s := New(&fakeProfileRepo{}, profile.Build(profile.Partial{}))
	if s.Title() != "Edit Profile" {
		t.Errorf("Title = %q, want %q", s.Title(), "Edit Profile")
	}
}

func TestEditScreen_PrefilledFromProfile(t *testing.T) {
	p := profile.Build(profile.Partial{Role: "Data Engineer", ExperienceYears: 7})
	s := New(&fakeProfileRepo{}, p)

	if got := s.inputs[fieldRole].Value(); got != "Data Engineer" {
		t.Errorf("role input = %q, want %q", got, "Data Engineer")
	}
	if got := s.inputs[fieldYears].Value(); got != "7" {
		t.Errorf("years input = %q, want %q", got, "7")
	}
}

func TestEditScreen_TabCyclesFocus(t *testing.T) {
	s := New(&fakeProfileRepo{}, profile.Build(profile.Partial{}))
	s.Init()

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.focus != fieldYears {
		t.Errorf("focus after tab = %d, want %d", s.focus, fieldYears)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.focus != fieldRole {
		t.Errorf("focus after second tab = %d, want %d", s.focus, fieldRole)
	}
}

func TestEditScreen_SaveValidInput(t *testing.T) {
	repo := &fakeProfileRepo{}
	s := New(repo, profile.Build(profile.Partial{}))
	s.inputs[fieldRole].SetValue("Full Stack Developer")
	s.inputs[fieldYears].SetValue("5")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a save command on Enter")
	}

	msg := cmd()
	saved, ok := msg.(savedMsg)
	if !ok {
		t.Fatalf("expected savedMsg, got %T", msg)
	}
	if saved.err != nil {
		t.Fatalf("save error: %v", saved.err)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("Upsert calls = %d, want 1", len(repo.saved))
	}
	if repo.saved[0].Role != "Full Stack Developer" {
		t.Errorf("saved role = %q, want %q", repo.saved[0].Role, "Full Stack Developer")
	}
	if repo.saved[0].ExperienceYears != 5 {
		t.Errorf("saved years = %d, want 5", repo.saved[0].ExperienceYears)
	}
}

func TestEditScreen_RejectsEmptyRole(t *testing.T) {
	repo := &fakeProfileRepo{}
	s := New(repo, profile.Build(profile.Partial{}))
	s.inputs[fieldRole].SetValue("  ")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no save command for an empty role")
	}
	if len(repo.saved) != 0 {
		t.Errorf("Upsert calls = %d, want 0", len(repo.saved))
	}
}

func TestEditScreen_RejectsInvalidYears(t *testing.T) {
	repo := &fakeProfileRepo{}
	s := New(repo, profile.Build(profile.Partial{}))
	s.inputs[fieldYears].SetValue("lots")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no save command for non-numeric years")
	}
}

func TestEditScreen_SavedStatusShown(t *testing.T) {
	p := profile.Build(profile.Partial{})
	s := New(&fakeProfileRepo{}, p)

	s.Update(savedMsg{saved: p})
	view := s.View(80, 24)
	if !strings.Contains(view, "Saved") {
		t.Error("expected saved confirmation in view")
	}
}

func TestEditScreen_KeyHints(t *testing.T) {
	s := New(&fakeProfileRepo{}, profile.Build(profile.Partial{}))
	hints := s.KeyHints()
	if len(hints) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(hints))
	}
}
