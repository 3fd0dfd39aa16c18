package profileedit

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adina/skillpilot/internal/profile"
	"github.com/adina/skillpilot/internal/screen"
	"github.com/adina/skillpilot/internal/store"
	"github.com/adina/skillpilot/internal/ui/components"
	"github.com/adina/skillpilot/internal/ui/layout"
	"github.com/adina/skillpilot/internal/ui/theme"
)

const (
	fieldRole = iota
	fieldYears
	fieldCount
)

// savedMsg reports the result of a save.
type savedMsg struct {
	saved profile.Profile
	err   error
}

// EditScreen edits the target role and experience years of the profile.
type EditScreen struct {
	repo    store.ProfileRepo
	profile profile.Profile
	inputs  [fieldCount]components.TextInput
	focus   int
	status  string
}

var _ screen.Screen = (*EditScreen)(nil)

// New creates an EditScreen pre-filled from the given profile.
func New(repo store.ProfileRepo, p profile.Profile) *EditScreen {
	s := &EditScreen{repo: repo, profile: p}

	s.inputs[fieldRole] = components.NewTextInput("target role", false, 40)
	s.inputs[fieldRole].SetValue(p.Role)

	s.inputs[fieldYears] = components.NewTextInput("years", true, 2)
	s.inputs[fieldYears].SetValue(fmt.Sprintf("%d", p.ExperienceYears))

	return s
}

func (s *EditScreen) Init() tea.Cmd {
	return s.inputs[s.focus].Focus()
}

func (s *EditScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.err != nil {
			s.status = fmt.Sprintf("Save failed: %v", msg.err)
		} else {
			s.profile = msg.saved
			s.status = "Saved. Esc to go back."
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			s.inputs[s.focus].Blur()
			s.focus = (s.focus + 1) % fieldCount
			return s, s.inputs[s.focus].Focus()
		case "enter":
			return s, s.save()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

// save validates the inputs and persists the profile.
func (s *EditScreen) save() tea.Cmd {
	role := strings.TrimSpace(s.inputs[fieldRole].Value())
	years, err := s.inputs[fieldYears].NumericValue()

	roleOK := role != ""
	yearsOK := err == nil && years >= 0
	s.inputs[fieldRole].Submit(roleOK)
	s.inputs[fieldYears].Submit(yearsOK)
	if !roleOK || !yearsOK {
		s.status = "Fix the marked fields."
		return nil
	}

	if s.repo == nil {
		s.status = "No store available."
		return nil
	}

	repo := s.repo
	updated := s.profile
	updated.Role = role
	updated.ExperienceYears = years
	return func() tea.Msg {
		saved, err := repo.Upsert(context.Background(), updated, "")
		return savedMsg{saved: saved, err: err}
	}
}

func (s *EditScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Edit Profile"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Target role: "))
	b.WriteString(s.inputs[fieldRole].View())
	b.WriteString("\n")
	b.WriteString(theme.Body.Render("Experience:  "))
	b.WriteString(s.inputs[fieldYears].View())
	b.WriteString("\n\n")
	if s.status != "" {
		b.WriteString(theme.Hint.Render(s.status))
	}

	card := theme.Card.Width(min(width-4, 60)).Render(strings.TrimRight(b.String(), "\n"))
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (s *EditScreen) Title() string {
	return "Edit Profile"
}

// KeyHints implements screen.KeyHintProvider.
func (s *EditScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}
