package pathview

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adina/skillpilot/internal/learningpath"
	"github.com/adina/skillpilot/internal/profile"
	"github.com/adina/skillpilot/internal/screen"
	"github.com/adina/skillpilot/internal/store"
	"github.com/adina/skillpilot/internal/ui/components"
	"github.com/adina/skillpilot/internal/ui/layout"
	"github.com/adina/skillpilot/internal/ui/theme"
)

// pathUpdatedMsg carries the path state after a persistence operation.
type pathUpdatedMsg struct {
	stored *store.StoredPath
	err    error
}

// PathScreen shows the learning path as an interactive checklist. Toggles
// are persisted through the path repository.
type PathScreen struct {
	repo    store.PathRepo
	profile profile.Profile
	stored  *store.StoredPath
	cursor  int
	err     error
}

var _ screen.Screen = (*PathScreen)(nil)

// New creates a PathScreen showing the user's latest saved path. When no
// path is saved yet, the screen offers to build one.
func New(repo store.PathRepo, p profile.Profile) *PathScreen {
	s := &PathScreen{repo: repo, profile: p}
	if repo != nil {
		s.stored, s.err = repo.Latest(context.Background(), p.ID)
	}
	return s
}

func (s *PathScreen) Init() tea.Cmd {
	return nil
}

func (s *PathScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pathUpdatedMsg:
		if msg.err != nil {
			s.err = msg.err
			return s, nil
		}
		s.stored = msg.stored
		s.err = nil
		if s.stored != nil && s.cursor >= len(s.stored.Path.Steps) {
			s.cursor = len(s.stored.Path.Steps) - 1
			if s.cursor < 0 {
				s.cursor = 0
			}
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.stored != nil && s.cursor < len(s.stored.Path.Steps)-1 {
				s.cursor++
			}
		case " ", "enter":
			return s, s.toggleSelected()
		case "b":
			return s, s.buildPath()
		}
	}
	return s, nil
}

// toggleSelected persists a completion toggle for the step under the cursor.
func (s *PathScreen) toggleSelected() tea.Cmd {
	if s.repo == nil || s.stored == nil || len(s.stored.Path.Steps) == 0 {
		return nil
	}
	pathID := s.stored.PathID
	stepID := s.stored.Path.Steps[s.cursor].ID
	repo := s.repo
	return func() tea.Msg {
		updated, err := repo.ToggleStep(context.Background(), pathID, stepID)
		return pathUpdatedMsg{stored: updated, err: err}
	}
}

// buildPath generates and saves a fresh path from the current profile.
func (s *PathScreen) buildPath() tea.Cmd {
	if s.repo == nil {
		return nil
	}
	repo := s.repo
	p := s.profile
	return func() tea.Msg {
		lp := learningpath.Build(p, p.Role)
		if len(lp.Steps) == 0 {
			return pathUpdatedMsg{err: fmt.Errorf("no skill gaps for %q, nothing to learn", p.Role)}
		}
		pathID, err := repo.Save(context.Background(), lp)
		if err != nil {
			return pathUpdatedMsg{err: err}
		}
		stored, err := repo.Get(context.Background(), pathID)
		return pathUpdatedMsg{stored: stored, err: err}
	}
}

func (s *PathScreen) View(width, height int) string {
	center := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	if s.err != nil {
		return center.Foreground(theme.Text).
			Render(fmt.Sprintf("%v\n\nPress b to rebuild the path.", s.err))
	}
	if s.stored == nil {
		return center.Foreground(theme.Text).
			Render("No learning path yet.\n\nPress b to build one from your profile.")
	}

	lp := s.stored.Path
	var b strings.Builder

	done := lp.CompletedCount()
	pct := 0.0
	if len(lp.Steps) > 0 {
		pct = float64(done) / float64(len(lp.Steps))
	}
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Toward %s · %d hours total", lp.TargetRole, lp.TotalHours())))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("Progress", pct, true, 60).View())
	b.WriteString("\n\n")

	for i, step := range lp.Steps {
		mark := "[ ]"
		style := theme.Unselected
		if step.Completed {
			mark = "[x]"
			style = theme.Done
		}
		line := fmt.Sprintf("%s %-18s %-34s %3dh", mark, step.Skill, step.Title, step.Hours)
		if i == s.cursor {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(style.Render("  " + line))
		}
		b.WriteString("\n")
	}

	card := theme.Card.Width(min(width-4, 76)).Render(strings.TrimRight(b.String(), "\n"))
	return center.Render(card)
}

func (s *PathScreen) Title() string {
	return "Learning Path"
}

// KeyHints implements screen.KeyHintProvider.
func (s *PathScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Step"},
		{Key: "Space", Description: "Toggle"},
		{Key: "b", Description: "Rebuild"},
		{Key: "Esc", Description: "Back"},
	}
}
