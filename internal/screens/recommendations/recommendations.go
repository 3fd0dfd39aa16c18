package recommendations

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adina/skillpilot/internal/profile"
	"github.com/adina/skillpilot/internal/recommend"
	"github.com/adina/skillpilot/internal/screen"
	"github.com/adina/skillpilot/internal/ui/layout"
	"github.com/adina/skillpilot/internal/ui/theme"
)

// RecommendationsScreen lists course recommendations per gapped skill.
// One recommendation is expanded at a time; up/down moves between skills.
type RecommendationsScreen struct {
	role   string
	recs   []recommend.Recommendation
	cursor int
}

var _ screen.Screen = (*RecommendationsScreen)(nil)

// New creates a RecommendationsScreen for the given profile.
func New(p profile.Profile) *RecommendationsScreen {
	return &RecommendationsScreen{
		role: p.Role,
		recs: recommend.Generate(p, p.Role),
	}
}

func (r *RecommendationsScreen) Init() tea.Cmd {
	return nil
}

func (r *RecommendationsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if r.cursor > 0 {
			r.cursor--
		}
	case "down", "j":
		if r.cursor < len(r.recs)-1 {
			r.cursor++
		}
	}
	return r, nil
}

func (r *RecommendationsScreen) View(width, height int) string {
	if len(r.recs) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("No skill gaps for %q.\nYour profile already meets the role's requirements.", r.role))
	}

	var b strings.Builder
	for i, rec := range r.recs {
		header := fmt.Sprintf("%s  (gap %d, aim for %s)", rec.Skill, rec.Gap, rec.SuggestedLevel.Label())
		if i == r.cursor {
			b.WriteString(theme.Selected.Render("▸ " + header))
			b.WriteString("\n")
			for _, c := range rec.Courses {
				b.WriteString(theme.Body.Render(fmt.Sprintf("    %-34s", c.Title)))
				b.WriteString(theme.Hint.Render(fmt.Sprintf("  %s · %dh · %s", c.Difficulty, c.Hours, c.Provider)))
				b.WriteString("\n")
			}
		} else {
			b.WriteString(theme.Unselected.Render("  " + header))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	card := theme.Card.Width(min(width-4, 76)).Render(strings.TrimRight(b.String(), "\n"))
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (r *RecommendationsScreen) Title() string {
	return "Recommendations"
}

// KeyHints implements screen.KeyHintProvider.
func (r *RecommendationsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Skill"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
