package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adina/skillpilot/internal/gaps"
	"github.com/adina/skillpilot/internal/profile"
	"github.com/adina/skillpilot/internal/screen"
	"github.com/adina/skillpilot/internal/ui/components"
	"github.com/adina/skillpilot/internal/ui/theme"
)

// DashboardScreen shows the profile summary and the gap analysis against the
// profile's target role.
type DashboardScreen struct {
	profile profile.Profile
	gaps    []gaps.Gap
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates a DashboardScreen for the given profile.
func New(p profile.Profile) *DashboardScreen {
	return &DashboardScreen{
		profile: p,
		gaps:    gaps.Analyze(p, p.Role),
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Body.Render(fmt.Sprintf("%s  ·  %s  ·  %d years",
		d.profile.Name, d.profile.Email, d.profile.ExperienceYears)))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Target role: %s", d.profile.Role)))
	b.WriteString("\n\n")

	b.WriteString(theme.Title.Render("Skill Gaps"))
	b.WriteString("\n\n")

	for _, g := range d.gaps {
		line := fmt.Sprintf("  %-18s %s → %s   ",
			g.Skill,
			components.LevelBar(int(g.Current), 5),
			components.LevelBar(int(g.Desired), 5))
		if g.Gap > 0 {
			line += theme.Urgent.Render(fmt.Sprintf("gap %d", g.Gap)) +
				theme.Hint.Render(fmt.Sprintf("  aim for %s", g.SuggestedLevel.Label()))
		} else {
			line += theme.Done.Render("met")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}
