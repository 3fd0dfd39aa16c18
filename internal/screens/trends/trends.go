package trends

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adina/skillpilot/internal/catalog"
	"github.com/adina/skillpilot/internal/screen"
	"github.com/adina/skillpilot/internal/ui/theme"
)

// TrendsScreen shows job market demand per skill as a bar chart.
type TrendsScreen struct {
	trends []catalog.MarketTrend
}

var _ screen.Screen = (*TrendsScreen)(nil)

// New creates a TrendsScreen showing all market trends, most in-demand first.
func New() *TrendsScreen {
	return &TrendsScreen{
		trends: catalog.TopTrends(len(catalog.Trends())),
	}
}

func (t *TrendsScreen) Init() tea.Cmd {
	return nil
}

func (t *TrendsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return t, nil
}

func (t *TrendsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Job Market Demand"))
	b.WriteString("\n\n")

	for _, tr := range t.trends {
		bar := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(strings.Repeat("█", tr.DemandIndex/4))
		growth := theme.Done.Render(fmt.Sprintf("%+5.1f%%", tr.GrowthYoY*100))
		if tr.GrowthYoY < 0 {
			growth = theme.Urgent.Render(fmt.Sprintf("%+5.1f%%", tr.GrowthYoY*100))
		}
		b.WriteString(fmt.Sprintf("  %-18s %3d  %s  %s\n", tr.Skill, tr.DemandIndex, growth, bar))
	}

	card := theme.Card.Width(min(width-4, 76)).Render(strings.TrimRight(b.String(), "\n"))
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (t *TrendsScreen) Title() string {
	return "Market Trends"
}
