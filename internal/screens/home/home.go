package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adina/skillpilot/internal/gaps"
	"github.com/adina/skillpilot/internal/profile"
	"github.com/adina/skillpilot/internal/router"
	"github.com/adina/skillpilot/internal/screen"
	"github.com/adina/skillpilot/internal/screens/dashboard"
	"github.com/adina/skillpilot/internal/screens/pathview"
	"github.com/adina/skillpilot/internal/screens/profileedit"
	"github.com/adina/skillpilot/internal/screens/recommendations"
	"github.com/adina/skillpilot/internal/screens/trends"
	"github.com/adina/skillpilot/internal/store"
	"github.com/adina/skillpilot/internal/ui/components"
	"github.com/adina/skillpilot/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu      components.Menu
	profile   profile.Profile
	openGaps  int
	pathDone  int
	pathTotal int
	aiReady   bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen wired to the given repositories. aiReady reports
// whether an LLM resume parser is configured; it only affects the status line.
func New(profileRepo store.ProfileRepo, pathRepo store.PathRepo, aiReady bool) *HomeScreen {
	p := loadProfile(profileRepo)

	openGaps := 0
	for _, g := range gaps.Analyze(p, p.Role) {
		if g.Gap > 0 {
			openGaps++
		}
	}

	var pathDone, pathTotal int
	if pathRepo != nil {
		if stored, err := pathRepo.Latest(context.Background(), p.ID); err == nil && stored != nil {
			pathDone = stored.Path.CompletedCount()
			pathTotal = len(stored.Path.Steps)
		}
	}

	items := []components.MenuItem{
		{Label: "DASHBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(p)}
			}
		}},
		{Label: "RECOMMENDATIONS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: recommendations.New(p)}
			}
		}},
		{Label: "LEARNING PATH", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: pathview.New(pathRepo, p)}
			}
		}},
		{Label: "MARKET TRENDS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: trends.New()}
			}
		}},
		{Label: "EDIT PROFILE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profileedit.New(profileRepo, p)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		profile:   p,
		openGaps:  openGaps,
		pathDone:  pathDone,
		pathTotal: pathTotal,
		aiReady:   aiReady,
	}
}

// loadProfile returns the latest stored profile, or the built-in demo profile
// when the database is empty or unavailable.
func loadProfile(repo store.ProfileRepo) profile.Profile {
	if repo != nil {
		if p, err := repo.Latest(context.Background()); err == nil && p != nil {
			return *p
		}
	}
	return profile.Build(profile.Partial{})
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("SKILLPILOT"))
	sections = append(sections, theme.Subtitle.Render("chart your course to "+h.profile.Role))

	stats := fmt.Sprintf("%d skills tracked · %d open gaps", len(h.profile.Skills), h.openGaps)
	if h.pathTotal > 0 {
		stats += fmt.Sprintf(" · path %d/%d", h.pathDone, h.pathTotal)
	}
	sections = append(sections, theme.Subtitle.Render(stats))

	sections = append(sections, "\n"+h.menu.View())

	ai := "AI resume parsing: off"
	if h.aiReady {
		ai = "AI resume parsing: ready"
	}
	sections = append(sections, theme.Hint.Render(ai))

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Profile returns the profile the home screen was built with.
func (h *HomeScreen) Profile() profile.Profile {
	return h.profile
}

func (h *HomeScreen) Title() string {
	return "Home"
}
