package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adina/skillpilot/internal/resumeai"
	"github.com/adina/skillpilot/internal/router"
	"github.com/adina/skillpilot/internal/screen"
	"github.com/adina/skillpilot/internal/screens/home"
	"github.com/adina/skillpilot/internal/store"
	"github.com/adina/skillpilot/internal/ui/layout"
)

// Options carries the dependencies the TUI needs. ResumeParser is optional;
// the rest of the app works without an LLM.
type Options struct {
	ProfileRepo  store.ProfileRepo
	PathRepo     store.PathRepo
	ResumeParser *resumeai.Parser
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router     *router.Router
	targetRole string
	pathDone   int
	pathTotal  int
	width      int
	height     int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.ProfileRepo, opts.PathRepo, opts.ResumeParser != nil)

	m := AppModel{
		router:     router.New(homeScreen),
		targetRole: homeScreen.Profile().Role,
	}
	if opts.PathRepo != nil {
		if stored, err := opts.PathRepo.Latest(context.Background(), homeScreen.Profile().ID); err == nil && stored != nil {
			m.pathDone = stored.Path.CompletedCount()
			m.pathTotal = len(stored.Path.Steps)
		}
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.targetRole, m.pathDone, m.pathTotal, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
