// Package app wires the TUI together: welcome screen into the question
// loop, screen stack routing, and the shared header/footer frame.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adaptiq/adaptiq/internal/bank"
	"github.com/adaptiq/adaptiq/internal/ledger"
	"github.com/adaptiq/adaptiq/internal/router"
	"github.com/adaptiq/adaptiq/internal/screen"
	"github.com/adaptiq/adaptiq/internal/screens/quiz"
	"github.com/adaptiq/adaptiq/internal/screens/welcome"
	"github.com/adaptiq/adaptiq/internal/session"
	"github.com/adaptiq/adaptiq/internal/ui/layout"
)

// Options carries the app's collaborators.
type Options struct {
	Bank   *bank.Bank
	Ledger ledger.Ledger
}

// Model is the root Bubble Tea model.
type Model struct {
	router *router.Router
	width  int
	height int
}

// newModel creates the root model starting at the welcome screen.
func newModel(opts Options) Model {
	manager := session.NewManager(opts.Bank, opts.Ledger)

	welcomeScreen := welcome.New(func(userID string) screen.Screen {
		sess, err := manager.Session(userID)
		if err != nil {
			// The welcome screen only hands over non-empty ids.
			panic(err)
		}
		return quiz.New(sess, opts.Ledger)
	})

	return Model{
		router: router.New(welcomeScreen),
	}
}

func (m Model) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m Model) View() tea.View {
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
	userID := ""
	level := 0
	if active != nil {
		title = active.Title()
		if info, ok := active.(screen.SessionInfoProvider); ok {
			userID = info.UserID()
			level = info.Level()
		}
	}

	header := layout.RenderHeader(title, userID, level, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
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
	p := tea.NewProgram(newModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
