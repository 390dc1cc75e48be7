// Package welcome is the entry screen: the learner identifies themselves
// before the question loop starts. The id is opaque — a name or student
// number — and is only used to key the session and its ledger records.
package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adaptiq/adaptiq/internal/router"
	"github.com/adaptiq/adaptiq/internal/screen"
	"github.com/adaptiq/adaptiq/internal/ui/components"
	"github.com/adaptiq/adaptiq/internal/ui/layout"
	"github.com/adaptiq/adaptiq/internal/ui/theme"
)

// Screen prompts for the learner id.
type Screen struct {
	input  components.TextInput
	next   func(userID string) screen.Screen
	errMsg string
}

var _ screen.Screen = (*Screen)(nil)

// New creates a welcome screen that hands off to the screen produced by
// next once a non-empty learner id is entered.
func New(next func(userID string) screen.Screen) *Screen {
	return &Screen{
		input: components.NewTextInput("name or student ID", 40),
		next:  next,
	}
}

func (w *Screen) Title() string {
	return "Welcome"
}

func (w *Screen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		userID := strings.TrimSpace(w.input.Value())
		if userID == "" {
			w.errMsg = "Please enter your name or student ID."
			return w, nil
		}
		nextScreen := w.next(userID)
		return w, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: nextScreen}
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *Screen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		theme.Title.Render("Adaptive Python Data Types Lesson"),
		"",
		theme.Subtitle.Render("Questions adapt to your level. Answer and get instant feedback."),
		"",
		"",
		theme.Body.Render("Who is learning today?"),
		"",
		w.input.View(),
	)

	if w.errMsg != "" {
		sections = append(sections, "", theme.Incorrect.Render(w.errMsg))
	}

	sections = append(sections, "", theme.Hint.Render("press enter to start"))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// KeyHints implements screen.KeyHintProvider.
func (w *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
