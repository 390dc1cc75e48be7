// Package dashboard shows the learner's progress and the instructor-facing
// cohort metrics over the full ledger, plus the grade-sync preview.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adaptiq/adaptiq/internal/analytics"
	"github.com/adaptiq/adaptiq/internal/gradesync"
	"github.com/adaptiq/adaptiq/internal/ledger"
	"github.com/adaptiq/adaptiq/internal/screen"
	"github.com/adaptiq/adaptiq/internal/session"
	"github.com/adaptiq/adaptiq/internal/ui/components"
	"github.com/adaptiq/adaptiq/internal/ui/layout"
	"github.com/adaptiq/adaptiq/internal/ui/theme"
)

// loadedMsg carries the ledger snapshot read during Init.
type loadedMsg struct {
	metrics analytics.CohortMetrics
	total   int
	err     error
}

// Screen renders session progress and cohort metrics.
type Screen struct {
	sess   *session.Session
	ledger ledger.Ledger

	loaded  bool
	metrics analytics.CohortMetrics
	total   int
	loadErr error
}

var _ screen.Screen = (*Screen)(nil)

// New creates a dashboard for the session over the given ledger.
func New(sess *session.Session, l ledger.Ledger) *Screen {
	return &Screen{sess: sess, ledger: l}
}

func (d *Screen) Title() string {
	return "Dashboard"
}

// Init loads the ledger snapshot. Queries run against a point-in-time view;
// attempts submitted while the dashboard is open appear on next open.
func (d *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := d.ledger.All(context.Background())
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{metrics: analytics.Cohort(records), total: len(records)}
	}
}

func (d *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(loadedMsg); ok {
		d.loaded = true
		d.metrics = m.metrics
		d.total = m.total
		d.loadErr = m.err
	}
	return d, nil
}

func (d *Screen) View(width, height int) string {
	if !d.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading…"))
	}
	if d.loadErr != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("Could not read the ledger: "+d.loadErr.Error()))
	}

	var sections []string

	// Learner panel.
	progress := d.sess.Progress()
	accuracy := 0.0
	if progress.Attempted > 0 {
		accuracy = float64(progress.Score) / float64(progress.Attempted)
	}
	learner := strings.Join([]string{
		theme.Title.Render("Your session"),
		"",
		theme.Body.Render(fmt.Sprintf("Progress: %d / %d", progress.Score, progress.Attempted)),
		components.NewProgressBar("", accuracy, true, 36).View(),
	}, "\n")
	sections = append(sections, theme.Card.Render(learner))

	// Cohort panel.
	cohort := strings.Join([]string{
		theme.Title.Render("All learners"),
		"",
		theme.Body.Render(fmt.Sprintf("Attempts recorded: %d", d.total)),
		theme.Body.Render(fmt.Sprintf("Average confidence: %.1f%%", d.metrics.MeanConfidence)),
		theme.Body.Render(fmt.Sprintf("Correct answer rate: %.1f%%", d.metrics.AccuracyRate)),
	}, "\n")
	sections = append(sections, "", theme.Card.Render(cohort))

	// Grade-sync preview.
	summary := d.sess.Summary()
	syncURL, err := gradesync.BuildURL("", gradesync.Payload{
		UserID:      summary.UserID,
		Score:       summary.Score,
		Total:       summary.Attempts,
		AccuracyPct: summary.AccuracyPct,
	})
	if err == nil {
		sections = append(sections, "",
			theme.Subtitle.Render("LMS grade sync preview"),
			theme.Hint.Render(syncURL),
		)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// KeyHints implements screen.KeyHintProvider.
func (d *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
