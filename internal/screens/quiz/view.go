package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/adaptiq/adaptiq/internal/ledger"
	"github.com/adaptiq/adaptiq/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	var sections []string

	progress := s.sess.Progress()
	sections = append(sections,
		theme.Subtitle.Render(fmt.Sprintf("Q%d  ·  Level %d  ·  Score %d/%d",
			progress.Attempted+1, s.questionLevel(), progress.Score, progress.Attempted)),
		"",
		s.choice.View(),
	)

	switch s.phase {
	case phaseConfidence:
		sections = append(sections, "", s.slider.View())
		if s.saveErr != nil {
			sections = append(sections, "", theme.Incorrect.Render(s.saveErr.Error()))
		}

	case phaseFeedback:
		sections = append(sections, "", s.feedbackLine(), "")
		sections = append(sections, theme.Hint.Render("enter: next question  ·  d: dashboard"))

	case phaseRetry:
		sections = append(sections, "",
			theme.Incorrect.Render("Could not save your attempt."),
			theme.Hint.Render(s.saveErr.Error()),
			"",
			theme.Hint.Render("press enter to retry"),
		)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// questionLevel is the level the current question was served at. During
// feedback the session has already transitioned, so use the record.
func (s *Screen) questionLevel() int {
	if s.phase == phaseFeedback {
		return s.lastRec.Level
	}
	return s.sess.Level()
}

func (s *Screen) feedbackLine() string {
	if s.lastRec.Outcome == ledger.OutcomeCorrect {
		return theme.Correct.Render("✓ Correct!")
	}
	return theme.Incorrect.Render("✗ Incorrect. ") +
		theme.Body.Render("The correct answer was: "+s.lastRec.Correct)
}
