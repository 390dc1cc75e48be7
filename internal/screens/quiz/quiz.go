// Package quiz is the main practice loop: question, confidence, feedback,
// repeat. Every graded submission is written to the ledger before the next
// question is served; a failed write keeps the session where it was and
// offers a retry.
package quiz

import (
	"context"
	"errors"
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/adaptiq/adaptiq/internal/bank"
	"github.com/adaptiq/adaptiq/internal/ledger"
	"github.com/adaptiq/adaptiq/internal/router"
	"github.com/adaptiq/adaptiq/internal/screen"
	"github.com/adaptiq/adaptiq/internal/screens/dashboard"
	"github.com/adaptiq/adaptiq/internal/session"
	"github.com/adaptiq/adaptiq/internal/ui/components"
	"github.com/adaptiq/adaptiq/internal/ui/layout"
)

// phase is the position within one question's lifecycle.
type phase int

const (
	phaseAnswering  phase = iota // choosing an option
	phaseConfidence              // rating confidence
	phaseFeedback                // showing the graded result
	phaseRetry                   // ledger append failed, offering retry
)

// Screen drives one learner's session.
type Screen struct {
	sess   *session.Session
	ledger ledger.Ledger

	phase    phase
	question bank.Question
	choice   components.MultiChoice
	slider   components.Slider

	lastRec ledger.Record
	saveErr error
}

var (
	_ screen.Screen              = (*Screen)(nil)
	_ screen.SessionInfoProvider = (*Screen)(nil)
)

// New starts the question loop for the given session.
func New(sess *session.Session, l ledger.Ledger) *Screen {
	s := &Screen{sess: sess, ledger: l}
	s.serveNext()
	return s
}

// serveNext picks a question at the current level and resets the per-question
// components.
func (s *Screen) serveNext() {
	s.question = s.sess.NextQuestion()
	correctIndex := slices.Index(s.question.Options, s.question.Correct)
	s.choice = components.NewMultiChoice(s.question.Text, s.question.Options, correctIndex)
	s.slider = components.NewSlider("How confident are you?", 40)
	s.phase = phaseAnswering
	s.saveErr = nil
}

func (s *Screen) Title() string {
	return "Practice"
}

// UserID reports the learner this screen serves, for the header.
func (s *Screen) UserID() string {
	return s.sess.UserID
}

// Level reports the current difficulty level, for the header.
func (s *Screen) Level() int {
	return s.sess.Level()
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	switch s.phase {
	case phaseAnswering:
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			s.phase = phaseConfidence
		}
		return s, cmd

	case phaseConfidence:
		if isKey && kmsg.String() == "enter" {
			s.submit()
			return s, nil
		}
		var cmd tea.Cmd
		s.slider, cmd = s.slider.Update(msg)
		return s, cmd

	case phaseFeedback:
		if !isKey {
			return s, nil
		}
		switch kmsg.String() {
		case "enter", " ":
			s.serveNext()
		case "d":
			return s, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: dashboard.New(s.sess, s.ledger),
				}
			}
		}
		return s, nil

	case phaseRetry:
		if isKey && kmsg.String() == "enter" {
			s.submit()
		}
		return s, nil
	}

	return s, nil
}

// submit grades the chosen answer. On storage failure the session was
// rolled back by the manager, so retrying re-runs the same transition.
func (s *Screen) submit() {
	rec, err := s.sess.Submit(context.Background(), s.question, s.choice.Choice(), s.slider.Value)
	if err != nil {
		var storageErr *ledger.StorageError
		if errors.As(err, &storageErr) {
			s.saveErr = err
			s.phase = phaseRetry
			return
		}
		// Invalid input: back to the confidence prompt.
		s.saveErr = err
		s.phase = phaseConfidence
		return
	}

	s.lastRec = rec
	s.saveErr = nil
	s.phase = phaseFeedback
}

// KeyHints implements screen.KeyHintProvider.
func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseAnswering:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case phaseConfidence:
		return []layout.KeyHint{
			{Key: "←→", Description: "Adjust"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case phaseRetry:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Retry save"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next question"},
			{Key: "D", Description: "Dashboard"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}
