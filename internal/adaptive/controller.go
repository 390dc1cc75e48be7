// Package adaptive implements the difficulty controller for a single
// learner session. The rule is deliberately memoryless: only the most
// recent answer moves the level, one step at a time, clamped to the bank's
// bounds.
package adaptive

import (
	"fmt"
	"time"

	"github.com/adaptiq/adaptiq/internal/bank"
	"github.com/adaptiq/adaptiq/internal/ledger"
)

// InvalidInputError rejects a malformed submission before any state
// mutation. Recoverable: the caller should re-prompt.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// State is the mutable per-session progress owned by a Controller.
type State struct {
	Level    int
	Score    int
	Attempts int
}

// Controller drives one learner's question loop: it picks questions at the
// current level, grades submissions, and moves the level. Not safe for
// concurrent use; each learner session owns exactly one Controller.
type Controller struct {
	bank  *bank.Bank
	state State
}

// NewController creates a Controller starting at the minimum level.
func NewController(b *bank.Bank) *Controller {
	return &Controller{
		bank:  b,
		state: State{Level: bank.MinLevel},
	}
}

// NextQuestion picks a question at the current difficulty level.
func (c *Controller) NextQuestion() bank.Question {
	return c.bank.Pick(c.state.Level)
}

// Submit grades a submission and applies the level transition. The returned
// record snapshots the level the question was asked at, before the
// transition — the difficulty the learner actually faced. The caller must
// append the record to the ledger before serving the next question.
func (c *Controller) Submit(userID string, q bank.Question, selected string, confidence int) (ledger.Record, error) {
	if confidence < 0 || confidence > 100 {
		return ledger.Record{}, &InvalidInputError{
			Field:  "confidence",
			Reason: fmt.Sprintf("%d out of range [0,100]", confidence),
		}
	}

	// A selection outside the option set is simply incorrect.
	outcome := ledger.OutcomeIncorrect
	if selected == q.Correct {
		outcome = ledger.OutcomeCorrect
	}

	rec := ledger.Record{
		Timestamp:  time.Now(),
		UserID:     userID,
		Question:   q.Text,
		Selected:   selected,
		Correct:    q.Correct,
		Outcome:    outcome,
		Confidence: confidence,
		Level:      c.state.Level,
	}

	if outcome == ledger.OutcomeCorrect {
		c.state.Score++
		c.state.Level = min(bank.MaxLevel, c.state.Level+1)
	} else {
		c.state.Level = max(bank.MinLevel, c.state.Level-1)
	}
	c.state.Attempts++

	return rec, nil
}

// State returns a copy of the current session state.
func (c *Controller) State() State {
	return c.state
}

// Restore resets the controller to a previously captured state. Used by
// the session layer to roll back a transition whose ledger append failed,
// so a lost write never advances the attempt count.
func (c *Controller) Restore(s State) {
	c.state = s
}

// Level returns the current difficulty level.
func (c *Controller) Level() int { return c.state.Level }

// Score returns the count of correct answers this session.
func (c *Controller) Score() int { return c.state.Score }

// Attempts returns the count of graded submissions this session.
func (c *Controller) Attempts() int { return c.state.Attempts }
