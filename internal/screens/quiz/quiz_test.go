package quiz

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/adaptiq/adaptiq/internal/bank"
	"github.com/adaptiq/adaptiq/internal/ledger"
	"github.com/adaptiq/adaptiq/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestScreen(t *testing.T, l ledger.Ledger) *Screen {
	t.Helper()
	m := session.NewManager(bank.Default(), l)
	sess, err := m.Session("alice")
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	return New(sess, l)
}

// selectCorrectOption moves the cursor onto the correct option.
func selectCorrectOption(t *testing.T, s *Screen) {
	t.Helper()
	for range len(s.question.Options) {
		if s.question.Options[s.choice.Selected] == s.question.Correct {
			return
		}
		updated, _ := s.Update(specialKey(tea.KeyDown))
		if updated != s {
			t.Fatal("Update returned a different screen")
		}
	}
	t.Fatalf("correct option %q not reachable", s.question.Correct)
}

func TestAnswerFlowAdvancesPhases(t *testing.T) {
	l := ledger.NewMemory()
	s := newTestScreen(t, l)

	if s.phase != phaseAnswering {
		t.Fatalf("initial phase = %d, want answering", s.phase)
	}

	selectCorrectOption(t, s)
	s.Update(specialKey(tea.KeyEnter))
	if s.phase != phaseConfidence {
		t.Fatalf("phase after choosing = %d, want confidence", s.phase)
	}

	// Nudge confidence then submit.
	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyEnter))
	if s.phase != phaseFeedback {
		t.Fatalf("phase after submit = %d, want feedback", s.phase)
	}
	if s.lastRec.Outcome != ledger.OutcomeCorrect {
		t.Errorf("outcome = %s, want Correct", s.lastRec.Outcome)
	}
	if s.lastRec.Confidence != 55 {
		t.Errorf("confidence = %d, want 55 (50 + one step)", s.lastRec.Confidence)
	}

	recs, _ := l.All(context.Background())
	if len(recs) != 1 {
		t.Fatalf("ledger has %d records, want 1", len(recs))
	}

	// Enter serves the next question at the new level.
	s.Update(specialKey(tea.KeyEnter))
	if s.phase != phaseAnswering {
		t.Fatalf("phase after feedback = %d, want answering", s.phase)
	}
	if s.Level() != bank.MinLevel+1 {
		t.Errorf("level = %d, want %d after a correct answer", s.Level(), bank.MinLevel+1)
	}
}

func TestSessionInfoForHeader(t *testing.T) {
	s := newTestScreen(t, ledger.NewMemory())
	if s.UserID() != "alice" {
		t.Errorf("UserID = %q, want alice", s.UserID())
	}
	if s.Level() != bank.MinLevel {
		t.Errorf("Level = %d, want %d", s.Level(), bank.MinLevel)
	}
}

// failingLedger refuses the first failures appends.
type failingLedger struct {
	*ledger.Memory
	failures int
	calls    int
}

func (f *failingLedger) Append(ctx context.Context, rec ledger.Record) error {
	f.calls++
	if f.calls <= f.failures {
		return &ledger.StorageError{Op: "append", Err: errors.New("medium failure")}
	}
	return f.Memory.Append(ctx, rec)
}

func TestStorageFailureOffersRetryWithoutAdvancing(t *testing.T) {
	l := &failingLedger{Memory: ledger.NewMemory(), failures: 1}
	s := newTestScreen(t, l)

	selectCorrectOption(t, s)
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter)) // submit, append fails

	if s.phase != phaseRetry {
		t.Fatalf("phase = %d, want retry", s.phase)
	}
	if p := s.sess.Progress(); p.Attempted != 0 {
		t.Errorf("session advanced despite failed append: %+v", p)
	}

	// Retry succeeds and grades the same submission.
	s.Update(specialKey(tea.KeyEnter))
	if s.phase != phaseFeedback {
		t.Fatalf("phase after retry = %d, want feedback", s.phase)
	}
	if p := s.sess.Progress(); p.Attempted != 1 || p.Score != 1 {
		t.Errorf("progress after retry = %+v, want 1/1", p)
	}
	recs, _ := l.All(context.Background())
	if len(recs) != 1 {
		t.Errorf("ledger has %d records, want 1", len(recs))
	}
}
