package adaptive

import (
	"errors"
	"testing"

	"github.com/adaptiq/adaptiq/internal/bank"
	"github.com/adaptiq/adaptiq/internal/ledger"
)

func testQuestion() bank.Question {
	return bank.Question{
		Text:    "What type is the result of: 5 + 2.0?",
		Options: []string{"int", "float", "str", "bool"},
		Correct: "float",
	}
}

// submitCorrect and submitIncorrect grade one answer and fail the test on
// unexpected errors.
func submitCorrect(t *testing.T, c *Controller) ledger.Record {
	t.Helper()
	rec, err := c.Submit("alice", testQuestion(), "float", 50)
	if err != nil {
		t.Fatalf("submit correct: %v", err)
	}
	return rec
}

func submitIncorrect(t *testing.T, c *Controller) ledger.Record {
	t.Helper()
	rec, err := c.Submit("alice", testQuestion(), "int", 50)
	if err != nil {
		t.Fatalf("submit incorrect: %v", err)
	}
	return rec
}

func TestInitialState(t *testing.T) {
	c := NewController(bank.Default())
	if c.Level() != bank.MinLevel {
		t.Errorf("initial level = %d, want %d", c.Level(), bank.MinLevel)
	}
	if c.Score() != 0 || c.Attempts() != 0 {
		t.Errorf("initial score/attempts = %d/%d, want 0/0", c.Score(), c.Attempts())
	}
}

func TestLevelNeverExceedsMax(t *testing.T) {
	c := NewController(bank.Default())
	for i := 0; i < 10; i++ {
		submitCorrect(t, c)
		if c.Level() > bank.MaxLevel {
			t.Fatalf("level %d exceeds max %d after %d correct answers", c.Level(), bank.MaxLevel, i+1)
		}
	}
	if c.Level() != bank.MaxLevel {
		t.Errorf("level = %d, want %d after 10 correct answers", c.Level(), bank.MaxLevel)
	}
	// Max is reached after at most MaxLevel-MinLevel correct answers.
	c2 := NewController(bank.Default())
	for i := 0; i < bank.MaxLevel-bank.MinLevel; i++ {
		submitCorrect(t, c2)
	}
	if c2.Level() != bank.MaxLevel {
		t.Errorf("level = %d, want %d after %d correct answers", c2.Level(), bank.MaxLevel, bank.MaxLevel-bank.MinLevel)
	}
}

func TestLevelNeverDropsBelowMin(t *testing.T) {
	c := NewController(bank.Default())
	for i := 0; i < 10; i++ {
		submitIncorrect(t, c)
		if c.Level() < bank.MinLevel {
			t.Fatalf("level %d below min %d", c.Level(), bank.MinLevel)
		}
	}
	if c.Level() != bank.MinLevel {
		t.Errorf("level = %d, want %d", c.Level(), bank.MinLevel)
	}
}

func TestRecordSnapshotsPreTransitionLevel(t *testing.T) {
	c := NewController(bank.Default())

	// correct, correct, incorrect from level 1: asked at levels 1, 2, 3.
	r1 := submitCorrect(t, c)
	if c.Level() != 2 || c.Score() != 1 {
		t.Fatalf("after 1st correct: level=%d score=%d, want 2/1", c.Level(), c.Score())
	}
	r2 := submitCorrect(t, c)
	if c.Level() != 3 || c.Score() != 2 {
		t.Fatalf("after 2nd correct: level=%d score=%d, want 3/2", c.Level(), c.Score())
	}
	r3 := submitIncorrect(t, c)
	if c.Level() != 2 || c.Score() != 2 {
		t.Fatalf("after incorrect: level=%d score=%d, want 2/2", c.Level(), c.Score())
	}

	if c.Attempts() != 3 {
		t.Errorf("attempts = %d, want 3", c.Attempts())
	}
	for i, tc := range []struct {
		rec  ledger.Record
		want int
	}{{r1, 1}, {r2, 2}, {r3, 3}} {
		if tc.rec.Level != tc.want {
			t.Errorf("record %d level = %d, want %d (pre-transition)", i+1, tc.rec.Level, tc.want)
		}
	}
}

func TestSelectionOutsideOptionsIsIncorrect(t *testing.T) {
	c := NewController(bank.Default())
	rec, err := c.Submit("alice", testQuestion(), "not-an-option", 30)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rec.Outcome != ledger.OutcomeIncorrect {
		t.Errorf("outcome = %s, want Incorrect", rec.Outcome)
	}
}

func TestConfidenceOutOfRangeRejectedWithoutMutation(t *testing.T) {
	c := NewController(bank.Default())
	submitCorrect(t, c)
	before := c.State()

	for _, confidence := range []int{-1, 101, 150} {
		_, err := c.Submit("alice", testQuestion(), "float", confidence)
		if err == nil {
			t.Fatalf("confidence %d: expected error", confidence)
		}
		var invErr *InvalidInputError
		if !errors.As(err, &invErr) {
			t.Fatalf("confidence %d: expected *InvalidInputError, got %T", confidence, err)
		}
		if c.State() != before {
			t.Errorf("confidence %d: state mutated: %+v -> %+v", confidence, before, c.State())
		}
	}
}

func TestRecordSnapshotsQuestionContent(t *testing.T) {
	c := NewController(bank.Default())
	q := testQuestion()
	rec, err := c.Submit("alice", q, "str", 80)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rec.Question != q.Text || rec.Correct != q.Correct || rec.Selected != "str" {
		t.Errorf("record does not snapshot submission: %+v", rec)
	}
	if rec.Confidence != 80 || rec.UserID != "alice" {
		t.Errorf("record metadata wrong: %+v", rec)
	}
	if rec.Timestamp.IsZero() {
		t.Error("record timestamp is zero")
	}
}

func TestRestoreRollsBackTransition(t *testing.T) {
	c := NewController(bank.Default())
	before := c.State()
	submitCorrect(t, c)
	c.Restore(before)
	if c.State() != before {
		t.Errorf("state after restore = %+v, want %+v", c.State(), before)
	}
}

func TestNextQuestionTracksLevel(t *testing.T) {
	c := NewController(bank.Default())
	submitCorrect(t, c) // now at level 2

	b := bank.Default()
	levelSet := b.QuestionsFor(2)
	for range 20 {
		q := c.NextQuestion()
		found := false
		for _, candidate := range levelSet {
			if candidate.Text == q.Text {
				found = true
			}
		}
		if !found {
			t.Fatalf("NextQuestion returned %q, not in level 2 set", q.Text)
		}
	}
}
