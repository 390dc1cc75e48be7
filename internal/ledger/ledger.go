// Package ledger provides the append-only store of attempt records. The
// ledger is the system of record for all analytics: records are written
// exactly once per submission and never updated or deleted.
package ledger

import (
	"context"
	"fmt"
	"time"
)

// Outcome is the graded result of one attempt.
type Outcome string

const (
	OutcomeCorrect   Outcome = "Correct"
	OutcomeIncorrect Outcome = "Incorrect"
)

// Record is one submitted answer, frozen at attempt time. Question content
// is snapshotted by value so later bank edits never alter history. Level is
// the difficulty the learner faced, not the level resulting from the answer.
type Record struct {
	Timestamp  time.Time
	UserID     string
	Question   string
	Selected   string
	Correct    string
	Outcome    Outcome
	Confidence int
	Level      int
}

// StorageError wraps a failure of the underlying medium. Append surfaces it
// only after the write has definitively failed; callers decide whether to
// retry the submission or discard it, but must not drop it silently.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("ledger %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Ledger is the append-only attempt store. Append must be safe to call
// concurrently from independent learner sessions; reads return records in
// insertion order and never expose mutable state.
type Ledger interface {
	// Append adds a record. Well-formed records are never rejected; a
	// *StorageError is returned only on medium failure.
	Append(ctx context.Context, rec Record) error

	// All returns every record in insertion order.
	All(ctx context.Context) ([]Record, error)

	// ByUser returns the user's records in insertion order.
	ByUser(ctx context.Context, userID string) ([]Record, error)
}
