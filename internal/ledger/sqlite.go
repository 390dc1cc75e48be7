package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/adaptiq/adaptiq/internal/store"
)

// SQLite is a Ledger backed by the attempts table. Insertion order is the
// rowid sequence, so ordering is independent of clock skew between
// concurrent sessions. The mutex serializes writes within the process;
// busy_timeout handles contention from other processes.
type SQLite struct {
	mu sync.Mutex
	db *sql.DB
}

var _ Ledger = (*SQLite)(nil)

// NewSQLite creates a Ledger over the given store.
func NewSQLite(st *store.Store) *SQLite {
	return &SQLite{db: st.DB()}
}

func (s *SQLite) Append(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (timestamp, user_id, question, selected, correct, result, confidence, level)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Timestamp.Format(time.RFC3339Nano),
		rec.UserID,
		rec.Question,
		rec.Selected,
		rec.Correct,
		string(rec.Outcome),
		rec.Confidence,
		rec.Level,
	)
	if err != nil {
		return &StorageError{Op: "append", Err: err}
	}
	return nil
}

func (s *SQLite) All(ctx context.Context) ([]Record, error) {
	return s.query(ctx,
		`SELECT timestamp, user_id, question, selected, correct, result, confidence, level
		 FROM attempts ORDER BY id`)
}

func (s *SQLite) ByUser(ctx context.Context, userID string) ([]Record, error) {
	return s.query(ctx,
		`SELECT timestamp, user_id, question, selected, correct, result, confidence, level
		 FROM attempts WHERE user_id = ? ORDER BY id`, userID)
}

func (s *SQLite) query(ctx context.Context, q string, args ...any) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var ts, outcome string
		if err := rows.Scan(&ts, &rec.UserID, &rec.Question, &rec.Selected,
			&rec.Correct, &outcome, &rec.Confidence, &rec.Level); err != nil {
			return nil, &StorageError{Op: "scan", Err: err}
		}
		rec.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, &StorageError{Op: "scan", Err: fmt.Errorf("parse timestamp %q: %w", ts, err)}
		}
		rec.Outcome = Outcome(outcome)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}
	return out, nil
}
