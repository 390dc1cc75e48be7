// Package session owns the per-learner controllers. Session state is
// explicit and keyed by user id; nothing lives in package-level globals.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/adaptiq/adaptiq/internal/adaptive"
	"github.com/adaptiq/adaptiq/internal/analytics"
	"github.com/adaptiq/adaptiq/internal/bank"
	"github.com/adaptiq/adaptiq/internal/ledger"
)

// ErrEmptyUserID rejects session creation without a learner identifier.
// The id is opaque; non-empty is the only requirement.
var ErrEmptyUserID = errors.New("user id must not be empty")

// Session is one learner's interactive flow. Driven by a single actor;
// not safe for concurrent use. Independent sessions may run in parallel
// because the ledger serializes appends.
type Session struct {
	ID         string
	UserID     string
	controller *adaptive.Controller
	ledger     ledger.Ledger
}

// NextQuestion picks a question at the session's current level.
func (s *Session) NextQuestion() bank.Question {
	return s.controller.NextQuestion()
}

// Submit grades the answer and durably appends the attempt record before
// the next question can be served. When the append fails after retries the
// controller is rolled back, so a lost write never advances the session —
// the caller is signaled and may retry the whole submission.
func (s *Session) Submit(ctx context.Context, q bank.Question, selected string, confidence int) (ledger.Record, error) {
	before := s.controller.State()

	rec, err := s.controller.Submit(s.UserID, q, selected, confidence)
	if err != nil {
		return ledger.Record{}, err
	}

	if err := s.ledger.Append(ctx, rec); err != nil {
		s.controller.Restore(before)
		return ledger.Record{}, fmt.Errorf("record attempt: %w", err)
	}

	return rec, nil
}

// Level returns the current difficulty level.
func (s *Session) Level() int { return s.controller.Level() }

// Progress returns the session's score projection.
func (s *Session) Progress() analytics.Progress {
	return analytics.SessionProgress(s.controller.Score(), s.controller.Attempts())
}

// Summary returns the grade-sync tuple for this session.
func (s *Session) Summary() analytics.Summary {
	return analytics.NewSummary(s.UserID, s.controller.Score(), s.controller.Attempts())
}

// Manager hands out one Session per user id, creating controllers on first
// use. Safe for concurrent use by independent learners.
type Manager struct {
	bank   *bank.Bank
	ledger ledger.Ledger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a Manager serving sessions from the given bank and
// recording attempts to the given ledger.
func NewManager(b *bank.Bank, l ledger.Ledger) *Manager {
	return &Manager{
		bank:     b,
		ledger:   l,
		sessions: make(map[string]*Session),
	}
}

// Session returns the user's session, creating it on first use.
func (m *Manager) Session(userID string) (*Session, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[userID]; ok {
		return s, nil
	}

	s := &Session{
		ID:         uuid.NewString(),
		UserID:     userID,
		controller: adaptive.NewController(m.bank),
		ledger:     m.ledger,
	}
	m.sessions[userID] = s
	return s, nil
}

// End discards the user's session state. Ledger records already written
// are unaffected.
func (m *Manager) End(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
