package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adaptiq/adaptiq/internal/ledger"
)

func rec(outcome ledger.Outcome, confidence int) ledger.Record {
	return ledger.Record{
		UserID:     "alice",
		Question:   "q",
		Outcome:    outcome,
		Confidence: confidence,
		Level:      1,
	}
}

func TestCohortEmpty(t *testing.T) {
	m := Cohort(nil)
	assert.Equal(t, 0.0, m.MeanConfidence)
	assert.Equal(t, 0.0, m.AccuracyRate)
}

func TestCohortMetrics(t *testing.T) {
	tests := []struct {
		name           string
		records        []ledger.Record
		wantConfidence float64
		wantAccuracy   float64
	}{
		{
			name: "all correct",
			records: []ledger.Record{
				rec(ledger.OutcomeCorrect, 80),
				rec(ledger.OutcomeCorrect, 60),
			},
			wantConfidence: 70.0,
			wantAccuracy:   100.0,
		},
		{
			name: "two of three correct",
			records: []ledger.Record{
				rec(ledger.OutcomeCorrect, 50),
				rec(ledger.OutcomeCorrect, 50),
				rec(ledger.OutcomeIncorrect, 50),
			},
			wantConfidence: 50.0,
			wantAccuracy:   66.7, // rounded to one decimal
		},
		{
			name: "one of three correct rounds confidence",
			records: []ledger.Record{
				rec(ledger.OutcomeCorrect, 10),
				rec(ledger.OutcomeIncorrect, 20),
				rec(ledger.OutcomeIncorrect, 30),
			},
			wantConfidence: 20.0,
			wantAccuracy:   33.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Cohort(tt.records)
			assert.InDelta(t, tt.wantConfidence, m.MeanConfidence, 0.001)
			assert.InDelta(t, tt.wantAccuracy, m.AccuracyRate, 0.001)
		})
	}
}

func TestSessionProgress(t *testing.T) {
	p := SessionProgress(3, 5)
	assert.Equal(t, 3, p.Score)
	assert.Equal(t, 5, p.Attempted)
}

func TestSummary(t *testing.T) {
	s := NewSummary("alice", 2, 3)
	assert.Equal(t, "alice", s.UserID)
	assert.Equal(t, 2, s.Score)
	assert.Equal(t, 3, s.Attempts)
	assert.InDelta(t, 66.7, s.AccuracyPct, 0.001)
}

func TestSummaryNoAttempts(t *testing.T) {
	s := NewSummary("bob", 0, 0)
	assert.Equal(t, 0.0, s.AccuracyPct)
}
