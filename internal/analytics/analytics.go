// Package analytics derives read-only metrics from session state and
// ledger snapshots. Computation is full-precision; rounding to one decimal
// happens only on the returned display values.
package analytics

import (
	"math"

	"github.com/adaptiq/adaptiq/internal/ledger"
)

// Progress is the per-session score projection shown to the learner.
type Progress struct {
	Score     int
	Attempted int
}

// SessionProgress projects a session's counters. Pure; no I/O.
func SessionProgress(score, attempted int) Progress {
	return Progress{Score: score, Attempted: attempted}
}

// CohortMetrics are instructor-facing aggregates over a ledger snapshot.
type CohortMetrics struct {
	MeanConfidence float64
	AccuracyRate   float64
}

// Cohort computes aggregates over the given records. Both metrics are 0.0
// for an empty snapshot rather than NaN.
func Cohort(records []ledger.Record) CohortMetrics {
	if len(records) == 0 {
		return CohortMetrics{}
	}

	confidenceSum := 0
	correct := 0
	for _, rec := range records {
		confidenceSum += rec.Confidence
		if rec.Outcome == ledger.OutcomeCorrect {
			correct++
		}
	}

	total := float64(len(records))
	return CohortMetrics{
		MeanConfidence: round1(float64(confidenceSum) / total),
		AccuracyRate:   round1(100 * float64(correct) / total),
	}
}

// Summary is the grade-sync payload consumed by the LMS integration.
type Summary struct {
	UserID      string
	Score       int
	Attempts    int
	AccuracyPct float64
}

// NewSummary builds the grade-sync tuple for a user. AccuracyPct is 0.0
// when the user has no attempts.
func NewSummary(userID string, score, attempts int) Summary {
	s := Summary{UserID: userID, Score: score, Attempts: attempts}
	if attempts > 0 {
		s.AccuracyPct = round1(100 * float64(score) / float64(attempts))
	}
	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
