// Package gradesync encodes a session summary into the LMS submission URL.
// Encoding only: actually delivering the grade is the LMS integration's
// job, not ours.
package gradesync

import (
	"net/url"
	"strconv"
)

// DefaultEndpoint is the LTI submission endpoint used when none is
// configured.
const DefaultEndpoint = "https://lms.example.com/lti/submit"

// Payload is the grade tuple an LMS consumes.
type Payload struct {
	UserID      string
	Score       int
	Total       int
	AccuracyPct float64
}

// BuildURL returns endpoint with the payload query-string encoded. An
// empty endpoint falls back to DefaultEndpoint.
func BuildURL(endpoint string, p Payload) (string, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("user", p.UserID)
	q.Set("score", strconv.Itoa(p.Score))
	q.Set("total", strconv.Itoa(p.Total))
	q.Set("correct_pct", strconv.FormatFloat(p.AccuracyPct, 'f', -1, 64))
	u.RawQuery = q.Encode()

	return u.String(), nil
}
