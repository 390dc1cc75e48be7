package gradesync

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildURL(t *testing.T) {
	got, err := BuildURL("", Payload{
		UserID:      "alice smith",
		Score:       2,
		Total:       3,
		AccuracyPct: 66.7,
	})
	require.NoError(t, err)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "lms.example.com", u.Host)
	assert.Equal(t, "/lti/submit", u.Path)

	q := u.Query()
	assert.Equal(t, "alice smith", q.Get("user"))
	assert.Equal(t, "2", q.Get("score"))
	assert.Equal(t, "3", q.Get("total"))
	assert.Equal(t, "66.7", q.Get("correct_pct"))
}

func TestBuildURLCustomEndpoint(t *testing.T) {
	got, err := BuildURL("https://school.example.org/grades", Payload{UserID: "bob"})
	require.NoError(t, err)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "school.example.org", u.Host)
	assert.Equal(t, "0", u.Query().Get("score"))
}
