package texts

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestTexts_SnippetsPresent(t *testing.T) {
	txt := NewTexts()
	for _, id := range []string{
		ReportHeader, ReportFollowedBack, ReportUnfollowed, ReportStarred, ReportFarmed, CleanupUnfollowed,
	} {
		assert.NotEmpty(t, txt.Get(id), id)
	}
	assert.Equal(t, "", txt.Get("no_such_snippet.html"))
}

func TestTexts_WithVals(t *testing.T) {
	txt := NewTexts()
	assert.Equal(t, "🗑️ <b>Cleanup:</b> Unfollowed 2 users",
		txt.WithVals(CleanupUnfollowed, map[string]string{"count": "2"}))
	assert.Equal(t, "🌾 <b>Farmed</b> (&lt;5&gt;)",
		txt.WithVals(ReportFarmed, map[string]string{"count": "<5>"}))
}
