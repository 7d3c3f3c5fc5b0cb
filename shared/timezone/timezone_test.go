package timezone_test

import (
	"testing"
	"time"
	"trimly/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestToAppTime(t *testing.T) {
	utcTime := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	appTime := timezone.ToAppTime(utcTime)

	assert.Equal(t, timezone.GetLocation(), appTime.Location())
	assert.True(t, appTime.Equal(utcTime))
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02 15:04", "2026-03-14 09:30")
	require.NoError(t, err)

	assert.Equal(t, timezone.GetLocation(), parsed.Location())
	assert.Equal(t, "2026-03-14 09:30", timezone.Format(parsed, "2006-01-02 15:04"))
}
