package timezone_test

import (
	"testing"
	"time"

	"cowork/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	assert.Equal(t, time.UTC, today.Location())
	assert.Zero(t, today.Hour())
	assert.Zero(t, today.Minute())
	assert.Zero(t, today.Second())
	assert.Zero(t, today.Nanosecond())
}

func TestDate(t *testing.T) {
	instant := time.Date(2024, 3, 15, 18, 45, 10, 0, timezone.GetLocation())

	got := timezone.Date(instant)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, timezone.GetLocation(), parsed.Location())
	assert.Equal(t, "2024-01-01", timezone.Format(parsed, "2006-01-02"))

	_, err = timezone.Parse("2006-01-02", "not-a-date")
	assert.Error(t, err)
}
