package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clockAt(hhmm string) time.Time {
	tm, _ := time.Parse("15:04", hhmm)
	return time.Date(2025, 3, 10, tm.Hour(), tm.Minute(), 30, 0, time.UTC)
}

func TestMatchesClock(t *testing.T) {
	assert.True(t, matchesClock("07:30", clockAt("07:30")))
	assert.True(t, matchesClock(" 07:30 ", clockAt("07:30")))
	assert.False(t, matchesClock("07:30", clockAt("07:31")))
	assert.False(t, matchesClock("", clockAt("07:30")))
}

func TestMatchesAnyClock(t *testing.T) {
	assert.True(t, matchesAnyClock("08:00,12:30,19:00", clockAt("12:30")))
	assert.False(t, matchesAnyClock("08:00,12:30,19:00", clockAt("13:00")))
	assert.False(t, matchesAnyClock("", clockAt("13:00")))
}

func TestMatchesWeekday(t *testing.T) {
	assert.True(t, matchesWeekday("1,3,5", time.Monday))
	assert.True(t, matchesWeekday("1, 3, 5", time.Friday))
	assert.False(t, matchesWeekday("1,3,5", time.Sunday))

	// empty list means every day
	assert.True(t, matchesWeekday("", time.Saturday))
	assert.True(t, matchesWeekday("  ", time.Wednesday))

	// garbage entries are skipped, not fatal
	assert.True(t, matchesWeekday("x,2", time.Tuesday))
	assert.False(t, matchesWeekday("x,y", time.Tuesday))
}
