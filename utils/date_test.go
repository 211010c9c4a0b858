package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayIndex(t *testing.T) {
	// January 5th 2026 is a Monday.
	monday := time.Date(2026, time.January, 5, 12, 0, 0, 0, time.Local)
	for offset := 0; offset < 7; offset++ {
		assert.Equal(t, offset, WeekdayIndex(monday.AddDate(0, 0, offset)))
	}
}

func TestFormatLocalISODate(t *testing.T) {
	// Late evening must keep the local calendar date even when the
	// UTC date has already rolled over.
	evening := time.Date(2026, time.January, 7, 23, 30, 0, 0, time.Local)
	assert.Equal(t, "2026-01-07", FormatLocalISODate(evening))
}

func TestStartOfLocalDay(t *testing.T) {
	moment := time.Date(2026, time.January, 7, 18, 45, 12, 999, time.Local)
	start := StartOfLocalDay(moment)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, moment.Day(), start.Day())
}

func TestParseTimestamp(t *testing.T) {
	t.Run("round trips RFC3339", func(t *testing.T) {
		moment := time.Date(2026, time.January, 7, 9, 0, 0, 0, time.Local)
		parsed := ParseTimestamp(moment.Format(time.RFC3339))
		assert.True(t, parsed.Equal(moment))
	})

	t.Run("empty and malformed values yield the zero time", func(t *testing.T) {
		assert.True(t, ParseTimestamp("").IsZero())
		assert.True(t, ParseTimestamp("07.01.2026").IsZero())
	})
}
