package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateOr(t *testing.T) {
	fallback := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	got := parseDateOr("2026-01-15", fallback)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), got)

	assert.Equal(t, fallback, parseDateOr("", fallback))
	assert.Equal(t, fallback, parseDateOr("  ", fallback))
	assert.Equal(t, fallback, parseDateOr("15/01/2026", fallback))
	assert.Equal(t, fallback, parseDateOr("not-a-date", fallback))
}

func TestTodayIsMidnightUTC(t *testing.T) {
	today := Today()
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, 0, today.Second())
	assert.Equal(t, time.UTC, today.Location())
}
