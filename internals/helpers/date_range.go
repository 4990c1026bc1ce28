package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const DateOnly = "2006-01-02"

// ParseDateRange reads ?start_date= and ?end_date= (YYYY-MM-DD) with
// fallbacks: end defaults to today, start defaults to end minus defaultDays.
// An inverted range resets start to defaultDays before end.
func ParseDateRange(c *fiber.Ctx, defaultDays int) (start, end time.Time) {
	today := Today()
	end = parseDateOr(c.Query("end_date"), today)
	start = parseDateOr(c.Query("start_date"), end.AddDate(0, 0, -defaultDays))

	if start.After(end) {
		start = end.AddDate(0, 0, -defaultDays)
	}
	return start, end
}

// ParseDateOrToday reads a single ?date= value, falling back to today.
func ParseDateOrToday(c *fiber.Ctx) time.Time {
	return parseDateOr(c.Query("date"), Today())
}

// Today returns the current date truncated to midnight UTC. Attendance and
// report dates are calendar dates, not instants.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDateOr(raw string, fallback time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	d, err := time.Parse(DateOnly, raw)
	if err != nil {
		return fallback
	}
	return d
}
