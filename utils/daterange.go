package utils

import "time"

// DateRange is an inclusive [Start, End] window in UTC used by the admin
// aggregation queries.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ResolveDateRange maps a named preset or an explicit startDate/endDate pair
// to a concrete range. Presets win over explicit dates when both are present.
func ResolveDateRange(period, startDate, endDate string) DateRange {
	return resolveDateRange(period, startDate, endDate, time.Now().UTC())
}

func resolveDateRange(period, startDate, endDate string, now time.Time) DateRange {
	now = now.UTC()

	switch period {
	case "today":
		return calendarDay(now)
	case "yesterday":
		return calendarDay(now.AddDate(0, 0, -1))
	case "last7":
		// Exactly 7x24h before time-of-call, not midnight-aligned.
		return DateRange{Start: now.Add(-7 * 24 * time.Hour), End: now}
	case "thisMonth":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return DateRange{Start: start, End: now}
	case "allTime":
		return DateRange{Start: time.Unix(0, 0).UTC(), End: now}
	}

	if startDate != "" && endDate != "" {
		start, okStart := parseDate(startDate)
		end, okEnd := parseDate(endDate)
		if okStart && okEnd {
			return DateRange{Start: start, End: end}
		}
	}

	// Unknown preset or unusable dates: fall back to today-so-far.
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: now}
}

// calendarDay returns the full UTC calendar day containing t. The end sits a
// millisecond before midnight so inclusive comparisons exclude the next day.
func calendarDay(t time.Time) DateRange {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.Add(24*time.Hour - time.Millisecond)}
}

func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
