package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)

func inRange(r DateRange, t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

func TestTodayPresetCoversFullCalendarDay(t *testing.T) {
	r := resolveDateRange("today", "", "", testNow)

	assert.Equal(t, time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC), r.Start)

	justAfterMidnight := time.Date(2026, time.March, 14, 0, 0, 0, int(time.Millisecond), time.UTC)
	justBeforeMidnight := time.Date(2026, time.March, 14, 23, 59, 59, int(998*time.Millisecond), time.UTC)
	nextDay := time.Date(2026, time.March, 15, 0, 0, 0, int(time.Millisecond), time.UTC)

	assert.True(t, inRange(r, justAfterMidnight))
	assert.True(t, inRange(r, justBeforeMidnight))
	assert.False(t, inRange(r, nextDay))
}

func TestYesterdayPreset(t *testing.T) {
	r := resolveDateRange("yesterday", "", "", testNow)

	assert.Equal(t, time.Date(2026, time.March, 13, 0, 0, 0, 0, time.UTC), r.Start)
	assert.True(t, inRange(r, time.Date(2026, time.March, 13, 12, 0, 0, 0, time.UTC)))
	assert.False(t, inRange(r, time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)))
}

func TestLast7PresetIsNotMidnightAligned(t *testing.T) {
	r := resolveDateRange("last7", "", "", testNow)

	assert.Equal(t, testNow.Add(-7*24*time.Hour), r.Start)
	assert.Equal(t, testNow, r.End)
}

func TestThisMonthPreset(t *testing.T) {
	r := resolveDateRange("thisMonth", "", "", testNow)

	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, testNow, r.End)
}

func TestAllTimePreset(t *testing.T) {
	r := resolveDateRange("allTime", "", "", testNow)

	assert.Equal(t, time.Unix(0, 0).UTC(), r.Start)
	assert.Equal(t, testNow, r.End)
}

func TestExplicitDates(t *testing.T) {
	r := resolveDateRange("", "2026-01-10", "2026-02-20", testNow)

	assert.Equal(t, time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC), r.End)
}

func TestExplicitRFC3339Dates(t *testing.T) {
	r := resolveDateRange("", "2026-01-10T08:30:00Z", "2026-01-10T17:45:00Z", testNow)

	assert.Equal(t, time.Date(2026, time.January, 10, 8, 30, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2026, time.January, 10, 17, 45, 0, 0, time.UTC), r.End)
}

func TestUnknownPresetFallsBackToTodaySoFar(t *testing.T) {
	r := resolveDateRange("fortnight", "", "", testNow)

	assert.Equal(t, time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, testNow, r.End)
}
