package timegrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekOfYear(t *testing.T) {
	cases := []struct {
		in   time.Time
		week int
	}{
		{date(2024, time.January, 4), 1},
		{date(2024, time.January, 1), 1},  // Monday starts week 1
		{date(2023, time.January, 1), 52}, // Sunday belongs to the old year's last week
		{date(2021, time.January, 1), 53},
		{date(2024, time.December, 30), 1}, // Monday of the first week of 2025
		{date(2024, time.July, 15), 29},
	}
	for _, c := range cases {
		assert.Equal(t, c.week, WeekOfYear(c.in), "week of %s", c.in.Format("2006-01-02"))
	}
}

func TestWeekYearBoundaries(t *testing.T) {
	assert.Equal(t, 2025, WeekYear(date(2024, time.December, 30)))
	assert.Equal(t, 2022, WeekYear(date(2023, time.January, 1)))
	assert.Equal(t, 2024, WeekYear(date(2024, time.July, 15)))
}

func TestStartOfWeek(t *testing.T) {
	monday := date(2024, time.January, 1)
	assert.Equal(t, monday, StartOfWeek(date(2024, time.January, 3)))
	assert.Equal(t, monday, StartOfWeek(date(2024, time.January, 7))) // Sunday closes the week
	assert.Equal(t, monday, StartOfWeek(monday))
}

func TestBetweenCounts(t *testing.T) {
	a := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysBetween(a, a))
	assert.Equal(t, 1, DaysBetween(a, a.Add(time.Hour)))
	assert.Equal(t, 1, DaysBetween(a, a.Add(24*time.Hour)))
	assert.Equal(t, 2, DaysBetween(a, a.Add(25*time.Hour)))
	assert.Equal(t, 2, DaysBetween(a.Add(25*time.Hour), a)) // symmetric

	assert.Equal(t, 1, WeeksBetween(a, a.AddDate(0, 0, 3)))
	assert.Equal(t, 1, MonthsBetween(a, a.AddDate(0, 0, 30)))
	assert.Equal(t, 2, MonthsBetween(a, a.AddDate(0, 0, 31)))
}

func TestAdjustDate(t *testing.T) {
	base := time.Date(2024, time.January, 31, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, base.AddDate(0, 0, 3), AdjustDate(base, 3, ScaleDays))
	assert.Equal(t, base.AddDate(0, 0, -14), AdjustDate(base, -2, ScaleWeeks))
	// Calendar month arithmetic normalizes, it never adds 30-day blocks.
	assert.Equal(t, time.Date(2024, time.March, 2, 8, 0, 0, 0, time.UTC), AdjustDate(base, 1, ScaleMonths))
	assert.Equal(t, base.Add(24*time.Hour), AdjustDate(base, 2, ScaleHalfDays))
	assert.Equal(t, base.Add(-6*time.Hour), AdjustDate(base, -2, ScaleEvery3Hours))
}

func TestDatesEqual(t *testing.T) {
	assert.True(t, DatesEqual(
		time.Date(2024, time.May, 5, 1, 0, 0, 0, time.UTC),
		time.Date(2024, time.May, 5, 23, 59, 0, 0, time.UTC),
	))
	assert.False(t, DatesEqual(date(2024, time.May, 5), date(2024, time.May, 6)))
}

func TestCountWorkDays(t *testing.T) {
	mon := date(2024, time.January, 29)
	fri := date(2024, time.February, 2)

	n, err := CountWorkDays(mon, fri, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = CountWorkDays(mon, fri, []time.Time{date(2024, time.January, 31)})
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	// Full week including the weekend still counts five.
	n, err = CountWorkDays(mon, date(2024, time.February, 4), nil)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = CountWorkDays(date(2024, time.February, 3), date(2024, time.February, 3), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "a lone Saturday has no work days")

	_, err = CountWorkDays(fri, mon, nil)
	require.ErrorIs(t, err, ErrInvalidRange)
}
