package timegrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRangeDays(t *testing.T) {
	buckets := GenerateRange(date(2024, time.January, 29), date(2024, time.February, 3), ScaleDays)
	require.Len(t, buckets, 6)
	assert.Equal(t, date(2024, time.January, 29), buckets[0].Time)
	assert.Equal(t, date(2024, time.February, 3), buckets[5].Time)

	seen := map[BucketKey]bool{}
	for i, b := range buckets {
		assert.Equal(t, i, b.Index)
		assert.False(t, seen[b.Key], "duplicate key %s", b.Key)
		seen[b.Key] = true
		if i > 0 {
			assert.True(t, b.Time.After(buckets[i-1].Time))
		}
	}
}

func TestGenerateRangeDaysSingle(t *testing.T) {
	d := date(2024, time.June, 1)
	buckets := GenerateRange(d, d, ScaleDays)
	require.Len(t, buckets, 1)
	assert.Equal(t, d, buckets[0].Time)
}

func TestGenerateRangeHours(t *testing.T) {
	start := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.May, 1, 20, 0, 0, 0, time.UTC)
	buckets := GenerateRange(start, end, ScaleEvery3Hours)

	// The first column snaps down to the step boundary below the start hour.
	require.NotEmpty(t, buckets)
	assert.Equal(t, 9, buckets[0].Time.Hour())
	last := buckets[len(buckets)-1].Time
	assert.False(t, last.Before(end), "final column reaches the end")
	for i := 1; i < len(buckets); i++ {
		assert.Equal(t, 3*time.Hour, buckets[i].Time.Sub(buckets[i-1].Time))
	}
}

func TestGenerateRangeWeeks(t *testing.T) {
	buckets := GenerateRange(date(2024, time.December, 20), date(2025, time.January, 15), ScaleWeeks)
	require.Len(t, buckets, 5)
	assert.Equal(t, date(2024, time.December, 16), buckets[0].Time, "snaps to Monday")
	assert.Equal(t, date(2025, time.January, 13), buckets[4].Time)
	for _, b := range buckets {
		assert.Equal(t, time.Monday, b.Time.Weekday())
	}
}

func TestGenerateRangeMonths(t *testing.T) {
	buckets := GenerateRange(date(2023, time.November, 15), date(2024, time.February, 10), ScaleMonths)
	require.Len(t, buckets, 4)
	assert.Equal(t, date(2023, time.November, 1), buckets[0].Time)
	assert.Equal(t, date(2024, time.February, 1), buckets[3].Time)
}

func TestGenerateRangeMonthsEndOfMonthStart(t *testing.T) {
	// Stepping whole months from Jan 31 would normalize past February; the
	// walk anchors on the first of each month instead.
	buckets := GenerateRange(date(2024, time.January, 31), date(2024, time.March, 5), ScaleMonths)
	require.Len(t, buckets, 3)
	assert.Equal(t, BucketKey("2024-02"), buckets[1].Key)
	assert.Equal(t, date(2024, time.March, 1), buckets[2].Time)
}

func TestGenerateRangeHoursSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	start := time.Date(2024, time.March, 10, 0, 0, 0, 0, loc)
	end := time.Date(2024, time.March, 10, 6, 0, 0, 0, loc)
	buckets := GenerateRange(start, end, ScaleEveryHour)

	var hours []int
	seen := map[BucketKey]bool{}
	for i, b := range buckets {
		hours = append(hours, b.Time.Hour())
		require.False(t, seen[b.Key], "duplicate key %s", b.Key)
		seen[b.Key] = true
		if i > 0 {
			assert.True(t, b.Time.After(buckets[i-1].Time))
		}
	}
	// 2am does not exist on this date; the skipped hour collapses into one
	// column instead of doubling.
	assert.Equal(t, []int{0, 1, 3, 4, 5, 6}, hours)
}

func TestGenerateRangeHoursFallBack(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	start := time.Date(2024, time.November, 3, 0, 0, 0, 0, loc)
	end := time.Date(2024, time.November, 3, 4, 0, 0, 0, loc)
	buckets := GenerateRange(start, end, ScaleEveryHour)

	seen := map[BucketKey]bool{}
	for i, b := range buckets {
		require.False(t, seen[b.Key], "duplicate key %s", b.Key)
		seen[b.Key] = true
		if i > 0 {
			assert.True(t, b.Time.After(buckets[i-1].Time),
				"columns strictly increase across the repeated local hour")
		}
	}
	assert.Equal(t, 4, buckets[len(buckets)-1].Time.Hour())
}

func TestKeyFor(t *testing.T) {
	ts := time.Date(2024, time.March, 7, 14, 45, 0, 0, time.UTC)

	assert.Equal(t, BucketKey("2024-03-07"), KeyFor(ts, ScaleDays))
	assert.Equal(t, BucketKey("2024-03"), KeyFor(ts, ScaleMonths))
	assert.Equal(t, BucketKey("2024-03-07T12"), KeyFor(ts, ScaleEvery6Hours))
	assert.Equal(t, BucketKey("2024-W10"), KeyFor(ts, ScaleWeeks))

	// Two times in the same column share a key.
	other := time.Date(2024, time.March, 7, 17, 0, 0, 0, time.UTC)
	assert.Equal(t, KeyFor(ts, ScaleEvery6Hours), KeyFor(other, ScaleEvery6Hours))

	// Late December belongs to the next ISO week-year.
	assert.Equal(t, BucketKey("2025-W01"), KeyFor(date(2024, time.December, 30), ScaleWeeks))
}
