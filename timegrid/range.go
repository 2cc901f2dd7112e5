package timegrid

import (
	"fmt"
	"time"
)

// BucketKey is the canonical identity of a grid column. Two times that fall in
// the same column at a given scale produce the same key.
type BucketKey string

// Bucket is one column of the grid: its ordinal position and the
// representative time at the start of the column.
type Bucket struct {
	Index int
	Time  time.Time
	Key   BucketKey
}

// KeyFor computes the bucket key for t at the given scale. Hour-family keys
// truncate the hour down to a multiple of the scale step, day keys drop the
// time of day, week keys combine ISO week-year and week number, month keys
// combine year and month.
func KeyFor(t time.Time, scale Scale) BucketKey {
	switch {
	case scale.IsHourFamily():
		step := scale.StepHours()
		h := t.Hour() - t.Hour()%step
		return BucketKey(fmt.Sprintf("%04d-%02d-%02dT%02d",
			t.Year(), int(t.Month()), t.Day(), h))
	case scale == ScaleDays:
		return BucketKey(t.Format("2006-01-02"))
	case scale == ScaleWeeks:
		return BucketKey(fmt.Sprintf("%04d-W%02d", WeekYear(t), WeekOfYear(t)))
	default:
		return BucketKey(t.Format("2006-01"))
	}
}

// GenerateRange builds the ordered column list covering [start, end] at the
// given scale. The list always holds at least one bucket and the final column
// contains end, so an interval ending exactly on end still has a column to
// land in.
func GenerateRange(start, end time.Time, scale Scale) []Bucket {
	var times []time.Time
	switch {
	case scale.IsHourFamily():
		times = hourRange(start, end, scale.StepHours())
	case scale == ScaleDays:
		times = dayRange(start, end)
	case scale == ScaleWeeks:
		times = weekRange(start, end)
	default:
		times = monthRange(start, end)
	}
	buckets := make([]Bucket, len(times))
	for i, t := range times {
		buckets[i] = Bucket{Index: i, Time: t, Key: KeyFor(t, scale)}
	}
	return buckets
}

func hourRange(start, end time.Time, step int) []time.Time {
	// Anchor on the step boundary at or before the start hour.
	base := start.Hour() - start.Hour()%step
	var times []time.Time
	for h := 0; ; h++ {
		t := time.Date(start.Year(), start.Month(), start.Day(),
			base+h*step, 0, 0, 0, start.Location())
		// Across a DST transition two successive wall clocks can normalize to
		// the same local hour. Collapse them into one column.
		if n := len(times); n > 0 && t.Hour() == times[n-1].Hour() &&
			DatesEqual(t, times[n-1]) {
			times[n-1] = t
		} else {
			times = append(times, t)
		}
		if !t.Before(end) {
			break
		}
	}
	return times
}

func dayRange(start, end time.Time) []time.Time {
	var times []time.Time
	for i := 0; ; i++ {
		t := time.Date(start.Year(), start.Month(), start.Day()+i,
			0, 0, 0, 0, start.Location())
		times = append(times, t)
		if !t.Before(end) {
			break
		}
	}
	return times
}

func weekRange(start, end time.Time) []time.Time {
	var times []time.Time
	cur := StartOfWeek(start)
	for {
		times = append(times, StartOfWeek(cur))
		cur = cur.AddDate(0, 0, 7)
		if cur.After(end) {
			break
		}
	}
	return times
}

func monthRange(start, end time.Time) []time.Time {
	var times []time.Time
	// Step from the first of the start month so the month holding end is never
	// skipped when end's day of month is earlier than start's.
	cur := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	for {
		times = append(times, cur)
		cur = cur.AddDate(0, 1, 0)
		if cur.After(end) {
			break
		}
	}
	return times
}
