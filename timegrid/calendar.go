package timegrid

import (
	"errors"
	"fmt"
	"time"
)

// Week numbering follows ISO 8601: weeks start on Monday and week one is the
// week containing January 4th.
const (
	firstDay    = 1
	weekOneDate = 4
)

// ErrInvalidRange is returned when a range operation gets a start date after
// its end date.
var ErrInvalidRange = errors.New("start date is after end date")

// DayOfYear returns the 1-based ordinal day within t's year.
func DayOfYear(t time.Time) int { return t.YearDay() }

// WeekOfYear returns the ISO week number of t. The date is shifted so that it
// lands in the same week as the reference day (January 4th rule), then the
// shifted ordinal day is divided into weeks.
func WeekOfYear(t time.Time) int {
	day := int(t.Weekday())
	diff := weekOneDate - day
	if day < firstDay {
		diff -= 7
	}
	if diff+7 < weekOneDate-firstDay {
		diff += 7
	}
	shifted := time.Date(t.Year(), t.Month(), t.Day()+diff, 0, 0, 0, 0, t.Location())
	return (shifted.YearDay() + 6) / 7
}

// WeekYear returns the year the ISO week of t belongs to. Late December dates
// in week 1 count towards the next year, early January dates in week 52/53
// towards the previous one.
func WeekYear(t time.Time) int {
	year := t.Year()
	week := WeekOfYear(t)
	switch {
	case t.Month() == time.December && week == 1:
		return year + 1
	case t.Month() == time.January && week > 51:
		return year - 1
	default:
		return year
	}
}

// StartOfWeek returns midnight of the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	day := int(t.Weekday())
	diff := firstDay - day
	if day < firstDay {
		diff -= 7
	}
	return time.Date(t.Year(), t.Month(), t.Day()+diff, 0, 0, 0, 0, t.Location())
}

func ceilUnits(a, b time.Time, unit time.Duration) int {
	if a.Equal(b) {
		return 0
	}
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int((d + unit - 1) / unit)
}

// DaysBetween counts 24h units between a and b, rounding partial days up.
// Identical instants count as zero; any nonzero difference counts at least one.
func DaysBetween(a, b time.Time) int { return ceilUnits(a, b, 24*time.Hour) }

// WeeksBetween counts 7-day units between a and b, rounding up.
func WeeksBetween(a, b time.Time) int { return ceilUnits(a, b, 7*24*time.Hour) }

// MonthsBetween counts nominal 30-day units between a and b, rounding up.
// This is a label-grade measure, not calendar arithmetic.
func MonthsBetween(a, b time.Time) int { return ceilUnits(a, b, 30*24*time.Hour) }

// AdjustDate moves t by amount units of the given scale. Hour-family scales
// shift by amount times the scale's step hours. Coarser scales use calendar
// arithmetic, so adding a month to January 31st normalizes the same way
// time.AddDate does.
func AdjustDate(t time.Time, amount int, scale Scale) time.Time {
	switch {
	case scale.IsHourFamily():
		return t.Add(time.Duration(amount*scale.StepHours()) * time.Hour)
	case scale == ScaleDays:
		return t.AddDate(0, 0, amount)
	case scale == ScaleWeeks:
		return t.AddDate(0, 0, 7*amount)
	case scale == ScaleMonths:
		return t.AddDate(0, amount, 0)
	default:
		return t
	}
}

// DatesEqual compares the calendar date of a and b, ignoring time of day.
func DatesEqual(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsHoliday reports whether t falls on any of the given holiday dates.
func IsHoliday(t time.Time, holidays []time.Time) bool {
	for _, h := range holidays {
		if DatesEqual(t, h) {
			return true
		}
	}
	return false
}

// CountWorkDays counts the days in [start, end] inclusive that are neither a
// Saturday, a Sunday, nor a holiday.
func CountWorkDays(start, end time.Time, holidays []time.Time) (int, error) {
	if start.After(end) {
		return 0, fmt.Errorf("count work days %s..%s: %w",
			start.Format("2006-01-02"), end.Format("2006-01-02"), ErrInvalidRange)
	}
	n := 0
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		if cur.Weekday() == time.Saturday || cur.Weekday() == time.Sunday {
			continue
		}
		if IsHoliday(cur, holidays) {
			continue
		}
		n++
	}
	return n, nil
}
