package timegrid

import (
	"fmt"
	"time"
)

// Scale is the time granularity of one grid column.
type Scale string

const (
	ScaleMonths      Scale = "months"
	ScaleWeeks       Scale = "weeks"
	ScaleDays        Scale = "days"
	ScaleHalfDays    Scale = "half days"
	ScaleEvery8Hours Scale = "every 8 hours"
	ScaleEvery6Hours Scale = "every 6 hours"
	ScaleEvery3Hours Scale = "every 3 hours"
	ScaleEveryHour   Scale = "every hour"
)

// Scales is ordered coarse to fine. Zooming in steps towards ScaleEveryHour,
// zooming out towards ScaleMonths. The hour family is the tail of the list and
// shares step-hour handling.
var Scales = []Scale{
	ScaleMonths,
	ScaleWeeks,
	ScaleDays,
	ScaleHalfDays,
	ScaleEvery8Hours,
	ScaleEvery6Hours,
	ScaleEvery3Hours,
	ScaleEveryHour,
}

var hourSteps = map[Scale]int{
	ScaleEveryHour:   1,
	ScaleEvery3Hours: 3,
	ScaleEvery6Hours: 6,
	ScaleEvery8Hours: 8,
	ScaleHalfDays:    12,
}

// ParseScale maps a configuration string onto a Scale. The legacy name
// "hours" is accepted as an alias for "every hour".
func ParseScale(s string) (Scale, error) {
	if s == "hours" {
		return ScaleEveryHour, nil
	}
	for _, sc := range Scales {
		if string(sc) == s {
			return sc, nil
		}
	}
	return "", fmt.Errorf("unknown scale %q", s)
}

func (s Scale) index() int {
	for i, sc := range Scales {
		if sc == s {
			return i
		}
	}
	return -1
}

func (s Scale) Valid() bool { return s.index() >= 0 }

// IsHourFamily reports whether s is one of the sub-day scales.
func (s Scale) IsHourFamily() bool {
	_, ok := hourSteps[s]
	return ok
}

// StepHours returns the number of hours one column advances for an
// hour-family scale, and 0 for everything coarser.
func (s Scale) StepHours() int { return hourSteps[s] }

// HeaderRowCount is the number of header rows the grid needs at this scale.
func (s Scale) HeaderRowCount() int {
	switch s {
	case ScaleMonths:
		return 2
	case ScaleWeeks:
		return 3
	case ScaleDays:
		return 4
	default:
		return 5
	}
}

// OneUnit is the nominal duration of a single column. Months use a fixed 30
// days, which is only good enough for human readable delta labels. Calendar
// placement must go through AdjustDate instead.
func (s Scale) OneUnit() time.Duration {
	switch {
	case s.IsHourFamily():
		return time.Duration(s.StepHours()) * time.Hour
	case s == ScaleDays:
		return 24 * time.Hour
	case s == ScaleWeeks:
		return 7 * 24 * time.Hour
	case s == ScaleMonths:
		return 30 * 24 * time.Hour
	default:
		return time.Hour
	}
}

// NextZoomScale returns the scale one step finer (zoomIn) or coarser from s.
// The second return is false at either end of the ordered list, in which case
// the caller must leave its state untouched.
func NextZoomScale(s Scale, zoomIn bool) (Scale, bool) {
	i := s.index()
	if i < 0 {
		return "", false
	}
	if zoomIn {
		i++
	} else {
		i--
	}
	if i < 0 || i >= len(Scales) {
		return "", false
	}
	return Scales[i], true
}

// ZoomTo applies NextZoomScale and clamps the result to the configured
// [maxScale, minScale] span, where maxScale is the coarsest scale allowed and
// minScale the finest. A step past either bound is a no-op and returns false.
func ZoomTo(cur Scale, zoomIn bool, minScale, maxScale Scale) (Scale, bool) {
	next, ok := NextZoomScale(cur, zoomIn)
	if !ok {
		return cur, false
	}
	if next.index() > minScale.index() || next.index() < maxScale.index() {
		return cur, false
	}
	return next, true
}
