package timegrid

import "time"

// padUnits is the breathing room added on each side of the data extent, in
// scale units, so bars never start flush against the grid edge.
const padUnits = 5

// ViewWindow is the immutable description of what the grid currently shows.
// Changing scale or extent means computing a new window, never editing one in
// place.
type ViewWindow struct {
	Start    time.Time
	End      time.Time
	Scale    Scale
	CellSize int
}

// truncateToGrain floors t to the start of its column at the given scale.
func truncateToGrain(t time.Time, scale Scale) time.Time {
	switch {
	case scale.IsHourFamily():
		step := scale.StepHours()
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour()-t.Hour()%step, 0, 0, 0, t.Location())
	case scale == ScaleMonths:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
}

// ComputeView derives the window from the data extent: the earliest and
// latest endpoint across all intervals, truncated to the scale grain and
// padded by padUnits on both sides. With no dated intervals at all the window
// centers on now.
func ComputeView(intervals []Interval, scale Scale, cellSize int, now time.Time) ViewWindow {
	var min, max time.Time
	seen := false
	consider := func(t *time.Time) {
		if t == nil {
			return
		}
		if !seen {
			min, max = *t, *t
			seen = true
			return
		}
		if t.Before(min) {
			min = *t
		}
		if t.After(max) {
			max = *t
		}
	}
	for _, iv := range intervals {
		consider(iv.From)
		consider(iv.To)
	}
	if !seen {
		min, max = now, now
	}

	start := AdjustDate(truncateToGrain(min, scale), -padUnits, scale)
	end := AdjustDate(truncateToGrain(max, scale), padUnits, scale)
	return ViewWindow{Start: start, End: end, Scale: scale, CellSize: cellSize}
}

// Buckets generates the column list covering the window.
func (w ViewWindow) Buckets() []Bucket {
	return GenerateRange(w.Start, w.End, w.Scale)
}

// Grid builds the position mapper for the window.
func (w ViewWindow) Grid() *Grid {
	return NewGrid(w.Buckets(), w.Scale, w.CellSize)
}
