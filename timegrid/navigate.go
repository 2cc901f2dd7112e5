package timegrid

// NavTarget is one of the four relative navigation jumps. The "week" jumps are
// the large ones, the "day" jumps the small ones; at coarse scales the names
// are historical and the table below decides the real distance.
type NavTarget int

const (
	NavPrevWeek NavTarget = iota
	NavNextWeek
	NavPrevDay
	NavNextDay
)

// Cells moved per jump, per scale family. Positive values scroll towards
// earlier dates.
var navCells = map[NavTarget][4]int{
	// hours, days, weeks, months
	NavPrevWeek: {8, 30, 12, 6},
	NavNextWeek: {-8, -30, -12, -6},
	NavPrevDay:  {4, 7, 4, 3},
	NavNextDay:  {-4, -7, -4, -3},
}

// NavStep returns the pixel distance of a navigation jump at the given scale.
func NavStep(target NavTarget, scale Scale, cellSize int) int {
	cells, ok := navCells[target]
	if !ok {
		return 0
	}
	var i int
	switch {
	case scale.IsHourFamily():
		i = 0
	case scale == ScaleDays:
		i = 1
	case scale == ScaleWeeks:
		i = 2
	default:
		i = 3
	}
	return cells[i] * cellSize
}

// MaxScrollRange is the most negative left margin the data panel can take:
// viewport width minus grid width. Zero or wider viewports cannot scroll and
// the range collapses to zero.
func MaxScrollRange(viewportWidth, gridWidth int) int {
	r := viewportWidth - gridWidth
	if r > 0 {
		return 0
	}
	return r
}

// ClampPercent bounds a scroll position to [0, 100].
func ClampPercent(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ScrollPos converts a scroll percentage into the data panel's left margin.
// 0% is the grid start (margin 0), 100% the far end (margin maxRange).
func ScrollPos(maxRange int, pct float64) int {
	return int(float64(maxRange) * ClampPercent(pct) / 100)
}

// ScrollBy shifts the current margin by deltaPx and re-expresses it as a
// percentage. With no scrollable range the position stays at 0%.
func ScrollBy(maxRange int, pct float64, deltaPx int) float64 {
	if maxRange >= 0 {
		return 0
	}
	pos := ScrollPos(maxRange, pct) + deltaPx
	return ClampPercent(float64(pos) * 100 / float64(maxRange))
}

// PercentForOffset is the scroll percentage that puts the column at offsetPx
// against the left edge of the viewport, clamped to the scrollable range. It
// reports false when the grid fits the viewport and scrolling is disabled.
func PercentForOffset(offsetPx, maxRange int) (float64, bool) {
	if maxRange >= 0 {
		return 0, false
	}
	val := -offsetPx
	if val > 0 {
		val = 0
	} else if val < maxRange {
		val = maxRange
	}
	return float64(val) * 100 / float64(maxRange), true
}
