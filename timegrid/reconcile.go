package timegrid

import (
	"fmt"
	"math"
	"time"
)

// cellsForDelta converts a pixel delta from an edit gesture into whole
// columns, rounding to the nearest column so a drag just past the midpoint
// commits the next cell.
func cellsForDelta(deltaPx, cellSize int) int {
	return int(math.Round(float64(deltaPx) / float64(cellSize)))
}

// ReconcileResize applies a pixel delta from a right-edge resize to the
// interval's end date. A delta below half a cell is a no-op, as is resizing an
// interval with no end date. The input is not mutated.
func ReconcileResize(iv Interval, deltaPx int, scale Scale, cellSize int) Interval {
	cells := cellsForDelta(deltaPx, cellSize)
	if cells == 0 || iv.To == nil {
		return iv
	}
	to := AdjustDate(*iv.To, cells, scale)
	iv.To = &to
	return iv
}

// ReconcileMove applies a pixel delta from a whole-bar drag, shifting both
// endpoints by the same number of columns so the duration is preserved.
func ReconcileMove(iv Interval, deltaPx int, scale Scale, cellSize int) Interval {
	cells := cellsForDelta(deltaPx, cellSize)
	if cells == 0 {
		return iv
	}
	if iv.From != nil {
		from := AdjustDate(*iv.From, cells, scale)
		iv.From = &from
	}
	if iv.To != nil {
		to := AdjustDate(*iv.To, cells, scale)
		iv.To = &to
	}
	return iv
}

// displayStamp is a date rendered at the precision the scale can show. Edits
// finer than this precision are invisible and must not mark a bar modified.
func displayStamp(t time.Time, scale Scale) string {
	if scale == ScaleWeeks || scale == ScaleMonths {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15")
}

// Modified reports whether current differs from original when both are
// rendered at the scale's display precision. A nil on exactly one side counts
// as a change.
func Modified(original, current *time.Time, scale Scale) bool {
	if original == nil || current == nil {
		return (original == nil) != (current == nil)
	}
	return displayStamp(*original, scale) != displayStamp(*current, scale)
}

// ScaledDelta renders the distance between original and changed as a signed
// count of scale units for status lines. Hour-family scales report plain
// hours; months use the nominal 30-day unit.
func ScaledDelta(original, changed time.Time, scale Scale) string {
	d := changed.Sub(original)
	sign := "+"
	if d < 0 {
		sign = "-"
		d = -d
	}
	var n int64
	var unit string
	switch {
	case scale.IsHourFamily():
		n = int64(math.Round(float64(d) / float64(time.Hour)))
		unit = "hour"
	case scale == ScaleDays:
		n = int64(math.Round(float64(d) / float64(24*time.Hour)))
		unit = "day"
	case scale == ScaleWeeks:
		n = int64(math.Round(float64(d) / float64(7*24*time.Hour)))
		unit = "week"
	default:
		n = int64(math.Round(float64(d) / float64(30*24*time.Hour)))
		unit = "month"
	}
	if n != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%s%d %s", sign, n, unit)
}
