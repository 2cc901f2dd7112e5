package main

import (
	"time"

	"ganttgrid/source"
	"ganttgrid/timegrid"
)

// dataState is everything derived from the loaded page: the rows, the grid
// built over their date extent, and the pre-session bar values used to flag
// edits.
type dataState struct {
	rows         []source.Row
	page         int
	pageCount    int
	itemsPerPage int
	totalItems   int

	holidays []time.Time

	// originals holds each row's bar values as they were when the page was
	// first loaded, keyed by row id. Edits are compared against these.
	originals map[int64][]timegrid.Interval

	window timegrid.ViewWindow
	grid   *timegrid.Grid
	bands  [][]timegrid.Band
}

func (d *dataState) captureOriginals() {
	d.originals = make(map[int64][]timegrid.Interval, len(d.rows))
	for _, r := range d.rows {
		ivs := make([]timegrid.Interval, len(r.Values))
		for i, v := range r.Values {
			ivs[i] = v.Interval()
		}
		d.originals[r.ID] = ivs
	}
}

// original returns the pre-session value of one bar, if the row and bar
// existed at page load.
func (d *dataState) original(rowID int64, bar int) (timegrid.Interval, bool) {
	ivs, ok := d.originals[rowID]
	if !ok || bar < 0 || bar >= len(ivs) {
		return timegrid.Interval{}, false
	}
	return ivs[bar], true
}

// barModified reports whether a bar's endpoints differ from their pre-session
// values at the current scale's display precision.
func (d *dataState) barModified(rowID int64, bar int, cur timegrid.Interval) bool {
	orig, ok := d.original(rowID, bar)
	if !ok {
		return false
	}
	return timegrid.Modified(orig.From, cur.From, d.window.Scale) ||
		timegrid.Modified(orig.To, cur.To, d.window.Scale)
}

// rowIDs is the current visual order of the page, which is what gets saved.
func (d *dataState) rowIDs() []int64 {
	ids := make([]int64, len(d.rows))
	for i, r := range d.rows {
		ids[i] = r.ID
	}
	return ids
}

// applyRowOrder reorders rows to match the saved id order. Ids that no longer
// exist are ignored, rows without a saved position keep their relative order
// at the end.
func (d *dataState) applyRowOrder(ids []int64) {
	if len(ids) == 0 {
		return
	}
	pos := make(map[int64]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	ordered := make([]source.Row, 0, len(d.rows))
	var rest []source.Row
	for _, r := range d.rows {
		if _, ok := pos[r.ID]; ok {
			ordered = append(ordered, r)
		} else {
			rest = append(rest, r)
		}
	}
	// Selection sort by saved position; pages are small.
	for i := 0; i < len(ordered); i++ {
		best := i
		for j := i + 1; j < len(ordered); j++ {
			if pos[ordered[j].ID] < pos[ordered[best].ID] {
				best = j
			}
		}
		ordered[i], ordered[best] = ordered[best], ordered[i]
	}
	d.rows = append(ordered, rest...)
}
