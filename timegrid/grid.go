package timegrid

import (
	"math"
	"time"
)

// syntheticUnits is how far a missing interval endpoint is projected from the
// endpoint that is present, in scale units.
const syntheticUnits = 5

// Interval is one bar on a row. Either endpoint may be nil, in which case a
// synthetic boundary is derived from the other side during placement.
type Interval struct {
	From     *time.Time
	To       *time.Time
	Label    string
	Desc     string
	StyleTag string
}

// Placement is the horizontal extent of a bar in pixels.
type Placement struct {
	Left  int
	Width int
}

// Grid maps times onto horizontal pixel positions for one generated range.
type Grid struct {
	Scale    Scale
	CellSize int
	Buckets  []Bucket

	index map[BucketKey]int
}

// NewGrid indexes the buckets of a generated range for key lookup.
func NewGrid(buckets []Bucket, scale Scale, cellSize int) *Grid {
	g := &Grid{
		Scale:    scale,
		CellSize: cellSize,
		Buckets:  buckets,
		index:    make(map[BucketKey]int, len(buckets)),
	}
	for _, b := range buckets {
		if _, dup := g.index[b.Key]; !dup {
			g.index[b.Key] = b.Index
		}
	}
	return g
}

// Width is the total pixel width of the grid.
func (g *Grid) Width() int { return len(g.Buckets) * g.CellSize }

// OffsetFor returns the left pixel offset of the column identified by key.
func (g *Grid) OffsetFor(key BucketKey) (int, bool) {
	i, ok := g.index[key]
	if !ok {
		return 0, false
	}
	return i * g.CellSize, true
}

// OffsetForTime resolves t to its column offset at the grid's scale.
func (g *Grid) OffsetForTime(t time.Time) (int, bool) {
	return g.OffsetFor(KeyFor(t, g.Scale))
}

// PlaceInterval computes the bar extent for iv. A missing endpoint is
// synthesized syntheticUnits scale units away from the present one. The bar
// spans whole columns: sub-day and day scales take the floor of the column
// delta, coarser scales round it, and one column is always added so a
// zero-delta interval still shows. The second return is false when no column
// resolves for an endpoint; callers skip such bars.
func (g *Grid) PlaceInterval(iv Interval) (Placement, bool) {
	from, to := iv.From, iv.To
	if from == nil && to == nil {
		return Placement{}, false
	}
	if from == nil {
		f := AdjustDate(*to, -syntheticUnits, g.Scale)
		from = &f
	}
	if to == nil {
		t := AdjustDate(*from, syntheticUnits, g.Scale)
		to = &t
	}

	left, ok := g.OffsetForTime(*from)
	if !ok {
		return Placement{}, false
	}
	right, ok := g.OffsetForTime(*to)
	if !ok {
		return Placement{}, false
	}

	delta := float64(right-left) / float64(g.CellSize)
	var cells int
	if g.Scale.IsHourFamily() || g.Scale == ScaleDays {
		cells = int(math.Floor(delta)) + 1
	} else {
		cells = int(math.Round(delta)) + 1
	}
	return Placement{Left: left, Width: cells * g.CellSize}, true
}
