package timegrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxScrollRange(t *testing.T) {
	assert.Equal(t, -200, MaxScrollRange(100, 300))
	assert.Equal(t, 0, MaxScrollRange(300, 100), "grid fits, scrolling disabled")
	assert.Equal(t, 0, MaxScrollRange(100, 100))
}

func TestScrollPos(t *testing.T) {
	assert.Equal(t, 0, ScrollPos(-200, 0))
	assert.Equal(t, -100, ScrollPos(-200, 50))
	assert.Equal(t, -200, ScrollPos(-200, 100))
	assert.Equal(t, -200, ScrollPos(-200, 130), "percent is clamped")
	assert.Equal(t, 0, ScrollPos(-200, -5))
}

func TestScrollBy(t *testing.T) {
	// Positive deltas move the margin towards zero, i.e. towards the start.
	assert.InDelta(t, 35, ScrollBy(-200, 50, 30), 1e-9)
	assert.InDelta(t, 65, ScrollBy(-200, 50, -30), 1e-9)
	assert.InDelta(t, 0, ScrollBy(-200, 10, 500), 1e-9)
	assert.InDelta(t, 100, ScrollBy(-200, 90, -500), 1e-9)
	assert.InDelta(t, 0, ScrollBy(0, 50, 30), 1e-9, "nothing to scroll")
}

func TestNavStep(t *testing.T) {
	assert.Equal(t, 300, NavStep(NavPrevWeek, ScaleDays, 10))
	assert.Equal(t, -300, NavStep(NavNextWeek, ScaleDays, 10))
	assert.Equal(t, 70, NavStep(NavPrevDay, ScaleDays, 10))
	assert.Equal(t, 80, NavStep(NavPrevWeek, ScaleEvery6Hours, 10))
	assert.Equal(t, 120, NavStep(NavPrevWeek, ScaleWeeks, 10))
	assert.Equal(t, -30, NavStep(NavNextDay, ScaleMonths, 10))
}

func TestPercentForOffset(t *testing.T) {
	pct, ok := PercentForOffset(120, -200)
	require.True(t, ok)
	assert.InDelta(t, 60, pct, 1e-9)

	pct, ok = PercentForOffset(500, -200)
	require.True(t, ok)
	assert.InDelta(t, 100, pct, 1e-9, "clamped to the far end")

	_, ok = PercentForOffset(120, 0)
	assert.False(t, ok)
}
