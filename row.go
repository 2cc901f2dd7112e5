package main

import (
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ganttgrid/source"
)

type cellClass uint8

const (
	cellEmpty cellClass = iota
	cellGridDot
	cellToday
	cellBar
	cellBarModified
	cellBarSelected
)

func cellClassStyle(c cellClass) lipgloss.Style {
	switch c {
	case cellGridDot:
		return gridDotStyle
	case cellToday:
		return todayColStyle
	case cellBar:
		return barStyle
	case cellBarModified:
		return barModifiedStyle
	case cellBarSelected:
		return barSelectedStyle
	default:
		return lipgloss.NewStyle()
	}
}

// barCanvas paints one row's bars onto a full-width rune canvas, together
// with a per-cell class used for styling after the canvas is windowed.
func (m *model) barCanvas(row source.Row, rowIdx int) ([]rune, []cellClass) {
	width := m.data.grid.Width()
	runes := make([]rune, width)
	classes := make([]cellClass, width)
	for i := range runes {
		runes[i] = ' '
	}
	for c := 0; c < width; c += m.cfg.CellSize {
		runes[c] = gridDotRune
		classes[c] = cellGridDot
	}
	if off, ok := m.data.grid.OffsetForTime(m.now()); ok && off < width {
		runes[off] = todayColRune
		classes[off] = cellToday
	}

	for bi, v := range row.Values {
		iv := v.Interval()
		p, ok := m.data.grid.PlaceInterval(iv)
		if !ok {
			// A bar without a resolvable column is skipped, never guessed at.
			log.Printf("row %d: %s has no column on this grid, skipping", row.ID, barTitle(row, bi))
			continue
		}
		class := cellBar
		if m.data.barModified(row.ID, bi, iv) {
			class = cellBarModified
		}
		if rowIdx == m.ui.cursor && bi == m.ui.barCursor {
			class = cellBarSelected
		}
		for x := p.Left; x < p.Left+p.Width && x < width; x++ {
			if x < 0 {
				continue
			}
			runes[x] = barRune
			classes[x] = class
		}
	}
	return runes, classes
}

// visibleSlice windows a canvas to the scrolled viewport, padding past the
// grid's right edge with blanks.
func visibleSlice(runes []rune, classes []cellClass, offset, width int) ([]rune, []cellClass) {
	outR := make([]rune, width)
	outC := make([]cellClass, width)
	for i := 0; i < width; i++ {
		src := offset + i
		if src >= 0 && src < len(runes) {
			outR[i] = runes[src]
			outC[i] = classes[src]
		} else {
			outR[i] = ' '
			outC[i] = cellEmpty
		}
	}
	return outR, outC
}

// renderCells turns a windowed canvas into styled text, styling each run of
// equal classes in one go.
func renderCells(runes []rune, classes []cellClass) string {
	var b strings.Builder
	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && classes[j] == classes[i] {
			j++
		}
		b.WriteString(cellClassStyle(classes[i]).Render(string(runes[i:j])))
		i = j
	}
	return b.String()
}

// rowLabel is the fixed-width left panel cell for a row.
func rowLabel(row source.Row, selected bool) string {
	name := row.Name
	max := leftPanelWidth - 2
	if len([]rune(name)) > max {
		name = string([]rune(name)[:max-1]) + "…"
	}
	pad := leftPanelWidth - len([]rune(name)) - 1
	if pad < 0 {
		pad = 0
	}
	text := " " + name + strings.Repeat(" ", pad)
	if selected {
		return rowLabelSelectedStyle.Render(text)
	}
	return rowLabelStyle.Render(text)
}
