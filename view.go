package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ganttgrid/dialogs"
	"ganttgrid/timegrid"
)

func (m *model) View() string {
	if !m.ui.ready {
		return "loading..."
	}
	if m.data.grid == nil {
		return appstyle.Render("loading data...")
	}

	offset := -timegrid.ScrollPos(m.maxScroll(), m.ui.scrollPct)
	width := m.rightPanelWidth()
	gutter := strings.Repeat(" ", leftPanelWidth)

	var lines []string
	for _, bandRow := range m.data.bands {
		lines = append(lines, gutter+renderBandRow(bandRow, offset, width))
	}
	for i, row := range m.data.rows {
		runes, classes := m.barCanvas(row, i)
		vr, vc := visibleSlice(runes, classes, offset, width)
		lines = append(lines, rowLabel(row, i == m.ui.cursor)+renderCells(vr, vc))
	}

	body := chartStyle.Render(strings.Join(lines, "\n"))
	out := appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, m.footerView(m.ui.width-4)))

	if m.ui.showHelp && m.help != nil {
		return dialogs.Center(m.help.View(), m.ui.width, m.ui.height)
	}
	return out
}

// renderBandRow lays a header row's bands onto a plain canvas, then windows
// and styles it. Band pixel widths are fractional at the weeks scale, so
// each band's integer width comes from rounding the running total, which
// keeps the row exactly as wide as the grid.
func renderBandRow(bands []timegrid.Band, offset, width int) string {
	var total float64
	for _, b := range bands {
		total += b.WidthPx
	}
	gridW := int(math.Round(total))
	runes := make([]rune, gridW)
	classes := make([]timegrid.BandClass, gridW)
	for i := range runes {
		runes[i] = ' '
	}

	acc := 0.0
	prev := 0
	for _, b := range bands {
		acc += b.WidthPx
		end := int(math.Round(acc))
		w := end - prev
		label := b.Label
		if len([]rune(label)) > w {
			label = string([]rune(label)[:w])
		}
		for i, r := range []rune(label) {
			runes[prev+i] = r
		}
		for i := prev; i < end; i++ {
			classes[i] = b.Class
		}
		prev = end
	}

	var sb strings.Builder
	for i := 0; i < width; i++ {
		src := offset + i
		if src < 0 || src >= gridW {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteString(bandClassStyle(classes[src]).Render(string(runes[src])))
	}
	return sb.String()
}

func (m *model) footerView(width int) string {
	status := noticeText(m.ui.noticeMsg, m.ui.noticeType)
	if status == "" {
		status = m.selectionSummary()
	}
	return RenderFooter(width, FooterState{
		Scale:         string(m.scale),
		Page:          m.data.page,
		PageCount:     m.data.pageCount,
		Row:           m.ui.cursor + 1,
		TotalRows:     len(m.data.rows),
		ScrollPct:     m.ui.scrollPct,
		Busy:          m.ui.busyPage,
		StatusMessage: status,
	}, DefaultFooterStyles())
}
