package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type FooterState struct {
	Scale     string
	Page      int
	PageCount int
	Row       int
	TotalRows int
	ScrollPct float64
	Busy      bool

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	Bar      lipgloss.Style
	Pill     lipgloss.Style
	BusyPill lipgloss.Style
	Dim      lipgloss.Style
	Status   lipgloss.Style
	Legend   lipgloss.Style
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		Bar: lipgloss.NewStyle().
			Background(lipgloss.Color("#2b2b2b")).
			Foreground(lipgloss.Color("#cfcfcf")),
		Pill: lipgloss.NewStyle().
			Background(lipgloss.Color("#3c6e71")).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1),
		BusyPill: lipgloss.NewStyle().
			Background(lipgloss.Color("#ff9f1c")).
			Foreground(lipgloss.Color("#000000")).
			Padding(0, 1),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("#a0a0a0")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("#9a9a9a")),
		Legend: lipgloss.NewStyle().Foreground(lipgloss.Color("#b0b0b0")),
	}
}

// RenderFooter draws the two status lines under the chart: position and mode
// on the first, transient messages plus the key legend on the second.
func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Legend == "" {
		st.Legend = "(? help · +/- zoom · [/] pages · t today)"
	}
	if st.Page < 1 {
		st.Page = 1
	}
	if st.PageCount < 1 {
		st.PageCount = 1
	}

	pill := styles.Pill.Render("CHART")
	if st.Busy {
		pill = styles.BusyPill.Render("BUSY")
	}
	info := fmt.Sprintf(" %s · page %d/%d · row %d/%d · %3.0f%%",
		st.Scale, st.Page, st.PageCount, st.Row, st.TotalRows, st.ScrollPct)
	line1 := pill + styles.Dim.Render(truncatePlain(info, width-lipgloss.Width(pill)))
	line1 = styles.Bar.Render(padRightPlain(line1, width))

	legend := truncatePlain(st.Legend, width)
	msgW := width - lipgloss.Width(legend)
	msg := padRightPlain(truncatePlain(st.StatusMessage, msgW), msgW)
	line2 := styles.Status.Render(msg) + styles.Legend.Render(legend)

	return line1 + "\n" + line2
}

func padRightPlain(s string, w int) string {
	cur := lipgloss.Width(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return string(r[:w])
}
