package main

import (
	"github.com/charmbracelet/lipgloss"

	"ganttgrid/timegrid"
)

const (
	rowTextFGColor         = "#c0c0c0"
	rowSelectedTextFGColor = "#e0e0e0"
	rowSelectedBGColor     = "#3a3a3a"
)

var (
	// Chrome
	appstyle   = lipgloss.NewStyle().Margin(1, 2)
	chartStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))

	// Left panel
	rowLabelStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color(rowTextFGColor))
	rowLabelSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(rowSelectedTextFGColor)).
				Background(lipgloss.Color(rowSelectedBGColor))

	// Header bands
	bandStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	bandWeekendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("137"))
	bandHolidayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("168"))
	bandTodayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)

	// Bars
	barStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	barModifiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	barSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true)
	gridDotStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	todayColStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	barRune      = '█'
	gridDotRune  = '·'
	todayColRune = '│'
)

func bandClassStyle(class timegrid.BandClass) lipgloss.Style {
	switch class {
	case timegrid.ClassWeekend:
		return bandWeekendStyle
	case timegrid.ClassHoliday:
		return bandHolidayStyle
	case timegrid.ClassToday:
		return bandTodayStyle
	default:
		return bandStyle
	}
}
