package dialogs

import "github.com/charmbracelet/lipgloss"

// Center places a dialog in the middle of a width×height area.
func Center(s string, width, height int) string {
	box := lipgloss.NewStyle().Width(width).Height(height).Align(lipgloss.Center, lipgloss.Center)
	return box.Render(s)
}
