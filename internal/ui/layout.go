package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Horizontal renders panes side by side
func Horizontal(panes ...Pane) string {
	if len(panes) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, renderAll(panes)...)
}

// Vertical renders panes stacked top to bottom
func Vertical(panes ...Pane) string {
	if len(panes) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, renderAll(panes)...)
}

func renderAll(panes []Pane) []string {
	views := make([]string, len(panes))
	for i, pane := range panes {
		views[i] = pane.Render()
	}
	return views
}

// splitWidth divides total between two panes side by side, leaving room for
// both borders. The left pane gets share percent of it.
func splitWidth(total, share int) (int, int) {
	inner := max(total-4, 2)
	left := max(inner*share/100, 1)
	return left, max(inner-left, 1)
}
