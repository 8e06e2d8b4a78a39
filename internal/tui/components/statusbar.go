package components

import (
	"github.com/theirongolddev/atelier/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// the latest status message on the right, in red when isErr is set.
func RenderStatusBar(width int, hints, status string, isErr bool) string {
	t := theme.Active

	base := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.SurfaceHover)
	statusColor := t.TextPrimary
	if isErr {
		statusColor = t.Negative
	}

	left := base.Render(" " + hints)
	right := lipgloss.NewStyle().Foreground(statusColor).Background(t.SurfaceHover).Render(status + " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return base.Width(width).MaxWidth(width).Render(left)
	}
	return left + base.Width(gap).Render("") + right
}
