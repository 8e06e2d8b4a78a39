package components

import (
	"github.com/theirongolddev/atelier/internal/model"
	"github.com/theirongolddev/atelier/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// BadgeWidth is the rendered width of every category badge.
const BadgeWidth = 10

// CategoryBadge renders a fixed-width colored label for c.
func CategoryBadge(c model.Category) string {
	return lipgloss.NewStyle().
		Foreground(theme.Active.Background).
		Background(theme.CategoryColor(c)).
		Bold(true).
		Width(BadgeWidth).
		Align(lipgloss.Center).
		Render(c.String())
}
