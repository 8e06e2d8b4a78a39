package components

import (
	"strings"

	"github.com/theirongolddev/atelier/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  string
}

// Tabs defines all available tabs, in order.
var Tabs = []Tab{
	{Name: "Entries", Key: "1"},
	{Name: "Breakdown", Key: "2"},
	{Name: "Settings", Key: "3"},
}

// TabLabel is the text rendered for tab i, without styling.
func TabLabel(i int) string {
	return " " + Tabs[i].Key + " " + Tabs[i].Name + " "
}

// RenderTabBar renders the tab bar with the given active index. Tabs are
// separated by a single cell.
func RenderTabBar(activeIdx, width int) string {
	t := theme.Active

	active := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover).Bold(true)
	inactive := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Background)
	sep := lipgloss.NewStyle().Foreground(t.Border).Background(t.Background).Render("│")

	parts := make([]string, len(Tabs))
	for i := range Tabs {
		if i == activeIdx {
			parts[i] = active.Render(TabLabel(i))
		} else {
			parts[i] = inactive.Render(TabLabel(i))
		}
	}

	return lipgloss.NewStyle().Background(t.Background).Width(width).Render(strings.Join(parts, sep))
}

// TabIdxByKey returns the tab index for a shortcut key, or -1.
func TabIdxByKey(key string) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
