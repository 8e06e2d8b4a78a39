package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/atelier/internal/model"
	"github.com/theirongolddev/atelier/internal/tui/components"
	"github.com/theirongolddev/atelier/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const amountColWidth = 16

// updateEntriesKey handles keys specific to the entries tab. ok is false when
// the key should fall through to the global bindings.
func (a App) updateEntriesKey(key string) (App, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.cursor < len(a.entries)-1 {
			a.cursor++
		}
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
	case "g", "home":
		a.cursor = 0
	case "G", "end":
		a.cursor = max(len(a.entries)-1, 0)
	case "a":
		cmd := a.openAddForm()
		return a, cmd, true
	case "d", "x", "delete":
		a.deleteSelected()
	case "C":
		cmd := a.startClear()
		return a, cmd, true
	default:
		return a, nil, false
	}
	return a, nil, true
}

// deleteSelected removes the entry under the cursor.
func (a *App) deleteSelected() {
	if len(a.entries) == 0 {
		a.setStatus("Nothing to delete", false)
		return
	}
	e, ok, err := a.journal.RemoveAt(a.ctx, a.cursor)
	a.refresh()
	switch {
	case !ok:
		a.setStatus("No entry selected", false)
	case err != nil:
		a.log.Error("delete not saved", "err", err)
		a.setStatus("Deleted, but saving failed: "+err.Error(), true)
	default:
		a.setStatus("Deleted "+e.Description, false)
	}
}

func (a App) renderEntriesTab(cw, h int) string {
	t := theme.Active
	inner := components.CardInnerWidth(cw)
	title := fmt.Sprintf("Entries (%d)", len(a.entries))

	if len(a.entries) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render("No entries yet. Press a to add one.")
		return components.ContentCard(title, empty, cw)
	}

	// Card border and title take three lines
	visible := max(h-3, 1)
	start := 0
	if a.cursor >= visible {
		start = a.cursor - visible + 1
	}
	end := min(start+visible, len(a.entries))

	descW := max(inner-2-components.BadgeWidth-2-amountColWidth, 8)

	var b strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			b.WriteByte('\n')
		}
		b.WriteString(a.renderEntryLine(a.entries[i], i == a.cursor, descW, inner))
	}
	return components.ContentCard(title, b.String(), cw)
}

func (a App) renderEntryLine(e model.Entry, selected bool, descW, inner int) string {
	t := theme.Active

	bg := t.Surface
	marker := "  "
	if selected {
		bg = t.SurfaceHover
		marker = "▸ "
	}

	amountColor := t.TextPrimary
	if e.Category == model.Income {
		amountColor = t.Positive
	}

	base := lipgloss.NewStyle().Background(bg)
	line := base.Foreground(t.Accent).Render(marker) +
		base.Foreground(t.TextPrimary).Render(fmt.Sprintf("%-*s", descW, truncStr(e.Description, descW))) +
		components.CategoryBadge(e.Category) +
		base.Render("  ") +
		base.Foreground(amountColor).Bold(true).Render(fmt.Sprintf("%*s", amountColWidth, a.money.Signed(e)))

	return lipgloss.PlaceHorizontal(inner, lipgloss.Left, line, lipgloss.WithWhitespaceBackground(bg))
}
