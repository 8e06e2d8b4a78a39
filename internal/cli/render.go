package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/atelier/internal/model"
	"github.com/theirongolddev/atelier/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	// RightAlign marks columns rendered flush right (amounts).
	RightAlign map[int]bool
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title, subtitle string) string {
	t := theme.Active
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	body := lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Render(title)
	if subtitle != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(t.TextMuted).Render(subtitle)
	}
	return box.Render(body)
}

// pad pads s to width display cells, measuring with lipgloss so accented
// descriptions line up.
func pad(s string, width int, right bool) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

// RenderTable renders a bordered table with headers and rows. A row holding
// the single cell "---" renders as a separator.
func RenderTable(tb Table) string {
	if len(tb.Rows) == 0 && len(tb.Headers) == 0 {
		return ""
	}
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	header := lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary)

	numCols := len(tb.Headers)
	if numCols == 0 {
		numCols = len(tb.Rows[0])
	}

	widths := make([]int, numCols)
	for i, h := range tb.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range tb.Rows {
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	rule := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(left)
		for i, w := range widths {
			b.WriteString(strings.Repeat("─", w+2))
			if i < numCols-1 {
				b.WriteString(mid)
			}
		}
		b.WriteString(right)
		return dim.Render(b.String()) + "\n"
	}

	var b strings.Builder
	if tb.Title != "" {
		b.WriteString("  " + header.Render(tb.Title) + "\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))
	if len(tb.Headers) > 0 {
		b.WriteString(dim.Render("│"))
		for i, h := range tb.Headers {
			b.WriteString(header.Render(" " + pad(h, widths[i], tb.RightAlign[i]) + " "))
			b.WriteString(dim.Render("│"))
		}
		b.WriteString("\n")
		b.WriteString(rule("├", "┼", "┤"))
	}

	for _, row := range tb.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}
		b.WriteString(dim.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(value.Render(" " + pad(cell, widths[i], tb.RightAlign[i]) + " "))
			b.WriteString(dim.Render("│"))
		}
		b.WriteString("\n")
	}
	b.WriteString(rule("╰", "┴", "╯"))

	return b.String()
}

// RenderHorizontalBar renders one labeled bar of a breakdown chart.
func RenderHorizontalBar(label string, share float64, maxWidth int, color lipgloss.Color) string {
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}
	barLen := int(share * float64(maxWidth))
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen))
	rest := lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render(strings.Repeat("░", maxWidth-barLen))
	return fmt.Sprintf("  %-9s %s%s %6s", label, bar, rest, FormatPercent(share))
}

// RenderBreakdown renders the expense split across Fixed, Variable and Savings.
func RenderBreakdown(agg model.Aggregate, width int) string {
	var b strings.Builder
	for _, c := range model.ExpenseCategories {
		b.WriteString(RenderHorizontalBar(c.String(), agg.Share(c), width, theme.CategoryColor(c)))
		b.WriteString("\n")
	}
	return b.String()
}
