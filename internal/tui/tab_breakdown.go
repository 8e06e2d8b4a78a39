package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/atelier/internal/model"
	"github.com/theirongolddev/atelier/internal/tui/components"
	"github.com/theirongolddev/atelier/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBreakdownTab(cw int) string {
	t := theme.Active

	widths := components.LayoutRow(cw, 2)
	if cw < 90 {
		widths = []int{cw}
	}

	// Share of total expenses per expense category
	shareInner := components.CardInnerWidth(widths[0])
	labelW := 9
	barW := max(shareInner-labelW-1-1-6-2-14, 10)

	var shares strings.Builder
	for i, c := range model.ExpenseCategories {
		if i > 0 {
			shares.WriteByte('\n')
		}
		shares.WriteString(components.ShareBar(c.String(), a.agg.Share(c), a.money.FormatDecimal(a.agg.Total(c)),
			theme.CategoryColor(c), labelW, barW))
	}
	if a.agg.TotalExpenses.IsZero() {
		shares.WriteString("\n\n")
		shares.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render("No expenses recorded."))
	}
	sharesCard := components.ContentCard("Expense breakdown", shares.String(), widths[0])

	// Totals
	counts := make(map[model.Category]int)
	for _, e := range a.entries {
		counts[e.Category]++
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	line := func(label, value string, color lipgloss.Color) string {
		st := valueStyle
		if color != "" {
			st = st.Foreground(color).Bold(true)
		}
		return labelStyle.Render(fmt.Sprintf("%-16s", label)) + st.Render(fmt.Sprintf("%16s", value))
	}

	var totals strings.Builder
	for _, c := range model.Categories {
		label := fmt.Sprintf("%s (%d)", c, counts[c])
		totals.WriteString(line(label, a.money.FormatDecimal(a.agg.Total(c)), ""))
		totals.WriteByte('\n')
	}
	totals.WriteString(line("Total expenses", a.money.FormatDecimal(a.agg.TotalExpenses), ""))
	totals.WriteByte('\n')
	balanceColor := t.Positive
	if a.agg.Negative() {
		balanceColor = t.Negative
	}
	totals.WriteString(line("Balance", a.money.FormatDecimal(a.agg.Balance), balanceColor))

	totalsWidth := cw
	if len(widths) > 1 {
		totalsWidth = widths[1]
	}
	totalsCard := components.ContentCard("Totals", totals.String(), totalsWidth)

	if len(widths) == 1 {
		return sharesCard + "\n" + totalsCard
	}
	return components.CardRow([]string{sharesCard, totalsCard})
}
