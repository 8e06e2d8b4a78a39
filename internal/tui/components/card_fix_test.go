package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/atelier/internal/model"
	"github.com/theirongolddev/atelier/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("atelier")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d", len(lines), tallLines)
	}

	for i := shortLines; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[") {
			t.Errorf("line %d has no ANSI codes: padding is unstyled", i)
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive("atelier")

	row := MetricCardRow([]Metric{
		{Label: "Balance", Value: "1,200.00€"},
		{Label: "Income", Value: "2,000.00€"},
		{Label: "Expenses", Value: "800.00€"},
	}, 91)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 91 {
			t.Errorf("line %d width = %d, want 91", i, w)
		}
	}
}

func TestLayoutRow(t *testing.T) {
	widths := LayoutRow(10, 3)
	if len(widths) != 3 || widths[0] != 4 || widths[1] != 3 || widths[2] != 3 {
		t.Fatalf("LayoutRow(10, 3) = %v, want [4 3 3]", widths)
	}
	if LayoutRow(10, 0) != nil {
		t.Fatal("LayoutRow with n=0 should be nil")
	}
}

func TestCategoryBadgeFixedWidth(t *testing.T) {
	for _, c := range model.Categories {
		if w := lipgloss.Width(CategoryBadge(c)); w != BadgeWidth {
			t.Errorf("%s badge width = %d, want %d", c, w, BadgeWidth)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if TabIdxByKey("2") != 1 {
		t.Fatal("key 2 should select Breakdown")
	}
	if TabIdxByKey("z") != -1 {
		t.Fatal("unknown key should return -1")
	}
}
