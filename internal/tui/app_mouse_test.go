package tui

import (
	"testing"

	"github.com/theirongolddev/atelier/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestTabAtXMatchesTabLabels(t *testing.T) {
	pos := 0
	for i := range components.Tabs {
		w := lipgloss.Width(components.TabLabel(i))
		for _, x := range []int{pos, pos + w/2, pos + w - 1} {
			if got := tabAtX(x); got != i {
				t.Errorf("tabAtX(%d) = %d, want %d", x, got, i)
			}
		}
		pos += w + 1
	}
	if got := tabAtX(pos + 40); got != -1 {
		t.Errorf("tabAtX past the last tab = %d, want -1", got)
	}
}

func TestMouseClickSwitchesTab(t *testing.T) {
	a := newTestApp(t)

	x := lipgloss.Width(components.TabLabel(0)) + 1 + 1
	m, _ := a.Update(tea.MouseMsg{X: x, Y: tabBarRow, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if got := m.(App).activeTab; got != tabBreakdown {
		t.Errorf("activeTab = %d, want %d", got, tabBreakdown)
	}

	// Clicks below the tab bar are ignored
	m, _ = m.Update(tea.MouseMsg{X: 1, Y: tabBarRow + 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if got := m.(App).activeTab; got != tabBreakdown {
		t.Errorf("activeTab after body click = %d, want %d", got, tabBreakdown)
	}
}

func TestMouseWheelMovesCursor(t *testing.T) {
	a := newTestApp(t)

	m, _ := a.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	if got := m.(App).cursor; got != 1 {
		t.Errorf("cursor after wheel down = %d, want 1", got)
	}
	m, _ = m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	if got := m.(App).cursor; got != 1 {
		t.Errorf("cursor past the end = %d, want 1", got)
	}
	m, _ = m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp})
	if got := m.(App).cursor; got != 0 {
		t.Errorf("cursor after wheel up = %d, want 0", got)
	}
}
