// Package tui provides the interactive Bubble Tea dashboard for atelier.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/atelier/internal/cli"
	"github.com/theirongolddev/atelier/internal/config"
	"github.com/theirongolddev/atelier/internal/journal"
	"github.com/theirongolddev/atelier/internal/log"
	"github.com/theirongolddev/atelier/internal/model"
	"github.com/theirongolddev/atelier/internal/tui/components"
	"github.com/theirongolddev/atelier/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabEntries = iota
	tabBreakdown
	tabSettings
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minContentHeight = 5

	// Line of the tab bar inside the header, for mouse hit testing.
	tabBarRow = 1
)

// mode says whether keys go to the dashboard or to an open form.
type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeConfirmClear
)

// App is the root Bubble Tea model. It holds the journal and re-reads the
// derived view after every mutation.
type App struct {
	ctx     context.Context
	journal *journal.Journal
	log     *log.Logger
	cfg     config.Config
	money   cli.Money
	now     func() time.Time

	// Derived view, refreshed after each mutation
	entries []model.Entry
	agg     model.Aggregate

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	cursor    int

	// Open form, if any. Values live behind pointers so they survive the
	// value-receiver copies Bubble Tea makes of App.
	mode    mode
	form    *huh.Form
	addVals *addValues
	clearOK *bool

	status    string
	statusErr bool
}

// NewApp creates the dashboard model around an opened journal.
func NewApp(ctx context.Context, j *journal.Journal, cfg config.Config, logger *log.Logger) App {
	if logger == nil {
		logger = log.Discard()
	}
	a := App{
		ctx:     ctx,
		journal: j,
		log:     logger.WithComponent("tui"),
		cfg:     cfg,
		money:   cli.NewMoney(cfg.Display.Currency, cfg.Display.Locale),
		now:     time.Now,
	}
	a.refresh()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// refresh re-derives the entries and totals from the journal and keeps the
// cursor inside the list.
func (a *App) refresh() {
	a.entries = a.journal.Entries()
	a.agg = a.journal.Aggregate()

	if a.cursor >= len(a.entries) {
		a.cursor = len(a.entries) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(formWidth(msg.Width))
		}
		return a, nil

	case tea.MouseMsg:
		if a.mode != modeBrowse || a.showHelp {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabEntries && a.cursor > 0 {
				a.cursor--
			}
		case tea.MouseButtonWheelDown:
			if a.activeTab == tabEntries && a.cursor < len(a.entries)-1 {
				a.cursor++
			}
		case tea.MouseButtonLeft:
			if msg.Action == tea.MouseActionPress && msg.Y == tabBarRow {
				if tab := tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// An open form takes every key
		if a.mode != modeBrowse {
			return a.updateForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch a.activeTab {
		case tabEntries:
			if next, cmd, ok := a.updateEntriesKey(key); ok {
				return next, cmd
			}
		case tabSettings:
			if next, ok := a.updateSettingsKey(key); ok {
				return next, nil
			}
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "left", "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if idx := components.TabIdxByKey(key); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil
	}

	// Cursor blinks and other internal messages for an open form
	if a.mode != modeBrowse {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.form != nil {
		return a.viewForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	msg := fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  atelier needs at least %d columns.\n",
		a.width, minTerminalWidth)
	h := max(a.height, 5)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHeader() string {
	t := theme.Active
	w := a.width

	logo := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Background).Bold(true).Render(" ◈ atelier")
	sub := ""
	if a.cfg.Display.MonthLabel {
		sub = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Background).
			Render(" · " + cli.MonthLabel(a.now(), a.money.Tag))
	}
	title := lipgloss.NewStyle().Background(t.Background).Width(w).Render(logo + sub)

	return title + "\n" + components.RenderTabBar(a.activeTab, w)
}

func (a App) viewMetrics(cw int) string {
	t := theme.Active
	balanceColor := t.Positive
	if a.agg.Negative() {
		balanceColor = t.Negative
	}
	return components.MetricCardRow([]components.Metric{
		{Label: "Balance", Value: a.money.FormatDecimal(a.agg.Balance), Color: balanceColor},
		{Label: "Income", Value: a.money.FormatDecimal(a.agg.Income), Color: t.Income},
		{Label: "Expenses", Value: a.money.FormatDecimal(a.agg.TotalExpenses)},
	}, cw)
}

func (a App) statusHints() string {
	switch a.activeTab {
	case tabEntries:
		return "[a]dd  [d]elete  [C]lear  [?]help  [q]uit"
	case tabSettings:
		return "[t]heme  [c]onfirm clear  [m]onth label  [?]help  [q]uit"
	default:
		return "[1-3] tabs  [?]help  [q]uit"
	}
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()

	header := a.viewHeader()
	metrics := a.viewMetrics(cw)
	statusBar := components.RenderStatusBar(w, a.statusHints(), a.status, a.statusErr)

	contentH := max(a.height-lipgloss.Height(header)-lipgloss.Height(metrics)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabEntries:
		content = a.renderEntriesTab(cw, contentH)
	case tabBreakdown:
		content = a.renderBreakdownTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	body := metrics + "\n" + padHeight(truncateHeight(content, contentH), contentH)
	body = fillLinesWithBackground(body, cw, t.Background)
	body = lipgloss.PlaceHorizontal(w, lipgloss.Center, body, lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)
	return lipgloss.Place(w, a.height, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	bindings := []struct{ key, desc string }{
		{"1 2 3", "Jump to tab"},
		{"← →", "Previous / next tab"},
		{"j k", "Move through entries"},
		{"g G", "First / last entry"},
		{"a", "Add an entry"},
		{"d", "Delete the selected entry"},
		{"C", "Clear all entries"},
		{"Esc", "Cancel form"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "%s  %s\n", keyStyle.Render(fmt.Sprintf("%-6s", bind.key)), descStyle.Render(bind.desc))
	}

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow RenderTabBar: each label, then a one-column separator.
func tabAtX(x int) int {
	pos := 0
	for i := range components.Tabs {
		w := lipgloss.Width(components.TabLabel(i))
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 1
	}
	return -1
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line, lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}
