package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/theirongolddev/atelier/internal/config"
	"github.com/theirongolddev/atelier/internal/journal"
	"github.com/theirongolddev/atelier/internal/model"
	"github.com/theirongolddev/atelier/internal/store"
	"github.com/theirongolddev/atelier/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

// newTestApp returns a sized dashboard over an in-memory journal holding
// Rent (index 0) and Salary (index 1). Config writes go to a temp dir.
func newTestApp(t *testing.T, opts ...func(*config.Config)) App {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	ctx := context.Background()
	j := journal.Open(ctx, store.NewMemory(), nil)
	if _, err := j.Add(ctx, "Salary", 2000, model.Income); err != nil {
		t.Fatalf("Add Salary: %v", err)
	}
	if _, err := j.Add(ctx, "Rent", 800, model.Fixed); err != nil {
		t.Fatalf("Add Rent: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Display.Locale = "en"
	for _, opt := range opts {
		opt(&cfg)
	}

	m, _ := NewApp(ctx, j, cfg, nil).Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m.(App)
}

func press(t *testing.T, m tea.Model, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}
	return m.(App)
}

func TestDeleteRemovesEntryUnderCursor(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "j", "d")
	if a.journal.Len() != 1 {
		t.Fatalf("Len = %d, want 1", a.journal.Len())
	}
	if got := a.entries[0].Description; got != "Rent" {
		t.Errorf("remaining = %q, want Rent", got)
	}
	if a.cursor != 0 {
		t.Errorf("cursor = %d, want 0 after deleting the last row", a.cursor)
	}
	if a.statusErr {
		t.Errorf("unexpected error status %q", a.status)
	}
}

func TestDeleteUntilEmpty(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "d", "d", "d")
	if a.journal.Len() != 0 {
		t.Fatalf("Len = %d, want 0", a.journal.Len())
	}
	if a.status != "Nothing to delete" {
		t.Errorf("status = %q", a.status)
	}
}

func TestClearAsksForConfirmation(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "C")
	if a.mode != modeConfirmClear || a.form == nil {
		t.Fatalf("mode = %d, form open = %v; want confirm form", a.mode, a.form != nil)
	}
	if a.journal.Len() != 2 {
		t.Fatalf("Len = %d before confirming, want 2", a.journal.Len())
	}

	a = press(t, a, "esc")
	if a.form != nil || a.mode != modeBrowse {
		t.Fatal("esc should close the confirm form")
	}
	if a.journal.Len() != 2 {
		t.Errorf("Len = %d after cancel, want 2", a.journal.Len())
	}

	a.applyClear(false)
	if a.journal.Len() != 2 {
		t.Errorf("Len = %d after declining, want 2", a.journal.Len())
	}
	a.applyClear(true)
	if a.journal.Len() != 0 || len(a.entries) != 0 {
		t.Errorf("Len = %d after confirming, want 0", a.journal.Len())
	}
	if !a.agg.Balance.IsZero() {
		t.Errorf("Balance = %s, want 0", a.agg.Balance)
	}
}

func TestClearWithoutConfirmation(t *testing.T) {
	a := newTestApp(t, func(c *config.Config) { c.General.ConfirmClear = false })

	a = press(t, a, "C")
	if a.form != nil {
		t.Fatal("no form expected when confirm_clear is off")
	}
	if a.journal.Len() != 0 {
		t.Errorf("Len = %d, want 0", a.journal.Len())
	}
}

func TestAddFormKeepsOtherKeysOut(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "a")
	if a.mode != modeAdd || a.form == nil {
		t.Fatal("a should open the add form")
	}
	// Typed into the form, not treated as quit or delete
	a = press(t, a, "q", "d")
	if a.journal.Len() != 2 {
		t.Errorf("Len = %d, want 2", a.journal.Len())
	}
	a = press(t, a, "esc")
	if a.form != nil {
		t.Error("esc should close the add form")
	}
}

func TestApplyAdd(t *testing.T) {
	a := newTestApp(t)
	a.cursor = 1

	a.applyAdd(addValues{description: "  Coffee ", amount: "2,50", category: "Variable"})
	if a.statusErr {
		t.Fatalf("status error: %s", a.status)
	}
	if a.journal.Len() != 3 {
		t.Fatalf("Len = %d, want 3", a.journal.Len())
	}
	if got := a.entries[0]; got.Description != "Coffee" || got.Amount != 2.5 || got.Category != model.Variable {
		t.Errorf("newest = %+v", got)
	}
	if a.cursor != 0 {
		t.Errorf("cursor = %d, want 0", a.cursor)
	}
	if got := a.agg.Variable.String(); got != "2.5" {
		t.Errorf("Variable = %s, want 2.5", got)
	}
}

func TestApplyAddRejectsInvalidInput(t *testing.T) {
	a := newTestApp(t)

	for _, v := range []addValues{
		{description: "", amount: "10", category: "Fixed"},
		{description: "Gift", amount: "abc", category: "Income"},
		{description: "Gift", amount: "-5", category: "Income"},
		{description: "Gift", amount: "5", category: "Other"},
	} {
		a.applyAdd(v)
		if !a.statusErr {
			t.Errorf("applyAdd(%+v): want error status", v)
		}
		if a.journal.Len() != 2 {
			t.Errorf("applyAdd(%+v): Len = %d, want 2", v, a.journal.Len())
		}
	}
}

func TestViewShowsTotals(t *testing.T) {
	a := newTestApp(t)

	view := a.View()
	for _, want := range []string{"Balance", "1,200.00€", "2,000.00€", "800.00€", "Rent", "Salary"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	a = press(t, a, "2")
	if !strings.Contains(a.View(), "Expense breakdown") {
		t.Error("breakdown tab missing its card")
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	if !strings.Contains(m.View(), "too narrow") {
		t.Error("expected the narrow terminal notice")
	}
}

func TestSettingsThemeCyclePersists(t *testing.T) {
	defer theme.SetActive("atelier")
	a := newTestApp(t)

	a = press(t, a, "3", "t")
	if a.cfg.Appearance.Theme == "atelier" {
		t.Fatal("theme did not change")
	}
	if theme.Active.Name != a.cfg.Appearance.Theme {
		t.Errorf("active theme = %q, want %q", theme.Active.Name, a.cfg.Appearance.Theme)
	}
	if a.statusErr {
		t.Fatalf("status error: %s", a.status)
	}

	saved, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if saved.Appearance.Theme != a.cfg.Appearance.Theme {
		t.Errorf("saved theme = %q, want %q", saved.Appearance.Theme, a.cfg.Appearance.Theme)
	}
}

func TestHelpToggle(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "?")
	if !a.showHelp || !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Fatal("? should show help")
	}
	a = press(t, a, "d")
	if a.showHelp {
		t.Error("any key should close help")
	}
	if a.journal.Len() != 2 {
		t.Error("key that closed help must not act")
	}
}
