package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/atelier/internal/ledger"
	"github.com/theirongolddev/atelier/internal/model"
	"github.com/theirongolddev/atelier/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const maxFormWidth = 60

// addValues holds the add form's bound fields.
type addValues struct {
	description string
	amount      string
	category    string
}

func formWidth(termWidth int) int {
	return max(min(termWidth-8, maxFormWidth), 20)
}

func (a *App) openAddForm() tea.Cmd {
	a.addVals = &addValues{category: model.Variable.String()}

	opts := make([]huh.Option[string], 0, len(model.Categories))
	for _, c := range model.Categories {
		opts = append(opts, huh.NewOption(c.String(), c.String()))
	}

	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Placeholder("Rent").
				Value(&a.addVals.description).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return ledger.ErrEmptyDescription
					}
					return nil
				}),
			huh.NewInput().
				Title("Amount").
				Placeholder("800,00").
				Value(&a.addVals.amount).
				Validate(func(s string) error {
					_, err := ledger.ParseAmount(s)
					return err
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(opts...).
				Value(&a.addVals.category),
		).Title("New entry"),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(true).WithWidth(formWidth(a.width))

	a.mode = modeAdd
	return a.form.Init()
}

// startClear asks for confirmation when configured to, otherwise clears.
func (a *App) startClear() tea.Cmd {
	if len(a.entries) == 0 {
		a.setStatus("Nothing to clear", false)
		return nil
	}
	if !a.cfg.General.ConfirmClear {
		a.applyClear(true)
		return nil
	}

	ok := false
	a.clearOK = &ok
	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Clear all %d entries?", len(a.entries))).
				Description("This cannot be undone.").
				Affirmative("Clear").
				Negative("Keep").
				Value(a.clearOK),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(false).WithWidth(formWidth(a.width))

	a.mode = modeConfirmClear
	return a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.form == nil {
		a.mode = modeBrowse
		return a, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		a.closeForm()
		a.setStatus("Cancelled", false)
		return a, nil
	}

	m, cmd := a.form.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		switch a.mode {
		case modeAdd:
			a.applyAdd(*a.addVals)
		case modeConfirmClear:
			a.applyClear(*a.clearOK)
		}
		a.closeForm()
		return a, nil
	case huh.StateAborted:
		a.closeForm()
		a.setStatus("Cancelled", false)
		return a, nil
	}
	return a, cmd
}

func (a *App) closeForm() {
	a.form = nil
	a.addVals = nil
	a.clearOK = nil
	a.mode = modeBrowse
}

// applyAdd submits the add form's values to the journal.
func (a *App) applyAdd(v addValues) {
	e, err := a.journal.AddRaw(a.ctx, v.description, v.amount, v.category)
	switch {
	case errors.Is(err, ledger.ErrInvalidEntry):
		a.setStatus("Not added: "+err.Error(), true)
		return
	case err != nil:
		a.log.Error("add not saved", "err", err)
		a.setStatus("Added, but saving failed: "+err.Error(), true)
	default:
		a.setStatus(fmt.Sprintf("Added %s (%s)", e.Description, a.money.Signed(e)), false)
	}
	a.refresh()
	a.cursor = 0
	a.activeTab = tabEntries
}

// applyClear empties the ledger when confirmed.
func (a *App) applyClear(confirmed bool) {
	if !confirmed {
		a.setStatus("Kept all entries", false)
		return
	}
	err := a.journal.Clear(a.ctx)
	a.refresh()
	if err != nil {
		a.log.Error("clear not saved", "err", err)
		a.setStatus("Cleared, but saving failed: "+err.Error(), true)
		return
	}
	a.setStatus("All entries cleared", false)
}

func (a App) viewForm() string {
	t := theme.Active

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2).
		Render(a.form.View())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}
