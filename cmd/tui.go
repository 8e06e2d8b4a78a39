package cmd

import (
	"fmt"

	"github.com/theirongolddev/atelier/internal/config"
	"github.com/theirongolddev/atelier/internal/journal"
	"github.com/theirongolddev/atelier/internal/log"
	"github.com/theirongolddev/atelier/internal/store"
	"github.com/theirongolddev/atelier/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so the dashboard logs to a file.
	logger, closer, err := log.OpenFile(config.LogFile(cfg), logLevel(cfg))
	if err != nil {
		return err
	}
	defer closer.Close()
	logger = logger.WithComponent("tui")

	st, err := store.Open(config.DBPath(cfg))
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer st.Close()

	j := journal.Open(cmd.Context(), st, logger)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(cmd.Context(), j, cfg, logger)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
