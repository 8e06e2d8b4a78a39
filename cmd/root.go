// Package cmd implements the atelier CLI commands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/theirongolddev/atelier/internal/cli"
	"github.com/theirongolddev/atelier/internal/config"
	"github.com/theirongolddev/atelier/internal/journal"
	"github.com/theirongolddev/atelier/internal/log"
	"github.com/theirongolddev/atelier/internal/store"
	"github.com/theirongolddev/atelier/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagQuiet   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:          "atelier",
	Short:        "Personal finance ledger",
	Long:         "Record income, fixed and variable expenses and savings, and see where the money goes.",
	RunE:         runSummary,
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory holding the ledger database (default $XDG_DATA_HOME/atelier)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	theme.SetActive(cfg.Appearance.Theme)
	return cfg, nil
}

func logLevel(cfg config.Config) slog.Level {
	if flagVerbose {
		return slog.LevelDebug
	}
	return log.ParseLevel(cfg.Log.Level)
}

// session is one scoped use of the ledger: config, logger, an open store
// and the journal on top of it. Close releases the store.
type session struct {
	cfg     config.Config
	log     *log.Logger
	money   cli.Money
	store   *store.SQLite
	journal *journal.Journal
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := log.New(log.Config{Level: logLevel(cfg), Component: "cli"})

	dbPath := config.DBPath(cfg)
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", dbPath, err)
	}
	logger.Debug("ledger opened", "path", dbPath)

	return &session{
		cfg:     cfg,
		log:     logger,
		money:   cli.NewMoney(cfg.Display.Currency, cfg.Display.Locale),
		store:   st,
		journal: journal.Open(ctx, st, logger),
	}, nil
}

func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		s.log.Warn("closing ledger", "err", err)
	}
}

// info prints a progress or confirmation line to stderr unless --quiet.
func info(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "  "+format+"\n", args...)
}
