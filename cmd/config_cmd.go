package cmd

import (
	"fmt"

	"github.com/theirongolddev/atelier/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data file:     %s\n", config.DBPath(cfg))
	fmt.Printf("    Confirm clear: %v\n", cfg.General.ConfirmClear)
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency:      %s\n", cfg.Display.Currency)
	fmt.Printf("    Locale:        %s\n", cfg.Display.Locale)
	fmt.Printf("    Month label:   %v\n", cfg.Display.MonthLabel)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Printf("    File:  %s (dashboard only)\n", config.LogFile(cfg))
	fmt.Println()

	fmt.Println("  Run `atelier setup` to reconfigure.")
	return nil
}
