package cmd

import (
	"fmt"

	"github.com/theirongolddev/atelier/internal/cli"
	"github.com/theirongolddev/atelier/internal/config"
	"github.com/theirongolddev/atelier/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to atelier!").
				Description("A few questions about how amounts are shown.\nEverything can be changed later in "+config.Path()),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Currency symbol").
				Options(
					huh.NewOption("€ Euro", "€"),
					huh.NewOption("$ Dollar", "$"),
					huh.NewOption("£ Pound", "£"),
					huh.NewOption("None", ""),
				).
				Value(&cfg.Display.Currency),
			huh.NewSelect[string]().
				Title("Number format").
				Options(
					huh.NewOption("1.234,56 (es-ES)", "es-ES"),
					huh.NewOption("1,234.56 (en-US)", "en-US"),
					huh.NewOption("1.234,56 (de-DE)", "de-DE"),
					huh.NewOption("1 234,56 (fr-FR)", "fr-FR"),
				).
				Value(&cfg.Display.Locale),
			huh.NewConfirm().
				Title("Show the current month in the header?").
				Value(&cfg.Display.MonthLabel),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&cfg.Appearance.Theme),
			huh.NewConfirm().
				Title("Ask before clearing all entries?").
				Value(&cfg.General.ConfirmClear),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	money := cli.NewMoney(cfg.Display.Currency, cfg.Display.Locale)
	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Printf("  Amounts will look like %s\n", money.Format(1234.56))
	fmt.Println()
	fmt.Println("  Run `atelier tui` to open the dashboard.")
	return nil
}
