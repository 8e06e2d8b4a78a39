package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every entry",
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	n := s.journal.Len()
	if n == 0 {
		info("Ledger is already empty")
		return nil
	}

	if !flagYes && s.cfg.General.ConfirmClear {
		confirmed := false
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Clear all %d entries?", n)).
			Description("This cannot be undone.").
			Affirmative("Clear").
			Negative("Keep").
			Value(&confirmed).
			Run()
		if err != nil {
			return fmt.Errorf("confirmation: %w", err)
		}
		if !confirmed {
			info("Kept all %d entries", n)
			return nil
		}
	}

	if err := s.journal.Clear(cmd.Context()); err != nil {
		return err
	}
	info("Cleared %d entries", n)
	return nil
}
