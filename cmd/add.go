package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/atelier/internal/ledger"
	"github.com/theirongolddev/atelier/internal/model"

	"github.com/spf13/cobra"
)

var flagCategory string

var addCmd = &cobra.Command{
	Use:   "add DESCRIPTION AMOUNT",
	Short: "Record a new entry",
	Long: `Record a new entry at the top of the ledger.

AMOUNT is a positive number; both "12.50" and "12,50" are accepted.`,
	Example: `  atelier add Salary 2000 -c income
  atelier add "Rent" 800 --category fixed
  atelier add Coffee 2,50`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagCategory, "category", "c", model.Variable.String(), "Income, Fixed, Variable or Savings")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	e, err := s.journal.AddRaw(cmd.Context(), args[0], args[1], flagCategory)
	if errors.Is(err, ledger.ErrInvalidEntry) {
		return fmt.Errorf("entry not added: %w", err)
	}
	if err != nil {
		return err
	}

	info("Added %s  %s  %s", e.Description, e.Category, s.money.Signed(e))
	agg := s.journal.Aggregate()
	info("Balance: %s", s.money.FormatDecimal(agg.Balance))
	return nil
}
