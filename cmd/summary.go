package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/atelier/internal/cli"
	"github.com/theirongolddev/atelier/internal/journal"
	"github.com/theirongolddev/atelier/internal/model"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Totals per category, balance and expense breakdown",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	if s.journal.Len() == 0 {
		fmt.Println("\n  No entries yet.")
		fmt.Println("  Add one with `atelier add DESCRIPTION AMOUNT`, or run `atelier tui`.")
		return nil
	}

	agg := s.journal.Aggregate()

	subtitle := ""
	if s.cfg.Display.MonthLabel {
		subtitle = cli.MonthLabel(time.Now(), s.money.Tag)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("ATELIER", subtitle))
	fmt.Println()

	rows := [][]string{
		{model.Income.String(), s.money.FormatDecimal(agg.Income)},
		{"---"},
	}
	for _, c := range model.ExpenseCategories {
		rows = append(rows, []string{c.String(), s.money.FormatDecimal(agg.Total(c))})
	}
	rows = append(rows,
		[]string{"Total expenses", s.money.FormatDecimal(agg.TotalExpenses)},
		[]string{"---"},
		[]string{"Balance", s.money.FormatDecimal(agg.Balance)},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Title:      fmt.Sprintf("Summary (%d entries)", s.journal.Len()),
		Rows:       rows,
		RightAlign: map[int]bool{1: true},
	}))

	if !agg.TotalExpenses.IsZero() {
		fmt.Println()
		fmt.Println("  Expense breakdown")
		fmt.Print(cli.RenderBreakdown(agg, 30))
	}
	if agg.Negative() {
		fmt.Println()
		fmt.Println("  Expenses exceed income.")
	}
	if saved, err := s.store.UpdatedAt(cmd.Context(), journal.SnapshotKey); err == nil {
		fmt.Println()
		fmt.Printf("  Last saved %s\n", saved.Local().Format("2006-01-02 15:04"))
	}
	fmt.Println()
	return nil
}
