package cmd

import (
	"fmt"

	"github.com/theirongolddev/atelier/internal/cli"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List entries, newest first",
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	rows := s.journal.Rows()
	if len(rows) == 0 {
		fmt.Println("\n  No entries yet.")
		fmt.Println("  Add one with `atelier add DESCRIPTION AMOUNT`.")
		return nil
	}

	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			fmt.Sprintf("%d", r.Index),
			r.Description,
			r.Category.String(),
			r.Amount,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:      fmt.Sprintf("Entries (%d)", len(rows)),
		Headers:    []string{"#", "Description", "Category", "Amount " + s.cfg.Display.Currency},
		Rows:       tableRows,
		RightAlign: map[int]bool{0: true, 3: true},
	}))
	fmt.Println()
	return nil
}
