package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Replace the ledger with a JSON snapshot",
	Long: `Replace every entry with the contents of a JSON snapshot: an array of
{"desc", "amount", "category"} records, newest first. Snapshots written by
"atelier export --format json" and by the browser version of the ledger are
both accepted. A malformed file is rejected and the ledger is left as is.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	before := s.journal.Len()
	n, err := s.journal.Import(cmd.Context(), raw)
	if err != nil {
		return err
	}
	info("Imported %d entries (replaced %d)", n, before)
	return nil
}
