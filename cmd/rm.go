package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm INDEX",
	Aliases: []string{"remove"},
	Short:   "Remove the entry at INDEX (as shown by list)",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[0], err)
	}

	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	e, ok, err := s.journal.RemoveAt(cmd.Context(), idx)
	if err != nil {
		return err
	}
	if !ok {
		info("No entry at index %d (ledger has %d entries); nothing removed", idx, s.journal.Len())
		return nil
	}

	info("Removed %s  %s  %s", e.Description, e.Category, s.money.Signed(e))
	return nil
}
