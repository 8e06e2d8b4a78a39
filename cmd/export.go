package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/atelier/internal/export"

	"github.com/spf13/cobra"
)

var (
	flagOut    string
	flagFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the ledger to an XLSX workbook or a JSON snapshot",
	Example: `  atelier export --out ledger.xlsx
  atelier export --format json --out backup.json`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (required)")
	exportCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "xlsx or json (default: from the file extension)")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

func exportFormat(out, format string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
	}
	switch format {
	case "xlsx", "json":
		return format, nil
	case "":
		return "xlsx", nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want xlsx or json)", format)
	}
}

func runExport(cmd *cobra.Command, _ []string) error {
	format, err := exportFormat(flagOut, flagFormat)
	if err != nil {
		return err
	}

	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	var data []byte
	switch format {
	case "json":
		data, err = s.journal.Snapshot()
	default:
		data, err = export.XLSX(s.journal.Entries(), s.journal.Aggregate())
	}
	if err != nil {
		return fmt.Errorf("exporting: %w", err)
	}

	if err := os.WriteFile(flagOut, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", flagOut, err)
	}
	info("Exported %d entries to %s", s.journal.Len(), flagOut)
	return nil
}
