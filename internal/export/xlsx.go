// Package export writes the ledger to spreadsheet formats.
package export

import (
	"fmt"

	"github.com/theirongolddev/atelier/internal/model"

	"github.com/xuri/excelize/v2"
)

const (
	EntriesSheet = "Entries"
	SummarySheet = "Summary"
)

// numFmt is the Excel built-in "#,##0.00" format.
const numFmt = 4

func cell(col rune, row int) string {
	return fmt.Sprintf("%c%d", col, row)
}

// XLSX renders the entries (newest first) and their aggregate as a workbook.
func XLSX(entries []model.Entry, agg model.Aggregate) ([]byte, error) {
	xlsx := excelize.NewFile()
	defer func() { _ = xlsx.Close() }()

	_ = xlsx.SetAppProps(&excelize.AppProperties{Application: "atelier"})

	first := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	if err := xlsx.SetSheetName(first, EntriesSheet); err != nil {
		return nil, err
	}
	if _, err := xlsx.NewSheet(SummarySheet); err != nil {
		return nil, err
	}

	bold, err := xlsx.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	money, err := xlsx.NewStyle(&excelize.Style{NumFmt: numFmt})
	if err != nil {
		return nil, err
	}

	if err := writeEntries(xlsx, entries, bold, money); err != nil {
		return nil, err
	}
	if err := writeSummary(xlsx, agg, bold, money); err != nil {
		return nil, err
	}

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeEntries(xlsx *excelize.File, entries []model.Entry, bold, money int) error {
	sheet := EntriesSheet
	_ = xlsx.SetColWidth(sheet, "A", "A", 6)
	_ = xlsx.SetColWidth(sheet, "B", "B", 40)
	_ = xlsx.SetColWidth(sheet, "C", "D", 14)

	if err := xlsx.SetSheetRow(sheet, "A1", &[]any{"#", "Description", "Category", "Amount"}); err != nil {
		return err
	}
	_ = xlsx.SetCellStyle(sheet, "A1", "D1", bold)

	for i, e := range entries {
		row := i + 2
		if err := xlsx.SetSheetRow(sheet, cell('A', row), &[]any{i, e.Description, e.Category.String(), e.Signed()}); err != nil {
			return err
		}
	}
	if len(entries) > 0 {
		_ = xlsx.SetCellStyle(sheet, "D2", cell('D', len(entries)+1), money)
	}
	return nil
}

func writeSummary(xlsx *excelize.File, agg model.Aggregate, bold, money int) error {
	sheet := SummarySheet
	_ = xlsx.SetColWidth(sheet, "A", "A", 18)
	_ = xlsx.SetColWidth(sheet, "B", "B", 14)

	rows := []struct {
		label string
		value float64
	}{
		{"Income", agg.Income.InexactFloat64()},
		{"Fixed", agg.Fixed.InexactFloat64()},
		{"Variable", agg.Variable.InexactFloat64()},
		{"Savings", agg.Savings.InexactFloat64()},
		{"Total expenses", agg.TotalExpenses.InexactFloat64()},
		{"Balance", agg.Balance.InexactFloat64()},
	}
	for i, r := range rows {
		row := i + 1
		if err := xlsx.SetSheetRow(sheet, cell('A', row), &[]any{r.label, r.value}); err != nil {
			return err
		}
	}
	_ = xlsx.SetCellStyle(sheet, "B1", cell('B', len(rows)), money)
	_ = xlsx.SetCellStyle(sheet, cell('A', len(rows)), cell('B', len(rows)), bold)
	return nil
}
