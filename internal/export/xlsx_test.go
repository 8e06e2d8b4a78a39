package export

import (
	"bytes"
	"testing"

	"github.com/theirongolddev/atelier/internal/ledger"
	"github.com/theirongolddev/atelier/internal/model"

	"github.com/xuri/excelize/v2"
)

func TestXLSX(t *testing.T) {
	l := ledger.New()
	if _, err := l.Add("Rent", 800, model.Fixed); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Add("Salary", 2000, model.Income); err != nil {
		t.Fatal(err)
	}

	data, err := XLSX(l.Entries(), l.Aggregate())
	if err != nil {
		t.Fatalf("XLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	checks := []struct {
		sheet, cell, want string
	}{
		{EntriesSheet, "B1", "Description"},
		{EntriesSheet, "B2", "Salary"},
		{EntriesSheet, "C2", "Income"},
		{EntriesSheet, "B3", "Rent"},
		{SummarySheet, "A6", "Balance"},
	}
	for _, c := range checks {
		got, err := f.GetCellValue(c.sheet, c.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s!%s): %v", c.sheet, c.cell, err)
		}
		if got != c.want {
			t.Errorf("%s!%s = %q, want %q", c.sheet, c.cell, got, c.want)
		}
	}

	// Raw values avoid depending on the number format.
	for cellRef, want := range map[string]string{"D3": "-800", "D2": "2000"} {
		got, _ := f.GetCellValue(EntriesSheet, cellRef, excelize.Options{RawCellValue: true})
		if got != want {
			t.Errorf("Entries!%s = %q, want %q", cellRef, got, want)
		}
	}
	if got, _ := f.GetCellValue(SummarySheet, "B6", excelize.Options{RawCellValue: true}); got != "1200" {
		t.Errorf("Summary!B6 = %q, want 1200", got)
	}
}

func TestXLSX_Empty(t *testing.T) {
	if _, err := XLSX(nil, ledger.New().Aggregate()); err != nil {
		t.Fatalf("XLSX(empty): %v", err)
	}
}
