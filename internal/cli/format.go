// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"time"

	"github.com/theirongolddev/atelier/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money formats amounts for one currency and locale.
type Money struct {
	Currency string
	Tag      language.Tag
	printer  *message.Printer
}

// NewMoney builds a formatter. An unparsable locale falls back to Spanish,
// the ledger's historical default.
func NewMoney(currency, locale string) Money {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	return Money{Currency: currency, Tag: tag, printer: message.NewPrinter(tag)}
}

// Format renders v with two decimals, locale grouping and the currency symbol.
func (m Money) Format(v float64) string {
	return m.withSymbol(m.printer.Sprintf("%.2f", v))
}

// FormatDecimal renders an aggregate total.
func (m Money) FormatDecimal(d decimal.Decimal) string {
	return m.Format(d.Round(2).InexactFloat64())
}

// Signed renders an entry amount with "+" for income and "-" otherwise.
func (m Money) Signed(e model.Entry) string {
	return e.Sign() + m.Format(e.Amount)
}

func (m Money) withSymbol(s string) string {
	switch m.Currency {
	case "":
		return s
	case "$", "£", "¥":
		return m.Currency + s
	default:
		return s + m.Currency
	}
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// MonthLabel returns the long month and year for t, e.g. "octubre de 2026"
// for Spanish locales and "October 2026" otherwise.
func MonthLabel(t time.Time, tag language.Tag) string {
	if base, _ := tag.Base(); base.String() == "es" {
		return fmt.Sprintf("%s de %d", spanishMonths[t.Month()-1], t.Year())
	}
	return t.Format("January 2006")
}
