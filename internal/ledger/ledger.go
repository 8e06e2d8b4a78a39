// Package ledger implements the in-memory ledger: an ordered, newest-first
// list of entries and the totals derived from it.
//
// A Ledger performs no I/O. Callers persist Snapshot after every successful
// mutation (see package journal).
package ledger

import (
	"slices"
	"strconv"

	"github.com/theirongolddev/atelier/internal/model"

	"github.com/shopspring/decimal"
)

// Ledger owns the ordered sequence of entries. Index 0 is the most recently
// added entry that is still present.
type Ledger struct {
	entries []model.Entry
}

// Row is the read view of one entry as handed to the presentation layer.
type Row struct {
	Index       int
	Description string
	Category    model.Category
	// Amount is the signed, two-decimal amount, e.g. "+2000.00" or "-800.00".
	Amount string
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// At returns the entry at index i.
func (l *Ledger) At(i int) (model.Entry, bool) {
	if i < 0 || i >= len(l.entries) {
		return model.Entry{}, false
	}
	return l.entries[i], true
}

// Entries returns a copy of the entries in display order.
func (l *Ledger) Entries() []model.Entry {
	return slices.Clone(l.entries)
}

// Add validates the entry and prepends it. On error the ledger is unchanged.
func (l *Ledger) Add(description string, amount float64, category model.Category) (model.Entry, error) {
	e, err := newEntry(description, amount, category)
	if err != nil {
		return model.Entry{}, err
	}
	l.entries = slices.Insert(l.entries, 0, e)
	return e, nil
}

// AddRaw parses raw form input and adds the resulting entry.
func (l *Ledger) AddRaw(description, amount, category string) (model.Entry, error) {
	a, err := ParseAmount(amount)
	if err != nil {
		return model.Entry{}, err
	}
	c, err := model.ParseCategory(category)
	if err != nil {
		return model.Entry{}, ErrUnknownCategory
	}
	return l.Add(description, a, c)
}

// RemoveAt deletes the entry at index i. An out-of-range index is a no-op
// and reports false.
func (l *Ledger) RemoveAt(i int) (model.Entry, bool) {
	if i < 0 || i >= len(l.entries) {
		return model.Entry{}, false
	}
	e := l.entries[i]
	l.entries = slices.Delete(l.entries, i, i+1)
	return e, true
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.entries = nil
}

// Replace swaps in a new set of entries, given in display order. Every entry
// must satisfy the same constraints as Add; otherwise nothing changes.
func (l *Ledger) Replace(entries []model.Entry) error {
	next := make([]model.Entry, 0, len(entries))
	for i, e := range entries {
		v, err := newEntry(e.Description, e.Amount, e.Category)
		if err != nil {
			return &RecordError{Index: i, Err: err}
		}
		next = append(next, v)
	}
	l.entries = next
	return nil
}

// Aggregate derives the category totals and balance in a single pass.
func (l *Ledger) Aggregate() model.Aggregate {
	return Summarize(l.entries)
}

// Summarize computes the aggregate of an arbitrary entry slice.
func Summarize(entries []model.Entry) model.Aggregate {
	income, fixed, variable, savings := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, e := range entries {
		amt := decimal.NewFromFloat(e.Amount)
		switch e.Category {
		case model.Income:
			income = income.Add(amt)
		case model.Fixed:
			fixed = fixed.Add(amt)
		case model.Variable:
			variable = variable.Add(amt)
		case model.Savings:
			savings = savings.Add(amt)
		}
	}

	total := fixed.Add(variable).Add(savings)
	return model.Aggregate{
		Income:        income,
		Fixed:         fixed,
		Variable:      variable,
		Savings:       savings,
		TotalExpenses: total,
		Balance:       income.Sub(total),
	}
}

// Rows returns the presentation view of every entry, newest first.
func (l *Ledger) Rows() []Row {
	rows := make([]Row, len(l.entries))
	for i, e := range l.entries {
		rows[i] = Row{
			Index:       i,
			Description: e.Description,
			Category:    e.Category,
			Amount:      e.Sign() + strconv.FormatFloat(e.Amount, 'f', 2, 64),
		}
	}
	return rows
}
