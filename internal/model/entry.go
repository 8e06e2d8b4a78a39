// Package model defines the ledger's entry and summary types.
package model

import (
	"fmt"
	"strings"
)

// Category is the closed set of buckets an entry can belong to.
type Category int

const (
	Income Category = iota
	Fixed
	Variable
	Savings
)

// Categories lists every category in display order.
var Categories = []Category{Income, Fixed, Variable, Savings}

// ExpenseCategories lists the categories that count towards total expenses.
var ExpenseCategories = []Category{Fixed, Variable, Savings}

var categoryLabels = [...]string{
	Income:   "Income",
	Fixed:    "Fixed",
	Variable: "Variable",
	Savings:  "Savings",
}

// Labels written by the original browser app before entries were stored here.
var legacyLabels = map[string]Category{
	"ingreso":  Income,
	"fijo":     Fixed,
	"variable": Variable,
	"ahorro":   Savings,
}

// String returns the persisted label.
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryLabels[c]
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	return c >= Income && c <= Savings
}

// IsExpense reports whether entries of this category reduce the balance.
func (c Category) IsExpense() bool {
	return c.Valid() && c != Income
}

// ParseCategory resolves a label case-insensitively, accepting legacy labels.
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for c, label := range categoryLabels {
		if strings.ToLower(label) == key {
			return Category(c), nil
		}
	}
	if c, ok := legacyLabels[key]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// Entry is one recorded transaction. It has no identifier: its position in
// the ledger is its identity.
type Entry struct {
	Description string
	Amount      float64
	Category    Category
}

// Sign returns "+" for income and "-" for everything else.
func (e Entry) Sign() string {
	if e.Category == Income {
		return "+"
	}
	return "-"
}

// Signed returns the amount with the sign applied.
func (e Entry) Signed() float64 {
	if e.Category == Income {
		return e.Amount
	}
	return -e.Amount
}
