package model

import "github.com/shopspring/decimal"

// Aggregate holds the per-category totals derived from a ledger. It is never
// stored; callers recompute it after every mutation.
type Aggregate struct {
	Income        decimal.Decimal
	Fixed         decimal.Decimal
	Variable      decimal.Decimal
	Savings       decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
}

// Total returns the sum for a single category.
func (a Aggregate) Total(c Category) decimal.Decimal {
	switch c {
	case Income:
		return a.Income
	case Fixed:
		return a.Fixed
	case Variable:
		return a.Variable
	case Savings:
		return a.Savings
	}
	return decimal.Zero
}

// Share returns the fraction of total expenses taken by c, in [0, 1].
// Income and an empty expense total both yield 0.
func (a Aggregate) Share(c Category) float64 {
	if !c.IsExpense() || a.TotalExpenses.IsZero() {
		return 0
	}
	f, _ := a.Total(c).Div(a.TotalExpenses).Float64()
	return f
}

// Negative reports whether expenses exceed income.
func (a Aggregate) Negative() bool {
	return a.Balance.IsNegative()
}
