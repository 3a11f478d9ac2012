package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one retained spending row from a bank statement.
// Derived calendar fields are computed once from Date and never mutated.
type Transaction struct {
	Date        time.Time
	Amount      decimal.Decimal // always positive after normalization
	Category    string
	Year        int
	Month       int // 1-12
	MonthName   string
	WeekOfMonth int // 1-5, week n covers days 7(n-1)+1 .. 7n
}

// NewTransaction builds a Transaction and fills the derived fields.
func NewTransaction(date time.Time, amount decimal.Decimal, category string) Transaction {
	return Transaction{
		Date:        date,
		Amount:      amount,
		Category:    category,
		Year:        date.Year(),
		Month:       int(date.Month()),
		MonthName:   date.Month().String(),
		WeekOfMonth: WeekOfMonth(date),
	}
}

// WeekOfMonth returns the week number of date within its month:
// days 1-7 are week 1, days 29-31 are week 5.
func WeekOfMonth(date time.Time) int {
	return (date.Day()-1)/7 + 1
}
