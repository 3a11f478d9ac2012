package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise-dev/spendwise/internal/model"
)

// ScopeKind selects the aggregation period.
type ScopeKind string

const (
	Monthly ScopeKind = "monthly"
	Yearly  ScopeKind = "yearly"
)

// Scope is the period a summary is computed over: a specific month, or a
// whole calendar year.
type Scope struct {
	Kind  ScopeKind
	Year  int
	Month int // 1-12, used by Monthly only
}

// MonthScope returns a Scope covering one calendar month.
func MonthScope(year, month int) Scope {
	return Scope{Kind: Monthly, Year: year, Month: month}
}

// YearScope returns a Scope covering one calendar year.
func YearScope(year int) Scope {
	return Scope{Kind: Yearly, Year: year}
}

// Contains reports whether txn falls inside the scope.
func (s Scope) Contains(txn model.Transaction) bool {
	if txn.Year != s.Year {
		return false
	}
	return s.Kind != Monthly || txn.Month == s.Month
}

// Label renders the scope for display, e.g. "January 2025" or "2025".
func (s Scope) Label() string {
	if s.Kind == Monthly {
		return fmt.Sprintf("%s %d", time.Month(s.Month).String(), s.Year)
	}
	return fmt.Sprintf("%d", s.Year)
}

// CategorySummary is one category's share of the scoped spending.
type CategorySummary struct {
	Category   string
	Total      decimal.Decimal
	Percentage decimal.Decimal // of the scope total, 0-100
}

// SeriesPoint is one bucket of the scoped time series: a week of the
// month for Monthly scopes, a calendar month for Yearly scopes. Buckets
// with no transactions are omitted.
type SeriesPoint struct {
	Bucket int
	Label  string
	Total  decimal.Decimal
}

// Summary is the aggregated view of one scope.
type Summary struct {
	Scope      Scope
	TotalSpent decimal.Decimal
	Categories []CategorySummary // total desc, category name asc on ties
	Series     []SeriesPoint     // bucket asc
}

// Aggregate computes the Summary for a scope. An empty scope is a valid
// result with zero totals and no category entries.
func Aggregate(stmt *model.Statement, scope Scope) Summary {
	total := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	byBucket := make(map[int]decimal.Decimal)

	for _, txn := range stmt.Transactions {
		if !scope.Contains(txn) {
			continue
		}
		total = total.Add(txn.Amount)
		byCategory[txn.Category] = byCategory[txn.Category].Add(txn.Amount)

		bucket := txn.WeekOfMonth
		if scope.Kind == Yearly {
			bucket = txn.Month
		}
		byBucket[bucket] = byBucket[bucket].Add(txn.Amount)
	}

	return Summary{
		Scope:      scope,
		TotalSpent: total,
		Categories: rankCategories(byCategory, total),
		Series:     bucketSeries(byBucket, scope.Kind),
	}
}

// Transactions returns the scoped transactions sorted by date. Row order
// within a day follows the statement.
func Transactions(stmt *model.Statement, scope Scope) []model.Transaction {
	var txns []model.Transaction
	for _, txn := range stmt.Transactions {
		if scope.Contains(txn) {
			txns = append(txns, txn)
		}
	}
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.Before(txns[j].Date)
	})
	return txns
}

// rankCategories orders categories by total descending; exact ties break
// on category name ascending so top-N selection is reproducible.
func rankCategories(byCategory map[string]decimal.Decimal, total decimal.Decimal) []CategorySummary {
	summaries := make([]CategorySummary, 0, len(byCategory))
	for category, amount := range byCategory {
		cs := CategorySummary{Category: category, Total: amount}
		if total.IsPositive() {
			cs.Percentage = amount.Div(total).Mul(decimal.NewFromInt(100))
		}
		summaries = append(summaries, cs)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if c := summaries[i].Total.Cmp(summaries[j].Total); c != 0 {
			return c > 0
		}
		return summaries[i].Category < summaries[j].Category
	})
	return summaries
}

func bucketSeries(byBucket map[int]decimal.Decimal, kind ScopeKind) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(byBucket))
	for bucket, amount := range byBucket {
		label := fmt.Sprintf("Week %d", bucket)
		if kind == Yearly {
			label = time.Month(bucket).String()
		}
		points = append(points, SeriesPoint{Bucket: bucket, Label: label, Total: amount})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Bucket < points[j].Bucket
	})
	return points
}
