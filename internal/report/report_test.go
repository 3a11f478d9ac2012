package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendwise-dev/spendwise/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func txn(y, m, d int, amount, category string) model.Transaction {
	return model.NewTransaction(date(y, m, d), dec(amount), category)
}

func stmt(txns ...model.Transaction) *model.Statement {
	return &model.Statement{Transactions: txns}
}

func TestAggregate_MonthTotalAndTopCategory(t *testing.T) {
	s := stmt(
		txn(2024, 1, 5, "50", "Groceries"),
		txn(2024, 1, 20, "30", "Restaurants"),
	)

	got := Aggregate(s, MonthScope(2024, 1))
	assert.True(t, got.TotalSpent.Equal(dec("80")), "total: %s", got.TotalSpent)
	require.Len(t, got.Categories, 2)
	assert.Equal(t, "Groceries", got.Categories[0].Category)
	assert.True(t, got.Categories[0].Total.Equal(dec("50")))
}

func TestAggregate_CategoriesPartitionTotal(t *testing.T) {
	s := stmt(
		txn(2025, 3, 2, "19.99", "Entertainment"),
		txn(2025, 3, 9, "123.45", "Groceries"),
		txn(2025, 3, 12, "67.89", "Groceries"),
		txn(2025, 3, 20, "45.10", "Transport"),
	)

	got := Aggregate(s, MonthScope(2025, 3))

	sum := decimal.Zero
	for _, cs := range got.Categories {
		sum = sum.Add(cs.Total)
	}
	assert.True(t, sum.Equal(got.TotalSpent), "category totals must partition total: %s vs %s", sum, got.TotalSpent)
}

func TestAggregate_PercentagesSumTo100(t *testing.T) {
	s := stmt(
		txn(2025, 3, 2, "33.33", "A"),
		txn(2025, 3, 9, "33.33", "B"),
		txn(2025, 3, 12, "33.34", "C"),
	)

	got := Aggregate(s, MonthScope(2025, 3))

	sum := decimal.Zero
	for _, cs := range got.Categories {
		sum = sum.Add(cs.Percentage)
	}
	diff := sum.Sub(dec("100")).Abs()
	assert.True(t, diff.LessThan(dec("0.0001")), "percentages sum to %s", sum)
}

func TestAggregate_TieBreaksOnCategoryName(t *testing.T) {
	s := stmt(
		txn(2025, 3, 2, "40", "Transport"),
		txn(2025, 3, 9, "40", "Groceries"),
		txn(2025, 3, 12, "40", "Entertainment"),
	)

	got := Aggregate(s, MonthScope(2025, 3))
	require.Len(t, got.Categories, 3)
	assert.Equal(t, "Entertainment", got.Categories[0].Category)
	assert.Equal(t, "Groceries", got.Categories[1].Category)
	assert.Equal(t, "Transport", got.Categories[2].Category)

	// Re-aggregating identical input yields identical ordering.
	again := Aggregate(s, MonthScope(2025, 3))
	assert.Equal(t, got.Categories, again.Categories)
}

func TestAggregate_WeeklySeries(t *testing.T) {
	s := stmt(
		txn(2025, 3, 1, "10", "Groceries"),  // week 1
		txn(2025, 3, 7, "5", "Groceries"),   // week 1
		txn(2025, 3, 8, "20", "Transport"),  // week 2
		txn(2025, 3, 29, "30", "Groceries"), // week 5
	)

	got := Aggregate(s, MonthScope(2025, 3))
	require.Len(t, got.Series, 3, "weeks without data are omitted")
	assert.Equal(t, 1, got.Series[0].Bucket)
	assert.True(t, got.Series[0].Total.Equal(dec("15")))
	assert.Equal(t, "Week 2", got.Series[1].Label)
	assert.Equal(t, 5, got.Series[2].Bucket)
}

func TestAggregate_YearlySeriesInCalendarOrder(t *testing.T) {
	s := stmt(
		txn(2024, 12, 5, "100", "Rent"),
		txn(2024, 2, 5, "80", "Rent"),
		txn(2024, 9, 5, "90", "Rent"),
	)

	got := Aggregate(s, YearScope(2024))
	require.Len(t, got.Series, 3)
	assert.Equal(t, []int{2, 9, 12}, []int{got.Series[0].Bucket, got.Series[1].Bucket, got.Series[2].Bucket})
	assert.Equal(t, "February", got.Series[0].Label)
	assert.True(t, got.TotalSpent.Equal(dec("270")))
}

func TestAggregate_EmptyScope(t *testing.T) {
	s := stmt(txn(2024, 1, 5, "50", "Groceries"))

	got := Aggregate(s, MonthScope(2024, 6))
	assert.True(t, got.TotalSpent.IsZero())
	assert.Empty(t, got.Categories)
	assert.Empty(t, got.Series)
}

func TestAggregate_ScopeExcludesOtherPeriods(t *testing.T) {
	s := stmt(
		txn(2024, 1, 5, "50", "Groceries"),
		txn(2024, 2, 5, "70", "Groceries"),
		txn(2025, 1, 5, "90", "Groceries"),
	)

	assert.True(t, Aggregate(s, MonthScope(2024, 1)).TotalSpent.Equal(dec("50")))
	assert.True(t, Aggregate(s, YearScope(2024)).TotalSpent.Equal(dec("120")))
}

func TestTransactions_SortedByDate(t *testing.T) {
	s := stmt(
		txn(2025, 3, 20, "30", "Transport"),
		txn(2025, 3, 2, "10", "Groceries"),
		txn(2025, 4, 1, "99", "Rent"),
		txn(2025, 3, 11, "20", "Restaurants"),
	)

	got := Transactions(s, MonthScope(2025, 3))
	require.Len(t, got, 3)
	assert.Equal(t, 2, got[0].Date.Day())
	assert.Equal(t, 11, got[1].Date.Day())
	assert.Equal(t, 20, got[2].Date.Day())
}

func TestScopeLabel(t *testing.T) {
	assert.Equal(t, "January 2025", MonthScope(2025, 1).Label())
	assert.Equal(t, "2024", YearScope(2024).Label())
}
