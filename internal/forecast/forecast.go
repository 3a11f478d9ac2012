// Package forecast fits a linear trend to historical monthly spending and
// projects the next twelve months of spending and implied savings.
package forecast

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spendwise-dev/spendwise/internal/model"
	"github.com/spendwise-dev/spendwise/internal/period"
)

// HorizonMonths is the number of months projected past the last observed one.
const HorizonMonths = 12

// DefaultSavingsRate is applied to predicted spending when no salary is
// declared: the flat 20% heuristic.
var DefaultSavingsRate = decimal.NewFromFloat(0.2)

// InsufficientDataError reports that too few distinct months exist to fit
// a trend line. Forecasting is skipped; nothing else is affected.
type InsufficientDataError struct {
	Months int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient history for a forecast: %d distinct month(s), need at least 2", e.Months)
}

// Point is one projected month.
type Point struct {
	Index    int        // sequential month index on the regression axis
	Month    period.Key // the calendar month the index refers to
	Spending decimal.Decimal
	Savings  decimal.Decimal
}

// Result holds the twelve projected months and their yearly sums.
type Result struct {
	Points        []Point
	TotalSpending decimal.Decimal
	TotalSavings  decimal.Decimal
	Slope         float64 // fitted trend per month
	Intercept     float64
}

// Project fits an ordinary-least-squares line over the full history's
// monthly totals and predicts the next HorizonMonths months. The month
// index axis reflects true calendar distance, so months missing from the
// data leave gaps rather than being compressed out.
//
// Predicted spending is the raw trend value and may be negative. Savings
// per month: max(salary - spending, 0) when salary > 0, otherwise
// savingsRate times spending (DefaultSavingsRate when the rate is unset).
func Project(stmt *model.Statement, salary, savingsRate decimal.Decimal) (Result, error) {
	keys, totals := monthlyTotals(stmt)
	if len(keys) < 2 {
		return Result{}, &InsufficientDataError{Months: len(keys)}
	}
	if !savingsRate.IsPositive() {
		savingsRate = DefaultSavingsRate
	}

	origin := keys[0]
	xs := make([]float64, len(keys))
	ys := make([]float64, len(keys))
	for i, key := range keys {
		xs[i] = float64(key.Index(origin))
		ys[i] = totals[i].InexactFloat64()
	}

	slope, intercept := fitLine(xs, ys)
	lastIndex := keys[len(keys)-1].Index(origin)

	result := Result{
		TotalSpending: decimal.Zero,
		TotalSavings:  decimal.Zero,
		Slope:         slope,
		Intercept:     intercept,
	}
	for i := 1; i <= HorizonMonths; i++ {
		index := lastIndex + i
		spending := decimal.NewFromFloat(slope*float64(index) + intercept).Round(2)

		var savings decimal.Decimal
		if salary.IsPositive() {
			savings = salary.Sub(spending)
			if savings.IsNegative() {
				savings = decimal.Zero
			}
		} else {
			savings = spending.Mul(savingsRate).Round(2)
		}

		result.Points = append(result.Points, Point{
			Index:    index,
			Month:    origin.Add(index - 1),
			Spending: spending,
			Savings:  savings,
		})
		result.TotalSpending = result.TotalSpending.Add(spending)
		result.TotalSavings = result.TotalSavings.Add(savings)
	}
	return result, nil
}

// monthlyTotals sums spending per calendar month over the whole history,
// returned in chronological order.
func monthlyTotals(stmt *model.Statement) ([]period.Key, []decimal.Decimal) {
	byMonth := make(map[period.Key]decimal.Decimal)
	for _, txn := range stmt.Transactions {
		key := period.KeyOf(txn.Date)
		byMonth[key] = byMonth[key].Add(txn.Amount)
	}

	keys := make([]period.Key, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Before(keys[j])
	})

	totals := make([]decimal.Decimal, len(keys))
	for i, key := range keys {
		totals[i] = byMonth[key]
	}
	return keys, totals
}

// fitLine computes closed-form least squares over (xs, ys):
// slope = cov(x,y)/var(x), intercept = mean(y) - slope*mean(x).
func fitLine(xs, ys []float64) (slope, intercept float64) {
	n := float64(len(xs))
	var sumX, sumY, sumXY, sumX2 float64
	for i, x := range xs {
		sumX += x
		sumY += ys[i]
		sumXY += x * ys[i]
		sumX2 += x * x
	}
	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}
