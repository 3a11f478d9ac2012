package report

import (
	"sort"

	"github.com/spendwise-dev/spendwise/internal/model"
)

// Periods describes the year/month selectors available for a statement.
type Periods struct {
	Years        []int         // descending
	MonthsByYear map[int][]int // months per year, in order of first occurrence
	DefaultYear  int           // most recent year present
	DefaultMonth int           // highest month number within DefaultYear
}

// AvailablePeriods scans the statement for the years and months that have
// data. The default selection is the most recent year and, within it, the
// most recent month. An empty statement yields a zero Periods.
func AvailablePeriods(stmt *model.Statement) Periods {
	if stmt.Empty() {
		return Periods{MonthsByYear: map[int][]int{}}
	}

	monthsByYear := make(map[int][]int)
	seen := make(map[[2]int]bool)
	for _, txn := range stmt.Transactions {
		key := [2]int{txn.Year, txn.Month}
		if seen[key] {
			continue
		}
		seen[key] = true
		monthsByYear[txn.Year] = append(monthsByYear[txn.Year], txn.Month)
	}

	years := make([]int, 0, len(monthsByYear))
	for year := range monthsByYear {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	latest := years[0]
	latestMonth := 0
	for _, month := range monthsByYear[latest] {
		if month > latestMonth {
			latestMonth = month
		}
	}

	return Periods{
		Years:        years,
		MonthsByYear: monthsByYear,
		DefaultYear:  latest,
		DefaultMonth: latestMonth,
	}
}
