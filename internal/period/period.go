package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Key identifies one calendar month, the aggregation grain for summaries
// and the forecast's time axis.
type Key struct {
	Year  int
	Month int // 1-12
}

// KeyOf returns the Key for a date.
func KeyOf(date time.Time) Key {
	return Key{Year: date.Year(), Month: int(date.Month())}
}

// Format returns a key like "2025-01".
func (k Key) Format() string {
	return fmt.Sprintf("%04d-%02d", k.Year, k.Month)
}

// MonthName returns the full calendar month name, e.g. "January".
func (k Key) MonthName() string {
	return time.Month(k.Month).String()
}

// Before reports whether k is chronologically before other.
func (k Key) Before(other Key) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// Add returns the key n calendar months after k (n may be negative).
func (k Key) Add(n int) Key {
	m := k.Year*12 + (k.Month - 1) + n
	return Key{Year: m / 12, Month: m%12 + 1}
}

// Index returns the 1-based calendar distance of k from origin:
// origin itself is 1, the next calendar month is 2, and so on. Months
// absent from the data still advance the index, so gaps in history show
// up as gaps on the regression axis.
func (k Key) Index(origin Key) int {
	return (k.Year-origin.Year)*12 + (k.Month - origin.Month) + 1
}

// Parse parses a key like "2025-01".
func Parse(s string) (Key, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return Key{}, fmt.Errorf("invalid period format: %q", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Key{}, fmt.Errorf("invalid year in period %q: %w", s, err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Key{}, fmt.Errorf("invalid month in period %q: %w", s, err)
	}
	if month < 1 || month > 12 {
		return Key{}, fmt.Errorf("month out of range in period %q", s)
	}

	return Key{Year: year, Month: month}, nil
}
