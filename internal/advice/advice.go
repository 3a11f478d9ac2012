// Package advice turns a period's category ranking into a single saving tip.
package advice

import (
	"strings"

	"github.com/spendwise-dev/spendwise/internal/report"
)

// Messages for the degenerate cases.
const (
	NoDataMessage       = "No spending data available for this period to generate a specific tip."
	NoCategoriesMessage = "No categorized spending found. Start by categorizing your transactions!"
)

// Generate composes the saving tip for a period summary: it names the top
// two spending categories, then appends the tip for the top category (or
// the generic tip when the category is unknown). Pure and deterministic.
func Generate(summary report.Summary) string {
	if summary.TotalSpent.IsZero() {
		return NoDataMessage
	}
	if len(summary.Categories) == 0 {
		return NoCategoriesMessage
	}

	top := summary.Categories
	if len(top) > 2 {
		top = top[:2]
	}
	names := make([]string, len(top))
	for i, cs := range top {
		names[i] = cs.Category
	}

	tip, ok := categoryTips[top[0].Category]
	if !ok {
		tip = genericTip
	}

	return "Focus on reducing spending in your top categories: " +
		strings.Join(names, " and ") + ". " + tip
}
