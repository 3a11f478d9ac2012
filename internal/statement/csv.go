package statement

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise-dev/spendwise/internal/model"
)

// Required column names. Header cells are matched after trimming
// incidental whitespace; extra columns are ignored.
const (
	colDate     = "Date"
	colAmount   = "Amount"
	colCategory = "Category"
)

// dateLayouts are tried in order when parsing the Date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
}

// DelimitedParser parses a delimited statement export (CSV or TSV) with a
// header row naming at least Date, Amount and Category.
type DelimitedParser struct {
	format string
	comma  rune
}

// Format returns the parser name.
func (p *DelimitedParser) Format() string { return p.format }

// columns maps the required column names to their header positions.
type columns struct {
	date     int
	amount   int
	category int
}

// Parse reads the export and returns the normalized Statement. Rows with
// an unparsable date or amount are dropped and counted; rows that are not
// spending (amount <= 0, reserved category) are excluded silently.
func (p *DelimitedParser) Parse(r io.Reader) (*model.Statement, error) {
	cr := csv.NewReader(r)
	cr.Comma = p.comma
	cr.FieldsPerRecord = -1 // extra columns are allowed

	records, err := cr.ReadAll()
	if err != nil {
		return nil, formatErrorf("reading %s statement: %v", p.format, err)
	}

	if len(records) == 0 {
		return nil, formatErrorf("empty %s statement: missing header row", p.format)
	}

	cols, err := resolveColumns(records[0])
	if err != nil {
		return nil, err
	}

	stmt := &model.Statement{}
	for _, rec := range records[1:] {
		txn, ok := parseRow(rec, cols)
		if !ok {
			stmt.Dropped++
			continue
		}
		if !retain(txn) {
			continue
		}
		stmt.Transactions = append(stmt.Transactions, txn)
	}
	return stmt, nil
}

// resolveColumns locates the required columns in a header row.
func resolveColumns(header []string) (columns, error) {
	cols := columns{date: -1, amount: -1, category: -1}
	for i, cell := range header {
		switch strings.TrimSpace(cell) {
		case colDate:
			cols.date = i
		case colAmount:
			cols.amount = i
		case colCategory:
			cols.category = i
		}
	}

	var missing []string
	if cols.date < 0 {
		missing = append(missing, colDate)
	}
	if cols.amount < 0 {
		missing = append(missing, colAmount)
	}
	if cols.category < 0 {
		missing = append(missing, colCategory)
	}
	if len(missing) > 0 {
		return columns{}, formatErrorf("missing required column(s): %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

// parseRow converts one record into a Transaction. ok is false when the
// row is too short or its date or amount fails to parse.
func parseRow(rec []string, cols columns) (model.Transaction, bool) {
	need := cols.date
	if cols.amount > need {
		need = cols.amount
	}
	if cols.category > need {
		need = cols.category
	}
	if len(rec) <= need {
		return model.Transaction{}, false
	}

	date, ok := parseDate(strings.TrimSpace(rec[cols.date]))
	if !ok {
		return model.Transaction{}, false
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(rec[cols.amount]))
	if err != nil {
		return model.Transaction{}, false
	}

	category := strings.TrimSpace(rec[cols.category])
	return model.NewTransaction(date, amount, category), true
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// retain applies the spending-only view: positive amounts outside the
// reserved categories.
func retain(txn model.Transaction) bool {
	return txn.Amount.IsPositive() && !Reserved(txn.Category)
}
