package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/spendwise-dev/spendwise/internal/config"
	"github.com/spendwise-dev/spendwise/internal/model"
	"github.com/spendwise-dev/spendwise/internal/period"
	"github.com/spendwise-dev/spendwise/internal/report"
	"github.com/spendwise-dev/spendwise/internal/statement"
)

// emptyStatementNotice is printed when normalization retained nothing.
// This is a warning, not a failure; the command still exits 0.
const emptyStatementNotice = "No spending transactions found in the statement (all rows were income, savings, or unparsable)."

// statementOptions are the flags shared by every command that reads an export.
type statementOptions struct {
	file       string
	configPath string
	verbose    bool
}

func addStatementFlags(cmd *cobra.Command, opts *statementOptions) {
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "bank statement export (.csv or .tsv)")
	_ = cmd.MarkFlagRequired("file")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to "+config.FileName)
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
}

// scopeOptions are the period-selection flags for summary and analyze.
type scopeOptions struct {
	year   int
	month  int
	yearly bool
	period string
}

func addScopeFlags(cmd *cobra.Command, opts *scopeOptions) {
	cmd.Flags().IntVar(&opts.year, "year", 0, "year to report on (default: most recent in the data)")
	cmd.Flags().IntVar(&opts.month, "month", 0, "month to report on, 1-12 (default: most recent in the year)")
	cmd.Flags().BoolVar(&opts.yearly, "yearly", false, "aggregate the whole year instead of one month")
	cmd.Flags().StringVar(&opts.period, "period", "", "month to report on as YYYY-MM (overrides --year/--month)")
}

// loadStatement parses and normalizes the export, logging per-row drops.
func loadStatement(opts statementOptions, log zerolog.Logger) (*model.Statement, error) {
	stmt, err := statement.DefaultRegistry().ParseFile(opts.file)
	if err != nil {
		return nil, err
	}
	if stmt.Dropped > 0 {
		log.Warn().Int("rows", stmt.Dropped).Msg("dropped rows with unparsable date or amount")
	}
	log.Debug().Int("transactions", len(stmt.Transactions)).Msg("statement normalized")
	return stmt, nil
}

// loadConfig resolves the config path (flag, SPENDWISE_CONFIG, then the
// default file name) and falls back to defaults when no file exists.
func loadConfig(path string, log zerolog.Logger) *config.Config {
	if path == "" {
		path = os.Getenv("SPENDWISE_CONFIG")
	}
	if path == "" {
		path = config.FileName
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Debug().Err(err).Msg("no config loaded, using defaults")
		return config.Default("")
	}
	log.Debug().Str("path", path).Msg("config loaded")
	return cfg
}

// resolveScope turns the year/month flags into a Scope, defaulting to the
// most recent period present in the statement.
func resolveScope(stmt *model.Statement, opts scopeOptions) (report.Scope, error) {
	if opts.period != "" {
		key, err := period.Parse(opts.period)
		if err != nil {
			return report.Scope{}, err
		}
		return report.MonthScope(key.Year, key.Month), nil
	}

	periods := report.AvailablePeriods(stmt)

	year := opts.year
	if year == 0 {
		year = periods.DefaultYear
	}
	months, ok := periods.MonthsByYear[year]
	if !ok {
		return report.Scope{}, fmt.Errorf("no transactions in year %d", year)
	}

	if opts.yearly {
		return report.YearScope(year), nil
	}

	month := opts.month
	if month == 0 {
		for _, m := range months {
			if m > month {
				month = m
			}
		}
	}
	if month < 1 || month > 12 {
		return report.Scope{}, fmt.Errorf("invalid month %d", month)
	}
	return report.MonthScope(year, month), nil
}

// money renders an amount with the configured currency.
func money(currency string, amount decimal.Decimal) string {
	if currency == "" || currency == "USD" {
		return "$" + amount.StringFixed(2)
	}
	return amount.StringFixed(2) + " " + currency
}
