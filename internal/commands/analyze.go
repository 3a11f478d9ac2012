package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spendwise-dev/spendwise/internal/logger"
	"github.com/spendwise-dev/spendwise/internal/report"
)

func newAnalyzeCommand() *cobra.Command {
	var stmtOpts statementOptions
	var scopeOpts scopeOptions
	var showTransactions bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Break down period spending by category and over time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(stmtOpts.verbose)
			cfg := loadConfig(stmtOpts.configPath, log)

			stmt, err := loadStatement(stmtOpts, log)
			if err != nil {
				return err
			}
			if stmt.Empty() {
				log.Warn().Msg("statement retained no spending rows")
				fmt.Fprintln(cmd.OutOrStdout(), emptyStatementNotice)
				return nil
			}

			scope, err := resolveScope(stmt, scopeOpts)
			if err != nil {
				return err
			}

			summary := report.Aggregate(stmt, scope)
			currency := cfg.Profile.Currency
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Analysis (%s)\n\n", scope.Label())

			if len(summary.Categories) == 0 {
				fmt.Fprintln(out, "No spending data for this period.")
				return nil
			}

			fmt.Fprintln(out, "Category spending:")
			tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
			for _, cs := range summary.Categories {
				fmt.Fprintf(tw, "  %s\t%s\t%s%%\n",
					cs.Category, money(currency, cs.Total), cs.Percentage.StringFixed(1))
			}
			tw.Flush()

			fmt.Fprintln(out)
			if scope.Kind == report.Monthly {
				fmt.Fprintln(out, "Weekly trend:")
			} else {
				fmt.Fprintln(out, "Monthly trend:")
			}
			tw = tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
			for _, point := range summary.Series {
				fmt.Fprintf(tw, "  %s\t%s\n", point.Label, money(currency, point.Total))
			}
			tw.Flush()

			if showTransactions {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Transactions:")
				tw = tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
				for _, txn := range report.Transactions(stmt, scope) {
					fmt.Fprintf(tw, "  %s\t%s\t%s\n",
						txn.Date.Format("2006-01-02"), txn.Category, money(currency, txn.Amount))
				}
				tw.Flush()
			}
			return nil
		},
	}

	addStatementFlags(cmd, &stmtOpts)
	addScopeFlags(cmd, &scopeOpts)
	cmd.Flags().BoolVar(&showTransactions, "transactions", false, "also list the period's transactions")
	return cmd
}
