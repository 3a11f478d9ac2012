package commands

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/spendwise-dev/spendwise/internal/forecast"
	"github.com/spendwise-dev/spendwise/internal/logger"
)

func newForecastCommand() *cobra.Command {
	var stmtOpts statementOptions
	var salary float64

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Project the next 12 months of spending and savings",
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

			// Salary priority: flag, then SPENDWISE_SALARY, then config.
			if !cmd.Flags().Changed("salary") {
				if env := os.Getenv("SPENDWISE_SALARY"); env != "" {
					if v, err := strconv.ParseFloat(env, 64); err == nil {
						salary = v
					} else {
						log.Warn().Str("value", env).Msg("ignoring unparsable SPENDWISE_SALARY")
					}
				}
				if salary == 0 {
					salary = cfg.Budget.MonthlySalary
				}
			}

			result, err := forecast.Project(stmt,
				decimal.NewFromFloat(salary),
				decimal.NewFromFloat(cfg.Budget.SavingsRate))
			if err != nil {
				return err
			}

			currency := cfg.Profile.Currency
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Spending forecast, next %d months (trend %s/month)\n\n",
				forecast.HorizonMonths, money(currency, decimal.NewFromFloat(result.Slope).Round(2)))

			tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "  Month\tSpending\tSavings\n")
			for _, point := range result.Points {
				fmt.Fprintf(tw, "  %s\t%s\t%s\n",
					point.Month.Format(),
					money(currency, point.Spending),
					money(currency, point.Savings))
			}
			fmt.Fprintf(tw, "  Total\t%s\t%s\n",
				money(currency, result.TotalSpending),
				money(currency, result.TotalSavings))
			tw.Flush()
			return nil
		},
	}

	addStatementFlags(cmd, &stmtOpts)
	cmd.Flags().Float64Var(&salary, "salary", 0, "declared monthly salary (0 = use the savings-rate heuristic)")
	return cmd
}
