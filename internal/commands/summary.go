package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/spendwise-dev/spendwise/internal/advice"
	"github.com/spendwise-dev/spendwise/internal/logger"
	"github.com/spendwise-dev/spendwise/internal/report"
)

func newSummaryCommand() *cobra.Command {
	var stmtOpts statementOptions
	var scopeOpts scopeOptions

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show period totals, suggested savings, and a saving tip",
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
			rate := decimal.NewFromFloat(cfg.Budget.SavingsRate)
			suggested := summary.TotalSpent.Mul(rate).Round(2)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Summary (%s)\n\n", scope.Label())
			fmt.Fprintf(out, "  Total spent:       %s\n", money(cfg.Profile.Currency, summary.TotalSpent))
			fmt.Fprintf(out, "  Suggested savings: %s (%s%%)\n\n",
				money(cfg.Profile.Currency, suggested),
				rate.Mul(decimal.NewFromInt(100)).String())
			fmt.Fprintf(out, "Saving tip:\n  %s\n", advice.Generate(summary))
			return nil
		},
	}

	addStatementFlags(cmd, &stmtOpts)
	addScopeFlags(cmd, &scopeOpts)
	return cmd
}
