package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendwise-dev/spendwise/internal/logger"
	"github.com/spendwise-dev/spendwise/internal/report"
)

func newPeriodsCommand() *cobra.Command {
	var stmtOpts statementOptions

	cmd := &cobra.Command{
		Use:   "periods",
		Short: "List the years and months present in a statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(stmtOpts.verbose)

			stmt, err := loadStatement(stmtOpts, log)
			if err != nil {
				return err
			}
			if stmt.Empty() {
				log.Warn().Msg("statement retained no spending rows")
				fmt.Fprintln(cmd.OutOrStdout(), emptyStatementNotice)
				return nil
			}

			periods := report.AvailablePeriods(stmt)
			out := cmd.OutOrStdout()
			for _, year := range periods.Years {
				names := make([]string, len(periods.MonthsByYear[year]))
				for i, m := range periods.MonthsByYear[year] {
					names[i] = time.Month(m).String()
				}
				fmt.Fprintf(out, "%d: %s\n", year, strings.Join(names, ", "))
			}
			fmt.Fprintf(out, "\nDefault: %s %d\n",
				time.Month(periods.DefaultMonth).String(), periods.DefaultYear)
			return nil
		},
	}

	addStatementFlags(cmd, &stmtOpts)
	return cmd
}
