package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fluxozen/fluxozen/internal/export"
	"github.com/fluxozen/fluxozen/internal/metrics"
)

func newReportCommand() *cobra.Command {
	var dir string
	var month string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the monthly cash-flow summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMonth(month)
			if err != nil {
				return err
			}
			return runReport(cmd.OutOrStdout(), dir, m)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")
	cmd.Flags().StringVar(&month, "month", "", "month to report, YYYY-MM (default: current)")

	return cmd
}

func parseMonth(s string) (time.Time, error) {
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	m, err := time.ParseInLocation("2006-01", s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, want YYYY-MM", s)
	}
	return m, nil
}

func runReport(w io.Writer, dir string, month time.Time) error {
	proj, err := openProject(dir)
	if err != nil {
		return err
	}

	snapshot := proj.service.Snapshot()

	total := metrics.TotalBalance(snapshot.Accounts, snapshot.Transactions)
	income := metrics.MonthlyIncome(snapshot.Transactions, month)
	expense := metrics.MonthlyExpense(snapshot.Transactions, month)
	fixed := metrics.FixedCostProjection(snapshot.Transactions, month)
	safe := metrics.SafeBalance(total, snapshot.Transactions, time.Now().UTC())
	runway := metrics.RunwayMonths(total, fixed)

	bold := color.New(color.Bold)
	bold.Fprintf(w, "%s - %s\n", proj.cfg.Business.Name, month.Format("January 2006"))

	fmt.Fprintf(w, "Total balance:   %s\n", export.FormatBRL(total))
	color.New(color.FgGreen).Fprintf(w, "Income:          %s\n", export.FormatBRL(income))
	color.New(color.FgRed).Fprintf(w, "Expenses:        %s\n", export.FormatBRL(expense))
	fmt.Fprintf(w, "Fixed costs:     %s\n", export.FormatBRL(fixed))
	fmt.Fprintf(w, "Safe to spend:   %s\n", export.FormatBRL(safe))
	if fixed.IsPositive() {
		fmt.Fprintf(w, "Runway:          %d months\n", runway)
	}

	for _, a := range snapshot.Accounts {
		balance := metrics.AccountBalance(a, snapshot.Transactions)
		fmt.Fprintf(w, "  %-20s %s\n", a.Name, export.FormatBRL(balance))
	}
	return nil
}
