package commands

import (
	"io"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fluxozen/fluxozen/internal/anomaly"
	"github.com/fluxozen/fluxozen/internal/config"
	"github.com/fluxozen/fluxozen/internal/model"
)

func newScanCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the ledger for anomalies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.OutOrStdout(), dir)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")

	return cmd
}

func rulesFromConfig(cfg config.AnomalyConfig) anomaly.Rules {
	rules := anomaly.DefaultRules()
	if cfg.OutlierHigh > 0 {
		rules.OutlierHigh = decimal.NewFromFloat(cfg.OutlierHigh)
	}
	if cfg.OutlierMedium > 0 {
		rules.OutlierMedium = decimal.NewFromFloat(cfg.OutlierMedium)
	}
	if len(cfg.CorporateAccounts) > 0 {
		rules.CorporateAccountIDs = cfg.CorporateAccounts
	}
	if cfg.CatchAllCategory != "" {
		rules.CatchAllCategory = cfg.CatchAllCategory
	}
	return rules
}

func runScan(w io.Writer, dir string) error {
	proj, err := openProject(dir)
	if err != nil {
		return err
	}

	snapshot := proj.service.Snapshot()
	anomalies := anomaly.Scan(&snapshot, nil, rulesFromConfig(proj.cfg.Anomaly))

	if len(anomalies) == 0 {
		color.New(color.FgGreen).Fprintln(w, "No anomalies found")
		return nil
	}

	for _, a := range anomalies {
		c := color.New(color.FgYellow)
		if a.Severity == model.SeverityHigh {
			c = color.New(color.FgRed, color.Bold)
		}
		desc := a.TransactionID
		for _, t := range snapshot.Transactions {
			if t.ID == a.TransactionID {
				desc = t.Description
				break
			}
		}
		c.Fprintf(w, "[%s/%s] %s: %s\n", a.Type, a.Severity, desc, a.Message)
	}
	color.New(color.Bold).Fprintf(w, "%d anomalies found\n", len(anomalies))
	return nil
}
