package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fluxozen/fluxozen/internal/auditlog"
	"github.com/fluxozen/fluxozen/internal/export"
	"github.com/fluxozen/fluxozen/internal/reconcile"
	"github.com/fluxozen/fluxozen/internal/statement"
)

func newImportCommand() *cobra.Command {
	var dir string
	var accountID string

	cmd := &cobra.Command{
		Use:   "import <statement-file>",
		Short: "Import a bank statement (CSV or OFX) into the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.OutOrStdout(), dir, args[0], accountID)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")
	cmd.Flags().StringVar(&accountID, "account", "acc_main", "target account id")

	return cmd
}

func runImport(w io.Writer, dir, path, accountID string) error {
	proj, err := openProject(dir)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading statement: %w", err)
	}

	candidates, err := statement.Parse(string(data), filepath.Base(path))
	if err != nil {
		return err
	}

	snapshot := proj.service.Snapshot()
	if _, ok := snapshot.AccountByID(accountID); !ok {
		return fmt.Errorf("account %s not found", accountID)
	}

	for _, draft := range reconcile.MissingImportCategories(snapshot.Categories) {
		if _, err := proj.service.AddCategory(draft); err != nil {
			return fmt.Errorf("creating import category: %w", err)
		}
	}
	snapshot = proj.service.Snapshot()

	drafts, err := reconcile.Reconcile(candidates, accountID, snapshot.Categories)
	if err != nil {
		return err
	}

	committed, err := proj.service.ImportTransactions(drafts)
	if err != nil {
		return err
	}

	entries := make([]auditlog.Entry, len(committed))
	for i, t := range committed {
		entries[i] = auditlog.Entry{
			Timestamp: time.Now().UTC(),
			Action:    auditlog.ActionImport,
			Entity:    "transaction",
			EntityID:  t.ID,
			Details:   fmt.Sprintf("%s %s from %s", t.Date.Format("2006-01-02"), export.FormatBRL(t.Amount), filepath.Base(path)),
		}
	}
	if err := auditlog.Append(dir, entries); err != nil {
		return fmt.Errorf("writing audit log: %w", err)
	}

	color.New(color.FgGreen).Fprintf(w, "Imported %d transactions into %s\n", len(committed), accountID)
	return nil
}
