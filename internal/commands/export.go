package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fluxozen/fluxozen/internal/export"
)

func newExportCommand() *cobra.Command {
	var dir string
	var month string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a month of transactions as spreadsheet CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMonth(month)
			if err != nil {
				return err
			}
			return runExport(cmd.OutOrStdout(), dir, m, output)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")
	cmd.Flags().StringVar(&month, "month", "", "month to export, YYYY-MM (default: current)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func runExport(w io.Writer, dir string, month time.Time, output string) error {
	proj, err := openProject(dir)
	if err != nil {
		return err
	}

	out := w
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	snapshot := proj.service.Snapshot()
	return export.Month(out, snapshot, month)
}
