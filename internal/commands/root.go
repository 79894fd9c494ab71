// Package commands wires the CLI surface: project setup, statement
// import, anomaly scan, monthly report, and CSV export.
package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fluxozen/fluxozen/internal/buildinfo"
	"github.com/fluxozen/fluxozen/internal/config"
	"github.com/fluxozen/fluxozen/internal/ledger"
	"github.com/fluxozen/fluxozen/internal/store"
)

const configFile = "fluxozen.yaml"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "fluxozen",
		Short:   "Cash-flow dashboard for small businesses",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newExportCommand())

	return rootCmd
}

// project holds everything a subcommand needs once the config is
// loaded.
type project struct {
	dir     string
	cfg     *config.Config
	service *ledger.Service
}

func openProject(dir string) (*project, error) {
	cfg, err := config.Load(filepath.Join(dir, configFile))
	if err != nil {
		return nil, fmt.Errorf("not a fluxozen project (run 'fluxozen init'): %w", err)
	}

	st := store.NewFile(filepath.Join(dir, cfg.Data.Dir))
	svc, err := ledger.NewService(st)
	if err != nil {
		return nil, err
	}

	return &project{dir: dir, cfg: cfg, service: svc}, nil
}
