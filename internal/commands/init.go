package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fluxozen/fluxozen/internal/config"
	"github.com/fluxozen/fluxozen/internal/seed"
	"github.com/fluxozen/fluxozen/internal/store"
)

func newInitCommand() *cobra.Command {
	var name string
	var entityType string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new FluxoZen project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, entityType)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&entityType, "entity-type", "mei", "entity type")

	return cmd
}

func runInit(dir, name, entityType string) error {
	cfg := config.Default(name, entityType)

	dirs := []string{cfg.Data.Dir, "logs", "import"}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(filepath.Join(dir, configFile), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := seed.Apply(store.NewFile(filepath.Join(dir, cfg.Data.Dir))); err != nil {
		return fmt.Errorf("seeding ledger: %w", err)
	}

	fmt.Printf("Initialized FluxoZen project at %s\n", dir)
	return nil
}
