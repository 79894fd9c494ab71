package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level fluxozen.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Data     DataConfig     `yaml:"data"`
	Anomaly  AnomalyConfig  `yaml:"anomaly"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name       string `yaml:"name"`
	EntityType string `yaml:"entity_type"`
}

// DataConfig locates the ledger CSV tables on disk.
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// AnomalyConfig tunes the anomaly scan.
type AnomalyConfig struct {
	OutlierHigh       float64  `yaml:"outlier_high"`
	OutlierMedium     float64  `yaml:"outlier_medium"`
	CorporateAccounts []string `yaml:"corporate_accounts"`
	CatchAllCategory  string   `yaml:"catch_all_category"`
}

// Load reads a fluxozen.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName, entityType string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:       businessName,
			EntityType: entityType,
		},
		Data: DataConfig{
			Dir: "data",
		},
		Anomaly: AnomalyConfig{
			OutlierHigh:       10000,
			OutlierMedium:     3000,
			CorporateAccounts: []string{"acc_main", "acc_business"},
			CatchAllCategory:  "Other",
		},
	}
}
