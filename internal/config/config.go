package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the default configuration file name.
const FileName = "spendwise.yaml"

// Config represents the top-level spendwise.yaml configuration.
type Config struct {
	Profile ProfileConfig `yaml:"profile"`
	Budget  BudgetConfig  `yaml:"budget"`
}

// ProfileConfig identifies whose budget this is.
type ProfileConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
}

// BudgetConfig holds the numbers the savings calculations run on.
type BudgetConfig struct {
	// MonthlySalary feeds the forecast's savings projection; 0 means
	// undeclared, which switches the forecast to the savings-rate heuristic.
	MonthlySalary float64 `yaml:"monthly_salary"`
	// SavingsRate is the fraction of spending suggested as savings.
	SavingsRate float64 `yaml:"savings_rate"`
}

// Load reads a spendwise.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new profile.
func Default(name string) *Config {
	return &Config{
		Profile: ProfileConfig{
			Name:     name,
			Currency: "USD",
		},
		Budget: BudgetConfig{
			SavingsRate: 0.20,
		},
	}
}
