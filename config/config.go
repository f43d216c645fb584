// Package config loads and validates the engine configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the complete engine configuration.
type Config struct {
	Backtest BacktestConfig `json:"backtest" yaml:"backtest"`
	Routing  RoutingConfig  `json:"routing" yaml:"routing"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
}

// BacktestConfig holds the simulator's execution assumptions.
type BacktestConfig struct {
	InitialCapital float64 `json:"initial_capital" yaml:"initial_capital"`
	Warmup         int     `json:"warmup" yaml:"warmup"`
	StopLossPct    float64 `json:"stop_loss_pct" yaml:"stop_loss_pct"`
	TakeProfitPct  float64 `json:"take_profit_pct" yaml:"take_profit_pct"`
	Allocation     float64 `json:"allocation" yaml:"allocation"`
}

// RoutingConfig is the instrument classification table used by the signal
// router: ticker -> class, and class -> preferred detector ordering.
type RoutingConfig struct {
	Classes   map[string]string   `json:"classes" yaml:"classes"`
	Preferred map[string][]string `json:"preferred" yaml:"preferred"`
}

// JournalConfig selects where signals and backtest results are stored.
type JournalConfig struct {
	Type          string `json:"type" yaml:"type"` // "csv" or "sqlite"
	SignalsFile   string `json:"signals_file,omitempty" yaml:"signals_file,omitempty"`
	BacktestsFile string `json:"backtests_file,omitempty" yaml:"backtests_file,omitempty"`
	DBPath        string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration as YAML (.yaml/.yml) or JSON.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	if c.Backtest.InitialCapital <= 0 {
		return fmt.Errorf("backtest.initial_capital must be positive")
	}
	if c.Backtest.Warmup < 0 {
		return fmt.Errorf("backtest.warmup must not be negative")
	}
	if c.Backtest.StopLossPct <= 0 || c.Backtest.StopLossPct >= 1 {
		return fmt.Errorf("backtest.stop_loss_pct must be between 0 and 1")
	}
	if c.Backtest.TakeProfitPct <= 0 {
		return fmt.Errorf("backtest.take_profit_pct must be positive")
	}
	if c.Backtest.Allocation <= 0 || c.Backtest.Allocation > 1 {
		return fmt.Errorf("backtest.allocation must be between 0 and 1")
	}
	for ticker, class := range c.Routing.Classes {
		if _, ok := c.Routing.Preferred[class]; !ok {
			return fmt.Errorf("routing: ticker %s maps to class %q with no preferred detectors", ticker, class)
		}
	}
	switch c.Journal.Type {
	case "csv":
		if c.Journal.SignalsFile == "" || c.Journal.BacktestsFile == "" {
			return fmt.Errorf("journal signals_file and backtests_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	case "":
		// Journaling disabled.
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or empty")
	}
	return nil
}

// Default returns a configuration with the standard assumptions.
func Default() *Config {
	return &Config{
		Backtest: BacktestConfig{
			InitialCapital: 10_000,
			Warmup:         50,
			StopLossPct:    0.05,
			TakeProfitPct:  0.10,
			Allocation:     0.10,
		},
		Routing: RoutingConfig{
			Classes: map[string]string{
				"TSLA":    "momentum",
				"BTC-USD": "momentum",
				"SOL-USD": "momentum",
				"AAPL":    "bluechip",
				"MSFT":    "bluechip",
				"AMZN":    "bluechip",
			},
			Preferred: map[string][]string{
				"momentum": {"bull-flag"},
				"bluechip": {"double-bottom"},
			},
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./titan.sqlite",
		},
	}
}
