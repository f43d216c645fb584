package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/titanalgo/titan/config"
	"github.com/titanalgo/titan/journal"
)

var (
	cfgPath string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "titan",
	Short: "Technical-analysis signal detection and backtest simulation engine",
	Long: `Titan ingests ordered OHLCV bar series and produces trading signals and
backtest simulations.

It provides tools for:
  - Scanning an instrument for the highest-priority pattern signal
  - Replaying a strategy bar-by-bar to produce an equity curve and metrics
  - Running nightly-style batches over many (instrument, strategy) pairs
  - Journaling signals and results to SQLite or CSV`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is fine; explicit config errors are not.
		_ = godotenv.Load()

		if cfgPath == "" {
			cfg = config.Default()
			return nil
		}
		loaded, err := config.LoadFromFile(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to YAML/JSON config file")
}

// openJournal builds the configured journal, or returns (nil, nil) when
// journaling is disabled.
func openJournal() (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	case "csv":
		return journal.NewCSV(cfg.Journal.SignalsFile, cfg.Journal.BacktestsFile)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown journal type %q", cfg.Journal.Type)
	}
}
