package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/titanalgo/titan/backtest"
	"github.com/titanalgo/titan/journal"
	"github.com/titanalgo/titan/market"
	"github.com/titanalgo/titan/pkg/id"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run every strategy over every bar file in a directory",
	Long: `Batch runs the nightly-style sweep: every (instrument, strategy) pair is
simulated independently. The ticker is taken from each file's base name. A
failing pair is reported and skipped; it never aborts the rest of the batch.

Example:
  titan batch --dir ./data`,
	RunE: runBatch,
}

var batchDir string

var batchStrategies = []string{"macd-cross", "rsi-divergence", "turtle-breakout", "ichimoku"}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "directory of bar CSV files (required)")
	batchCmd.MarkFlagRequired("dir")
}

func runBatch(cmd *cobra.Command, args []string) error {
	paths, err := filepath.Glob(filepath.Join(batchDir, "*.csv"))
	if err != nil {
		return err
	}
	xzPaths, err := filepath.Glob(filepath.Join(batchDir, "*.csv.xz"))
	if err != nil {
		return err
	}
	paths = append(paths, xzPaths...)
	if len(paths) == 0 {
		return fmt.Errorf("no bar files found in %s", batchDir)
	}

	j, err := openJournal()
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	if j != nil {
		defer j.Close()
	}

	btCfg := backtest.Config{
		InitialCapital: cfg.Backtest.InitialCapital,
		Warmup:         cfg.Backtest.Warmup,
		StopLossPct:    cfg.Backtest.StopLossPct,
		TakeProfitPct:  cfg.Backtest.TakeProfitPct,
		Allocation:     cfg.Backtest.Allocation,
	}
	engine := backtest.NewEngine(btCfg)

	ran, failed, skipped := 0, 0, 0
	for _, path := range paths {
		ticker := tickerFromPath(path)

		series, err := market.LoadCSV(path)
		if err != nil {
			fmt.Printf("SKIP %s: %v\n", path, err)
			failed++
			continue
		}

		for _, name := range batchStrategies {
			rule, err := backtest.RuleByName(name, series)
			if err != nil {
				return err
			}

			res, err := engine.Run(ticker, series, rule)
			if err != nil {
				fmt.Printf("FAIL %s/%s: %v\n", ticker, name, err)
				failed++
				continue
			}
			if res == nil {
				skipped++
				continue
			}

			ran++
			fmt.Printf("OK   %s/%s: return %.2f%%, %d trades, max DD %.2f%%\n",
				ticker, name, res.TotalReturnPct, res.Metrics.TotalTrades, res.Metrics.MaxDrawdownPct)

			if j != nil {
				if err := j.RecordBacktest(journal.BacktestRecord{
					RunID:     id.New(),
					CreatedAt: time.Now().UTC(),
					Result:    res,
				}); err != nil {
					fmt.Printf("WARN %s/%s: journal: %v\n", ticker, name, err)
				}
			}
		}
	}

	fmt.Printf("\nBatch done: %d runs, %d skipped (insufficient data), %d failed\n", ran, skipped, failed)
	return nil
}

func tickerFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".xz")
	base = strings.TrimSuffix(base, ".csv")
	return strings.ToUpper(base)
}
