package cmd

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/titanalgo/titan/backtest"
	"github.com/titanalgo/titan/journal"
	"github.com/titanalgo/titan/market"
	"github.com/titanalgo/titan/pkg/id"
)

var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Replay a strategy over historical bars",
	Long: `Backtest replays a strategy's buy/sell conditions bar-by-bar and reports
the equity curve summary, trade ledger and performance metrics.

Supported strategies:
  - macd-cross:      MACD histogram zero-crossing
  - rsi-divergence:  RSI below 30 buys, above 70 sells
  - turtle-breakout: 20-bar channel breakout
  - ichimoku:        Tenkan/Kijun cross

Example:
  titan backtest --bars data/tsla.csv --ticker TSLA --strategy macd-cross`,
	RunE: runBacktestCmd,
}

var (
	btBarsPath string
	btTicker   string
	btStrategy string
	btCapital  float64
)

func init() {
	rootCmd.AddCommand(backtestCmd)

	backtestCmd.Flags().StringVarP(&btBarsPath, "bars", "b", "", "path to bar CSV (required)")
	backtestCmd.Flags().StringVarP(&btTicker, "ticker", "t", "", "instrument ticker (required)")
	backtestCmd.Flags().StringVarP(&btStrategy, "strategy", "s", "macd-cross", "strategy name")
	backtestCmd.Flags().Float64Var(&btCapital, "capital", 0, "initial capital (overrides config)")

	backtestCmd.MarkFlagRequired("bars")
	backtestCmd.MarkFlagRequired("ticker")
}

func runBacktestCmd(cmd *cobra.Command, args []string) error {
	series, err := market.LoadCSV(btBarsPath)
	if err != nil {
		return fmt.Errorf("load bars: %w", err)
	}

	rule, err := backtest.RuleByName(btStrategy, series)
	if err != nil {
		return err
	}

	btCfg := backtest.Config{
		InitialCapital: cfg.Backtest.InitialCapital,
		Warmup:         cfg.Backtest.Warmup,
		StopLossPct:    cfg.Backtest.StopLossPct,
		TakeProfitPct:  cfg.Backtest.TakeProfitPct,
		Allocation:     cfg.Backtest.Allocation,
	}
	if btCapital > 0 {
		btCfg.InitialCapital = btCapital
	}

	res, err := backtest.NewEngine(btCfg).Run(btTicker, series, rule)
	if err != nil {
		return err
	}
	if res == nil {
		fmt.Printf("Not enough bars for %s: have %d, need more than %d\n",
			btTicker, len(series), btCfg.Warmup)
		return nil
	}

	printResult(res)

	j, err := openJournal()
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	if j == nil {
		return nil
	}
	defer j.Close()

	return j.RecordBacktest(journal.BacktestRecord{
		RunID:     id.New(),
		CreatedAt: time.Now().UTC(),
		Result:    res,
	})
}

func printResult(res *backtest.Result) {
	fmt.Printf("Backtest Complete: %s / %s\n", res.Ticker, res.Strategy)
	fmt.Printf("  Initial Capital: $%.2f\n", res.InitialCapital)
	fmt.Printf("  Final Capital:   $%.2f\n", res.FinalCapital)
	fmt.Printf("  Total Return:    %.2f%%\n", res.TotalReturnPct)
	fmt.Printf("  Trades:          %d\n", res.Metrics.TotalTrades)
	fmt.Printf("  Win Rate:        %.1f%%\n", res.Metrics.WinRatePct)
	if math.IsInf(res.Metrics.ProfitFactor, 1) {
		fmt.Printf("  Profit Factor:   inf (no losing trades)\n")
	} else {
		fmt.Printf("  Profit Factor:   %.2f\n", res.Metrics.ProfitFactor)
	}
	fmt.Printf("  Sharpe Ratio:    %.2f\n", res.Metrics.SharpeRatio)
	fmt.Printf("  Max Drawdown:    %.2f%%\n", res.Metrics.MaxDrawdownPct)
}
