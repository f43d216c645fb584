package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/titanalgo/titan/journal"
	"github.com/titanalgo/titan/market"
	"github.com/titanalgo/titan/pkg/id"
	"github.com/titanalgo/titan/sentiment"
	"github.com/titanalgo/titan/signals"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan an instrument for the highest-priority signal",
	Long: `Scan evaluates every pattern detector over a bar series and prints the
single best signal after instrument-class routing, priority selection and
normalization.

Example:
  titan scan --bars data/tsla.csv --ticker TSLA`,
	RunE: runScan,
}

var (
	scanBarsPath string
	scanTicker   string
	scanNews     bool
)

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanBarsPath, "bars", "b", "", "path to bar CSV (time,open,high,low,close[,volume]) (required)")
	scanCmd.Flags().StringVarP(&scanTicker, "ticker", "t", "", "instrument ticker (required)")
	scanCmd.Flags().BoolVar(&scanNews, "news", false, "fetch live news sentiment (otherwise use the offline fallback)")

	scanCmd.MarkFlagRequired("bars")
	scanCmd.MarkFlagRequired("ticker")
}

func runScan(cmd *cobra.Command, args []string) error {
	series, err := market.LoadCSV(scanBarsPath)
	if err != nil {
		return fmt.Errorf("load bars: %w", err)
	}

	var provider signals.SentimentProvider
	if scanNews {
		provider = sentiment.NewNews()
	}

	router := signals.NewRouter(provider)
	if len(cfg.Routing.Classes) > 0 {
		router.Classes = cfg.Routing.Classes
		router.Preferred = cfg.Routing.Preferred
	}

	sig, ok := router.SelectBest(context.Background(), scanTicker, series)
	if !ok {
		fmt.Printf("No signal for %s (%d bars)\n", scanTicker, len(series))
		return nil
	}

	fmt.Printf("Signal for %s\n", scanTicker)
	fmt.Printf("  Type:        %s\n", sig.Type)
	fmt.Printf("  Strategy:    %s\n", sig.Strategy)
	fmt.Printf("  Confidence:  %d\n", sig.Confidence)
	fmt.Printf("  Entry:       %.4f\n", sig.Entry)
	fmt.Printf("  Stop Loss:   %.4f\n", *sig.StopLoss)
	fmt.Printf("  Take Profit: %.4f\n", *sig.TakeProfit)
	fmt.Printf("  Reasoning:   %s\n", sig.Reasoning)

	j, err := openJournal()
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	if j == nil {
		return nil
	}
	defer j.Close()

	return j.RecordSignal(journal.SignalRecord{
		ID:        id.New(),
		Ticker:    scanTicker,
		Signal:    sig,
		CreatedAt: time.Now().UTC(),
	})
}
