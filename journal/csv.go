package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

// CSVJournal appends signals and backtest summaries to two CSV files.
type CSVJournal struct {
	signals   *csv.Writer
	backtests *csv.Writer
	sf, bf    *os.File
}

func NewCSV(signalsPath, backtestsPath string) (*CSVJournal, error) {
	sf, err := os.Create(signalsPath)
	if err != nil {
		return nil, err
	}
	bf, err := os.Create(backtestsPath)
	if err != nil {
		sf.Close()
		return nil, err
	}

	sw := csv.NewWriter(sf)
	bw := csv.NewWriter(bf)

	if err := sw.Write([]string{"signal_id", "ticker", "type", "confidence", "entry", "stop_loss", "take_profit", "strategy", "reasoning", "indicator", "created_at"}); err != nil {
		return nil, err
	}
	if err := bw.Write([]string{"run_id", "ticker", "strategy", "initial_capital", "final_capital", "total_return_pct", "total_pnl", "win_rate_pct", "total_trades", "profit_factor", "sharpe_ratio", "max_drawdown_pct", "created_at"}); err != nil {
		return nil, err
	}

	sw.Flush()
	if err := sw.Error(); err != nil {
		return nil, err
	}
	bw.Flush()
	if err := bw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{sw, bw, sf, bf}, nil
}

func (j *CSVJournal) RecordSignal(r SignalRecord) error {
	j.signals.Write([]string{
		r.ID,
		r.Ticker,
		r.Signal.Type,
		strconv.Itoa(r.Signal.Confidence),
		f(r.Signal.Entry),
		f(deref(r.Signal.StopLoss)),
		f(deref(r.Signal.TakeProfit)),
		r.Signal.Strategy,
		r.Signal.Reasoning,
		r.Signal.Indicator,
		r.CreatedAt.Format(time.RFC3339),
	})
	j.signals.Flush()
	return j.signals.Error()
}

func (j *CSVJournal) RecordBacktest(r BacktestRecord) error {
	res := r.Result
	j.backtests.Write([]string{
		r.RunID,
		res.Ticker,
		res.Strategy,
		f(res.InitialCapital),
		f(res.FinalCapital),
		f(res.TotalReturnPct),
		f(res.TotalPnL),
		f(res.Metrics.WinRatePct),
		strconv.Itoa(res.Metrics.TotalTrades),
		f(cappedProfitFactor(res.Metrics.ProfitFactor)),
		f(res.Metrics.SharpeRatio),
		f(res.Metrics.MaxDrawdownPct),
		r.CreatedAt.Format(time.RFC3339),
	})
	j.backtests.Flush()
	return j.backtests.Error()
}

func (j *CSVJournal) Close() error {
	j.signals.Flush()
	j.backtests.Flush()
	if err := j.sf.Close(); err != nil {
		j.bf.Close()
		return err
	}
	return j.bf.Close()
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
