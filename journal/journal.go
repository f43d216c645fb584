// Package journal persists signals and backtest results. The engine itself
// never writes storage; the CLI (or any other caller) hands finished values
// to a Journal after each evaluation or run.
package journal

import (
	"time"

	"github.com/titanalgo/titan/backtest"
	"github.com/titanalgo/titan/signals"
)

// profitFactorCap replaces the +Inf profit-factor sentinel before storage.
const profitFactorCap = 9999

// SignalRecord is one stored signal evaluation.
type SignalRecord struct {
	ID        string
	Ticker    string
	Signal    signals.Signal
	CreatedAt time.Time
}

// BacktestRecord is one stored simulation run. The equity curve and trade
// ledger stay with the caller; the journal keeps the summary row.
type BacktestRecord struct {
	RunID     string
	CreatedAt time.Time
	Result    *backtest.Result
}

type Journal interface {
	RecordSignal(SignalRecord) error
	RecordBacktest(BacktestRecord) error
	Close() error
}

// cappedProfitFactor bounds the profit factor for storage. +Inf (no losing
// trades) becomes the cap value.
func cappedProfitFactor(pf float64) float64 {
	if pf > profitFactorCap {
		return profitFactorCap
	}
	return pf
}
