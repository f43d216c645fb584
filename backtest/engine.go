// Package backtest replays a strategy bar-by-bar against historical data and
// produces an equity curve, a trade ledger and summary performance metrics.
package backtest

import (
	"fmt"
	"time"

	"github.com/titanalgo/titan/market"
)

// Config holds the fixed execution assumptions of the simulator.
type Config struct {
	InitialCapital float64
	// Warmup is the number of bars skipped before the strategy is
	// evaluated. The default of 50 is shorter than some indicators' true
	// warmup (the MACD trend filter uses a 200-period EMA elsewhere);
	// callers that care should raise it.
	Warmup int
	// StopLossPct closes a position when the close-to-entry move falls to
	// -StopLossPct (e.g. 0.05 for -5%).
	StopLossPct float64
	// TakeProfitPct closes a position when the move reaches +TakeProfitPct.
	TakeProfitPct float64
	// Allocation is the fraction of current capital committed per trade.
	Allocation float64
}

// DefaultConfig returns the standard execution assumptions: $10,000 capital,
// 50-bar warmup, -5% stop, +10% take, 10% allocation per trade.
func DefaultConfig() Config {
	return Config{
		InitialCapital: 10_000,
		Warmup:         50,
		StopLossPct:    0.05,
		TakeProfitPct:  0.10,
		Allocation:     0.10,
	}
}

// Trade is one closed round trip, appended to the ledger in exit order.
type Trade struct {
	EntryTime  time.Time `json:"entry_time"`
	ExitTime   time.Time `json:"exit_time"`
	EntryPrice float64   `json:"entry_price"`
	ExitPrice  float64   `json:"exit_price"`
	PnL        float64   `json:"pnl"`
	PnLPct     float64   `json:"pnl_pct"`
	Direction  string    `json:"direction"`
}

// EquityPoint is one sample of the running simulated capital. One point is
// emitted per processed bar; the value only moves at trade closes since
// open positions are not marked to market.
type EquityPoint struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// Result is the full outcome of one simulation run. The engine holds no
// reference to it after returning.
type Result struct {
	Ticker         string        `json:"ticker"`
	Strategy       string        `json:"strategy"`
	InitialCapital float64       `json:"initial_capital"`
	FinalCapital   float64       `json:"final_capital"`
	TotalReturnPct float64       `json:"total_return_pct"`
	TotalPnL       float64       `json:"total_pnl"`
	Metrics        Metrics       `json:"metrics"`
	EquityCurve    []EquityPoint `json:"equity_curve"`
	Trades         []Trade       `json:"trades"`
}

// position exists only between an entry and the matching exit within one
// run; at most one is open at a time (long only, no pyramiding).
type position struct {
	entryPrice float64
	entryTime  time.Time
	allocated  float64 // capital committed at entry
}

// Engine is the sequential backtest simulator. It is a pure function of its
// inputs: the same series and strategy always produce an identical result.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Run simulates the rule over the series. A series too short to clear the
// warmup yields (nil, nil): insufficient data is an absent result, not an
// error. A malformed series (non-monotonic timestamps, bad prices) is a
// caller bug and fails fast.
func (e *Engine) Run(ticker string, series market.Series, rule Rule) (*Result, error) {
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("backtest %s/%s: %w", ticker, rule.Name(), err)
	}
	if len(series) <= e.cfg.Warmup {
		return nil, nil
	}

	capital := e.cfg.InitialCapital
	runningMax := capital
	maxDrawdown := 0.0

	var pos *position
	var trades []Trade
	equity := make([]EquityPoint, 0, len(series)-e.cfg.Warmup)

	for i := e.cfg.Warmup; i < len(series); i++ {
		bar := series[i]

		if pos != nil {
			move := bar.Close/pos.entryPrice - 1
			if rule.Sell(i) || move <= -e.cfg.StopLossPct || move >= e.cfg.TakeProfitPct {
				pnl := pos.allocated * move
				capital += pnl
				trades = append(trades, Trade{
					EntryTime:  pos.entryTime,
					ExitTime:   bar.Time,
					EntryPrice: pos.entryPrice,
					ExitPrice:  bar.Close,
					PnL:        pnl,
					PnLPct:     move * 100,
					Direction:  "long",
				})
				pos = nil
			}
		} else if rule.Buy(i) {
			pos = &position{
				entryPrice: bar.Close,
				entryTime:  bar.Time,
				allocated:  capital * e.cfg.Allocation,
			}
		}

		equity = append(equity, EquityPoint{Time: bar.Time, Value: capital})

		if capital > runningMax {
			runningMax = capital
		}
		if dd := (runningMax - capital) / runningMax; dd > maxDrawdown {
			maxDrawdown = dd
		}
	}

	res := &Result{
		Ticker:         ticker,
		Strategy:       rule.Name(),
		InitialCapital: e.cfg.InitialCapital,
		FinalCapital:   capital,
		TotalReturnPct: (capital - e.cfg.InitialCapital) / e.cfg.InitialCapital * 100,
		TotalPnL:       capital - e.cfg.InitialCapital,
		Metrics:        computeMetrics(equity, trades, maxDrawdown),
		EquityCurve:    equity,
		Trades:         trades,
	}
	return res, nil
}
