package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init journal schema: %w", err)
	}
	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordSignal(r SignalRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO signals
		(signal_id, ticker, type, confidence, entry, stop_loss, take_profit, strategy, reasoning, indicator, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Ticker, r.Signal.Type, r.Signal.Confidence, r.Signal.Entry,
		deref(r.Signal.StopLoss), deref(r.Signal.TakeProfit),
		r.Signal.Strategy, r.Signal.Reasoning, r.Signal.Indicator, r.CreatedAt,
	)
	return err
}

func (j *SQLiteJournal) RecordBacktest(r BacktestRecord) error {
	res := r.Result
	_, err := j.db.Exec(`
		INSERT INTO backtests
		(run_id, ticker, strategy, initial_capital, final_capital, total_return_pct, total_pnl,
		 win_rate_pct, total_trades, profit_factor, sharpe_ratio, ann_return_pct, ann_volatility_pct,
		 max_drawdown_pct, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, res.Ticker, res.Strategy, res.InitialCapital, res.FinalCapital,
		res.TotalReturnPct, res.TotalPnL, res.Metrics.WinRatePct, res.Metrics.TotalTrades,
		cappedProfitFactor(res.Metrics.ProfitFactor), res.Metrics.SharpeRatio,
		res.Metrics.AnnReturnPct, res.Metrics.AnnVolatilityPct, res.Metrics.MaxDrawdownPct,
		r.CreatedAt,
	)
	return err
}

// ListBacktests returns stored summary rows for a ticker, newest first.
func (j *SQLiteJournal) ListBacktests(ticker string) ([]BacktestRow, error) {
	rows, err := j.db.Query(`
		SELECT run_id, ticker, strategy, final_capital, total_return_pct, win_rate_pct,
		       total_trades, profit_factor, max_drawdown_pct
		FROM backtests WHERE ticker = ? ORDER BY run_id DESC`, ticker)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BacktestRow
	for rows.Next() {
		var r BacktestRow
		if err := rows.Scan(&r.RunID, &r.Ticker, &r.Strategy, &r.FinalCapital,
			&r.TotalReturnPct, &r.WinRatePct, &r.TotalTrades, &r.ProfitFactor,
			&r.MaxDrawdownPct); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// BacktestRow mirrors the stored summary columns of the backtests table.
type BacktestRow struct {
	RunID          string
	Ticker         string
	Strategy       string
	FinalCapital   float64
	TotalReturnPct float64
	WinRatePct     float64
	TotalTrades    int
	ProfitFactor   float64
	MaxDrawdownPct float64
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
