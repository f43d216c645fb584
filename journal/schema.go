package journal

const Schema = `
CREATE TABLE IF NOT EXISTS signals (
	signal_id TEXT PRIMARY KEY,
	ticker TEXT NOT NULL,
	type TEXT NOT NULL,
	confidence INTEGER NOT NULL,
	entry REAL NOT NULL,
	stop_loss REAL NOT NULL,
	take_profit REAL NOT NULL,
	strategy TEXT NOT NULL,
	reasoning TEXT NOT NULL,
	indicator TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS backtests (
	run_id TEXT PRIMARY KEY,
	ticker TEXT NOT NULL,
	strategy TEXT NOT NULL,
	initial_capital REAL NOT NULL,
	final_capital REAL NOT NULL,
	total_return_pct REAL NOT NULL,
	total_pnl REAL NOT NULL,
	win_rate_pct REAL NOT NULL,
	total_trades INTEGER NOT NULL,
	profit_factor REAL NOT NULL,
	sharpe_ratio REAL NOT NULL,
	ann_return_pct REAL NOT NULL,
	ann_volatility_pct REAL NOT NULL,
	max_drawdown_pct REAL NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_signals_ticker ON signals(ticker);
CREATE INDEX IF NOT EXISTS idx_backtests_ticker ON backtests(ticker, strategy);
`
