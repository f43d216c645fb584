package backtest

import "math"

// annualization factor for daily bars, equities-calendar convention.
const tradingDays = 252

// Metrics summarizes a run. ProfitFactor is +Inf when there are gross wins
// but no gross losses; callers must cap it before display or storage (the
// journal caps it at 9999).
type Metrics struct {
	SharpeRatio      float64 `json:"sharpe_ratio"`
	MaxDrawdownPct   float64 `json:"max_drawdown_pct"`
	WinRatePct       float64 `json:"win_rate_pct"`
	ProfitFactor     float64 `json:"profit_factor"`
	TotalTrades      int     `json:"total_trades"`
	AnnReturnPct     float64 `json:"ann_return_pct"`
	AnnVolatilityPct float64 `json:"ann_volatility_pct"`
}

func computeMetrics(equity []EquityPoint, trades []Trade, maxDrawdown float64) Metrics {
	m := Metrics{
		MaxDrawdownPct: maxDrawdown * 100,
		TotalTrades:    len(trades),
	}

	// Per-point returns drive the annualized figures.
	var returns []float64
	for i := 1; i < len(equity); i++ {
		if equity[i-1].Value != 0 {
			returns = append(returns, equity[i].Value/equity[i-1].Value-1)
		}
	}
	if len(returns) > 0 {
		mean := 0.0
		for _, r := range returns {
			mean += r
		}
		mean /= float64(len(returns))

		variance := 0.0
		for _, r := range returns {
			variance += (r - mean) * (r - mean)
		}
		variance /= float64(len(returns))

		m.AnnReturnPct = mean * tradingDays * 100
		m.AnnVolatilityPct = math.Sqrt(variance) * math.Sqrt(tradingDays) * 100
		if m.AnnVolatilityPct != 0 {
			m.SharpeRatio = m.AnnReturnPct / m.AnnVolatilityPct
		}
	}

	if len(trades) == 0 {
		return m
	}

	wins := 0
	grossWin, grossLoss := 0.0, 0.0
	for _, t := range trades {
		if t.PnL > 0 {
			wins++
			grossWin += t.PnL
		} else {
			grossLoss += -t.PnL
		}
	}

	m.WinRatePct = float64(wins) / float64(len(trades)) * 100
	switch {
	case grossLoss > 0:
		m.ProfitFactor = grossWin / grossLoss
	case grossWin > 0:
		m.ProfitFactor = math.Inf(1)
	}
	return m
}
