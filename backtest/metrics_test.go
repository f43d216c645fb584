package backtest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func equityOf(values ...float64) []EquityPoint {
	pts := make([]EquityPoint, len(values))
	for i, v := range values {
		pts[i] = EquityPoint{Time: testDay(i), Value: v}
	}
	return pts
}

func TestMetricsEmptyRun(t *testing.T) {
	m := computeMetrics(equityOf(10_000, 10_000, 10_000), nil, 0)

	assert.Zero(t, m.TotalTrades)
	assert.Zero(t, m.SharpeRatio)
	assert.Zero(t, m.AnnVolatilityPct)
	assert.Zero(t, m.WinRatePct)
	assert.Zero(t, m.ProfitFactor)
}

func TestMetricsWinRateAndProfitFactor(t *testing.T) {
	trades := []Trade{
		{PnL: 60}, {PnL: 40}, {PnL: -25}, {PnL: -25},
	}
	m := computeMetrics(equityOf(10_000, 10_050), trades, 0.02)

	assert.Equal(t, 4, m.TotalTrades)
	assert.InDelta(t, 50.0, m.WinRatePct, 1e-9)
	// gross wins 100 over gross losses 50.
	assert.InDelta(t, 2.0, m.ProfitFactor, 1e-9)
	assert.InDelta(t, 2.0, m.MaxDrawdownPct, 1e-9)
}

func TestMetricsProfitFactorUnboundedOnWinsOnly(t *testing.T) {
	m := computeMetrics(equityOf(10_000, 10_100), []Trade{{PnL: 100}}, 0)
	assert.True(t, math.IsInf(m.ProfitFactor, 1))
	assert.InDelta(t, 100.0, m.WinRatePct, 1e-9)
}

func TestMetricsZeroVolatilitySharpe(t *testing.T) {
	// Flat equity has zero volatility; the Sharpe ratio must stay 0 rather
	// than divide by zero.
	m := computeMetrics(equityOf(10_000, 10_000, 10_000, 10_000), nil, 0)
	assert.Zero(t, m.AnnVolatilityPct)
	assert.Zero(t, m.SharpeRatio)
}

func TestMetricsAnnualization(t *testing.T) {
	// Returns +1% then 0%: mean 0.5% per bar, population stddev 0.5%.
	m := computeMetrics(equityOf(10_000, 10_100, 10_100), nil, 0)

	assert.InDelta(t, 0.005*252*100, m.AnnReturnPct, 1e-6)
	assert.InDelta(t, 0.005*math.Sqrt(252)*100, m.AnnVolatilityPct, 1e-6)
	assert.InDelta(t, m.AnnReturnPct/m.AnnVolatilityPct, m.SharpeRatio, 1e-9)
}
