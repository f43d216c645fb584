package signals

import (
	"github.com/titanalgo/titan/indicators"
	"github.com/titanalgo/titan/market"
)

// MACDCross fires when the MACD histogram crosses from negative to positive
// on the last two bars while price holds above its 200-period EMA. There is
// deliberately no bearish counterpart; the cross is used as a long-side
// trend-continuation trigger only.
type MACDCross struct {
	Fast, Slow, Signal int
	TrendPeriod        int
}

func NewMACDCross() *MACDCross {
	return &MACDCross{Fast: 12, Slow: 26, Signal: 9, TrendPeriod: 200}
}

func (m *MACDCross) Name() string { return "macd-cross" }

func (m *MACDCross) MinBars() int { return m.TrendPeriod }

func (m *MACDCross) Detect(series market.Series) []Signal {
	if len(series) < m.MinBars() {
		return nil
	}

	closes := series.Closes()
	_, _, hist := indicators.MACD(closes, m.Fast, m.Slow, m.Signal)
	trend := indicators.EMA(closes, m.TrendPeriod)

	n := len(closes)
	if hist[n-2] < 0 && hist[n-1] > 0 && closes[n-1] > trend[n-1] {
		return []Signal{{
			Type:       "MACD Bullish Cross",
			Confidence: 82,
			Entry:      closes[n-1],
			Indicator:  "MACD/EMA200",
		}}
	}
	return nil
}
