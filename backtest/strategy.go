package backtest

import (
	"fmt"
	"math"
	"strings"

	"github.com/titanalgo/titan/indicators"
	"github.com/titanalgo/titan/market"
)

// Rule is a simulation strategy's buy/sell condition pair, evaluated by bar
// index. Rules precompute their indicator arrays once per run so the bar
// loop stays O(1) per bar; this is a deliberately narrower condition set
// than the full detector library in the signals package.
type Rule interface {
	Name() string
	Buy(i int) bool
	Sell(i int) bool
}

// RuleByName builds the rule for a strategy identifier over the given
// series. Accepted names (case-insensitive): macd-cross, rsi-divergence,
// turtle-breakout, ichimoku, plus the short forms macd, rsi and turtle.
func RuleByName(name string, series market.Series) (Rule, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", "-")) {
	case "macd-cross", "macd":
		return NewMACDRule(series), nil
	case "rsi-divergence", "rsi":
		return NewRSIRule(series), nil
	case "turtle-breakout", "turtle":
		return NewTurtleRule(series), nil
	case "ichimoku":
		return NewIchimokuRule(series), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (supported: macd-cross, rsi-divergence, turtle-breakout, ichimoku)", name)
	}
}

// MACDRule trades the MACD histogram zero-crossing: buy when the histogram
// turns positive, sell when it turns negative.
type MACDRule struct {
	hist []float64
}

func NewMACDRule(series market.Series) *MACDRule {
	_, _, hist := indicators.MACD(series.Closes(), 12, 26, 9)
	return &MACDRule{hist: hist}
}

func (r *MACDRule) Name() string { return "MACD_Cross" }

func (r *MACDRule) Buy(i int) bool {
	return i > 0 && r.hist[i-1] < 0 && r.hist[i] > 0
}

func (r *MACDRule) Sell(i int) bool {
	return i > 0 && r.hist[i-1] > 0 && r.hist[i] < 0
}

// RSIRule is the oversold/overbought proxy for divergence trading: buy
// below 30, sell above 70.
type RSIRule struct {
	rsi []float64
}

func NewRSIRule(series market.Series) *RSIRule {
	return &RSIRule{rsi: indicators.RSI(series.Closes(), 14)}
}

func (r *RSIRule) Name() string { return "RSI_Divergence" }

func (r *RSIRule) Buy(i int) bool {
	return !math.IsNaN(r.rsi[i]) && r.rsi[i] < 30
}

func (r *RSIRule) Sell(i int) bool {
	return !math.IsNaN(r.rsi[i]) && r.rsi[i] > 70
}

// TurtleRule trades the System 1 channel: buy on a break of the prior
// 20-bar high, sell on a break of the prior 10-bar low.
type TurtleRule struct {
	highs []float64
	lows  []float64
}

func NewTurtleRule(series market.Series) *TurtleRule {
	return &TurtleRule{highs: series.Highs(), lows: series.Lows()}
}

func (r *TurtleRule) Name() string { return "Turtle_Breakout" }

func (r *TurtleRule) Buy(i int) bool {
	if i < 20 {
		return false
	}
	return r.highs[i] > indicators.Max(r.highs, i-20, i)
}

func (r *TurtleRule) Sell(i int) bool {
	if i < 10 {
		return false
	}
	return r.lows[i] < indicators.Min(r.lows, i-10, i)
}

// IchimokuRule trades the Tenkan/Kijun cross in both directions.
type IchimokuRule struct {
	tenkan []float64
	kijun  []float64
}

func NewIchimokuRule(series market.Series) *IchimokuRule {
	highs := series.Highs()
	lows := series.Lows()

	tenkanHi := indicators.RollingMax(highs, 9)
	tenkanLo := indicators.RollingMin(lows, 9)
	kijunHi := indicators.RollingMax(highs, 26)
	kijunLo := indicators.RollingMin(lows, 26)

	tenkan := make([]float64, len(highs))
	kijun := make([]float64, len(highs))
	for i := range highs {
		tenkan[i] = (tenkanHi[i] + tenkanLo[i]) / 2
		kijun[i] = (kijunHi[i] + kijunLo[i]) / 2
	}
	return &IchimokuRule{tenkan: tenkan, kijun: kijun}
}

func (r *IchimokuRule) Name() string { return "Ichimoku" }

func (r *IchimokuRule) defined(i int) bool {
	return i > 0 && !math.IsNaN(r.tenkan[i-1]) && !math.IsNaN(r.kijun[i-1]) &&
		!math.IsNaN(r.tenkan[i]) && !math.IsNaN(r.kijun[i])
}

func (r *IchimokuRule) Buy(i int) bool {
	return r.defined(i) && r.tenkan[i-1] <= r.kijun[i-1] && r.tenkan[i] > r.kijun[i]
}

func (r *IchimokuRule) Sell(i int) bool {
	return r.defined(i) && r.tenkan[i-1] >= r.kijun[i-1] && r.tenkan[i] < r.kijun[i]
}
