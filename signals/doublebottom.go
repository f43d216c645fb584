package signals

import (
	"math"

	"github.com/titanalgo/titan/indicators"
	"github.com/titanalgo/titan/market"
)

// DoubleBottom finds a "W" reversal: two local minima within a trailing
// window whose prices sit within Tolerance of each other, with the current
// close at or near the neckline (the highest high between the troughs). The
// target projects the neckline-to-trough distance above the neckline.
type DoubleBottom struct {
	Lookback  int     // trailing window scanned for troughs, default 20
	Tolerance float64 // max relative distance between trough prices, default 0.005
}

func NewDoubleBottom() *DoubleBottom {
	return &DoubleBottom{Lookback: 20, Tolerance: 0.005}
}

func (d *DoubleBottom) Name() string { return "double-bottom" }

func (d *DoubleBottom) MinBars() int { return 50 }

func (d *DoubleBottom) Detect(series market.Series) []Signal {
	if len(series) < d.MinBars() {
		return nil
	}

	lows := series.Lows()
	highs := series.Highs()
	n := len(series)

	// Local minima: a bar that is the lowest of the 5-bar window centered
	// on it.
	var troughs []int
	for i := n - d.Lookback; i < n-2; i++ {
		if i < 2 {
			continue
		}
		if lows[i] == indicators.Min(lows, i-2, i+3) {
			troughs = append(troughs, i)
		}
	}
	if len(troughs) < 2 {
		return nil
	}

	t1, t2 := troughs[len(troughs)-2], troughs[len(troughs)-1]
	price1, price2 := lows[t1], lows[t2]

	if math.Abs(price1-price2)/price1 >= d.Tolerance {
		return nil
	}

	neckline := indicators.Max(highs, t1, t2)
	current := series.Last().Close

	// Close to, or breaking, the neckline.
	if current <= neckline*0.95 {
		return nil
	}

	support := math.Min(price1, price2)
	return []Signal{{
		Type:       "Double Bottom (W-Pattern)",
		Confidence: 90,
		Strategy:   "Support Reversal",
		Reasoning:  "Asset found support twice at similar levels. High probability bounce.",
		Entry:      neckline * 1.002,
		StopLoss:   ptr(support * 0.99),
		TakeProfit: ptr(neckline + (neckline - support)),
	}}
}
