package signals

import (
	"fmt"

	"github.com/titanalgo/titan/indicators"
	"github.com/titanalgo/titan/market"
)

// BullFlag detects a momentum continuation setup: a sharp "pole" (a five-bar
// return of at least PoleReturn within the prior ten bars) followed by a
// tight five-bar consolidation whose low holds above the 50% retracement of
// the pole. Entry, stop and target are derived geometrically from the flag
// range and the pole height (measured move).
type BullFlag struct {
	PoleReturn float64 // minimum 5-bar return, default 0.02
}

func NewBullFlag() *BullFlag {
	return &BullFlag{PoleReturn: 0.02}
}

func (b *BullFlag) Name() string { return "bull-flag" }

func (b *BullFlag) MinBars() int { return 20 }

func (b *BullFlag) Detect(series market.Series) []Signal {
	if len(series) < b.MinBars() {
		return nil
	}

	closes := series.Closes()
	highs := series.Highs()
	lows := series.Lows()
	n := len(series)

	// Strongest five-bar return observed in the pole window.
	maxReturn := 0.0
	for i := n - 10; i < n-2; i++ {
		r := closes[i]/closes[i-5] - 1
		if r > maxReturn {
			maxReturn = r
		}
	}
	if maxReturn <= b.PoleReturn {
		return nil
	}

	flagTop := indicators.Max(highs, n-5, n)
	flagBottom := indicators.Min(lows, n-5, n)
	poleTop := indicators.Max(highs, n-10, n-5)
	poleBase := closes[n-10]

	// Consolidation must hold the top half of the pole.
	if flagBottom <= poleBase+(poleTop-poleBase)*0.5 {
		return nil
	}

	return []Signal{{
		Type:       "Bull Flag Formation",
		Confidence: 82,
		Strategy:   "Momentum Breakout",
		Reasoning:  fmt.Sprintf("Detected %.1f%% pole followed by tight consolidation.", maxReturn*100),
		Entry:      flagTop * 1.001,
		StopLoss:   ptr(flagBottom * 0.995),
		TakeProfit: ptr(flagTop + (poleTop - poleBase)),
	}}
}
