package signals

import (
	"math"

	"github.com/titanalgo/titan/indicators"
	"github.com/titanalgo/titan/market"
)

// Ichimoku signals on a Tenkan-sen / Kijun-sen cross between the last two
// bars. Tenkan is the 9-period midpoint of high/low, Kijun the 26-period
// midpoint.
type Ichimoku struct {
	TenkanPeriod int
	KijunPeriod  int
}

func NewIchimoku() *Ichimoku {
	return &Ichimoku{TenkanPeriod: 9, KijunPeriod: 26}
}

func (ic *Ichimoku) Name() string { return "ichimoku" }

func (ic *Ichimoku) MinBars() int { return 52 }

func (ic *Ichimoku) Detect(series market.Series) []Signal {
	if len(series) < ic.MinBars() {
		return nil
	}

	highs := series.Highs()
	lows := series.Lows()

	tenkan := midline(highs, lows, ic.TenkanPeriod)
	kijun := midline(highs, lows, ic.KijunPeriod)

	n := len(series)
	if math.IsNaN(tenkan[n-2]) || math.IsNaN(kijun[n-2]) {
		return nil
	}

	switch {
	case tenkan[n-2] <= kijun[n-2] && tenkan[n-1] > kijun[n-1]:
		return []Signal{{
			Type:       "Ichimoku T-K Bullish Cross",
			Confidence: 80,
			Entry:      series.Last().Close,
			Indicator:  "Ichimoku",
		}}
	case tenkan[n-2] >= kijun[n-2] && tenkan[n-1] < kijun[n-1]:
		return []Signal{{
			Type:       "Ichimoku T-K Bearish Cross",
			Confidence: 80,
			Entry:      series.Last().Close,
			Indicator:  "Ichimoku",
		}}
	}
	return nil
}

// midline is the midpoint of the rolling high/low channel, the building
// block of both Ichimoku lines.
func midline(highs, lows []float64, period int) []float64 {
	hi := indicators.RollingMax(highs, period)
	lo := indicators.RollingMin(lows, period)
	out := make([]float64, len(highs))
	for i := range out {
		out[i] = (hi[i] + lo[i]) / 2
	}
	return out
}
