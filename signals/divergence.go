package signals

import (
	"math"

	"github.com/titanalgo/titan/indicators"
	"github.com/titanalgo/titan/market"
)

// Divergence detects regular RSI divergence: price prints a lower low (or
// higher high) while the oscillator refuses to confirm. Troughs and peaks
// are points that equal the min/max of the window of Lookback bars on each
// side of them.
type Divergence struct {
	Lookback  int // bars on each side of an extremum, default 5
	RSIPeriod int // default 14
}

func NewDivergence() *Divergence {
	return &Divergence{Lookback: 5, RSIPeriod: 14}
}

func (d *Divergence) Name() string { return "divergence" }

func (d *Divergence) MinBars() int { return 50 }

func (d *Divergence) Detect(series market.Series) []Signal {
	if len(series) < d.MinBars() || len(series) < 2*d.Lookback+1 {
		return nil
	}

	lows := series.Lows()
	highs := series.Highs()
	rsi := indicators.RSI(series.Closes(), d.RSIPeriod)

	var out []Signal

	// The most recent point that can be confirmed as an extremum.
	i := len(series) - d.Lookback - 1

	if d.isTrough(lows, i) && !math.IsNaN(rsi[i]) {
		if prev := d.priorTrough(lows, i); prev != -1 && !math.IsNaN(rsi[prev]) {
			if lows[i] < lows[prev] && rsi[i] > rsi[prev] {
				out = append(out, Signal{
					Type:       "Regular Bullish RSI Divergence",
					Confidence: 85,
					Entry:      series.Last().Close,
					Indicator:  "RSI",
				})
			}
		}
	}

	if d.isPeak(highs, i) && !math.IsNaN(rsi[i]) {
		if prev := d.priorPeak(highs, i); prev != -1 && !math.IsNaN(rsi[prev]) {
			if highs[i] > highs[prev] && rsi[i] < rsi[prev] {
				out = append(out, Signal{
					Type:       "Regular Bearish RSI Divergence",
					Confidence: 88,
					Entry:      series.Last().Close,
					Indicator:  "RSI",
				})
			}
		}
	}

	return out
}

func (d *Divergence) isTrough(lows []float64, idx int) bool {
	if idx < d.Lookback || idx > len(lows)-d.Lookback-1 {
		return false
	}
	return lows[idx] == indicators.Min(lows, idx-d.Lookback, idx+d.Lookback+1)
}

func (d *Divergence) isPeak(highs []float64, idx int) bool {
	if idx < d.Lookback || idx > len(highs)-d.Lookback-1 {
		return false
	}
	return highs[idx] == indicators.Max(highs, idx-d.Lookback, idx+d.Lookback+1)
}

// priorTrough scans backward from just outside the window around i for the
// nearest earlier trough. Returns -1 when none exists.
func (d *Divergence) priorTrough(lows []float64, i int) int {
	for j := i - d.Lookback; j > d.Lookback; j-- {
		if d.isTrough(lows, j) {
			return j
		}
	}
	return -1
}

func (d *Divergence) priorPeak(highs []float64, i int) int {
	for j := i - d.Lookback; j > d.Lookback; j-- {
		if d.isPeak(highs, j) {
			return j
		}
	}
	return -1
}
