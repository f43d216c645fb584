// Package indicators provides technical analysis indicators computed over
// full bar series. Each function returns a slice aligned with its input;
// positions inside the warmup window hold NaN. Callers check length and
// math.IsNaN rather than errors, since every detector and strategy in this
// module uses fixed, known-good periods.
package indicators

import (
	"math"

	"github.com/titanalgo/titan/market"
)

// RSI computes the Wilder-style relative strength index over the given
// period using simple rolling means of gains and losses. The first `period`
// values are NaN. A zero average loss maps to 100 (maximal strength).
func RSI(closes []float64, period int) []float64 {
	out := nanSlice(len(closes))
	if len(closes) <= period {
		return out
	}

	for i := period; i < len(closes); i++ {
		var gain, loss float64
		for j := i - period + 1; j <= i; j++ {
			delta := closes[j] - closes[j-1]
			if delta > 0 {
				gain += delta
			} else {
				loss -= delta
			}
		}
		avgGain := gain / float64(period)
		avgLoss := loss / float64(period)

		if avgLoss == 0 {
			out[i] = 100
			continue
		}
		rs := avgGain / avgLoss
		out[i] = 100 - (100 / (1 + rs))
	}
	return out
}

// EMA computes the exponential moving average with smoothing 2/(period+1),
// seeded from the first value with no adjustment-bias correction. Every
// position is defined; EMA(x, 1) equals x.
func EMA(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	alpha := 2.0 / float64(period+1)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = (values[i]-out[i-1])*alpha + out[i-1]
	}
	return out
}

// MACD returns the MACD line (fast EMA - slow EMA), the signal line (EMA of
// the MACD line) and the histogram (line - signal).
func MACD(closes []float64, fast, slow, signal int) (line, signalLine, hist []float64) {
	fastEMA := EMA(closes, fast)
	slowEMA := EMA(closes, slow)

	line = make([]float64, len(closes))
	for i := range closes {
		line[i] = fastEMA[i] - slowEMA[i]
	}

	signalLine = EMA(line, signal)

	hist = make([]float64, len(closes))
	for i := range closes {
		hist[i] = line[i] - signalLine[i]
	}
	return line, signalLine, hist
}

// OBV computes on-balance volume: the cumulative sum of volume signed by the
// close-to-close direction. The first bar has no prior close and contributes
// zero.
func OBV(closes, volumes []float64) []float64 {
	out := make([]float64, len(closes))
	if len(closes) == 0 {
		return out
	}

	running := 0.0
	for i := 1; i < len(closes); i++ {
		switch {
		case closes[i] > closes[i-1]:
			running += volumes[i]
		case closes[i] < closes[i-1]:
			running -= volumes[i]
		}
		out[i] = running
	}
	return out
}

// ATR computes the rolling mean of the true range over the given period.
// The true range of the first bar falls back to high-low (no previous
// close); the first period-1 values are NaN.
func ATR(series market.Series, period int) []float64 {
	out := nanSlice(len(series))
	if len(series) < period {
		return out
	}

	tr := make([]float64, len(series))
	for i, b := range series {
		if i == 0 {
			tr[i] = b.High - b.Low
			continue
		}
		prevClose := series[i-1].Close
		tr[i] = math.Max(b.High-b.Low,
			math.Max(math.Abs(b.High-prevClose), math.Abs(b.Low-prevClose)))
	}

	sum := 0.0
	for i, v := range tr {
		sum += v
		if i >= period {
			sum -= tr[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out
}

// VolatilityIndex scores the most recent relative ATR on a 0-100 scale.
// A 0.5% ATR-to-price ratio maps to 50; the score is clamped to [0, 100].
// Series too short for a 14-period ATR score as 0.
func VolatilityIndex(series market.Series) float64 {
	atr := ATR(series, 14)
	if len(atr) == 0 {
		return 0
	}

	last := atr[len(atr)-1]
	lastClose := series.Last().Close
	if math.IsNaN(last) || lastClose <= 0 {
		return 0
	}

	relative := (last / lastClose) * 100
	score := (relative / 0.5) * 50
	return math.Min(100, math.Max(0, score))
}

// RollingMax returns, for each position, the maximum of the trailing window
// ending at that position. Positions before a full window hold NaN.
func RollingMax(values []float64, window int) []float64 {
	out := nanSlice(len(values))
	for i := window - 1; i < len(values); i++ {
		m := values[i-window+1]
		for j := i - window + 2; j <= i; j++ {
			if values[j] > m {
				m = values[j]
			}
		}
		out[i] = m
	}
	return out
}

// RollingMin returns, for each position, the minimum of the trailing window
// ending at that position. Positions before a full window hold NaN.
func RollingMin(values []float64, window int) []float64 {
	out := nanSlice(len(values))
	for i := window - 1; i < len(values); i++ {
		m := values[i-window+1]
		for j := i - window + 2; j <= i; j++ {
			if values[j] < m {
				m = values[j]
			}
		}
		out[i] = m
	}
	return out
}

// Max returns the maximum of values[lo:hi]. NaN when the range is empty.
func Max(values []float64, lo, hi int) float64 {
	if lo < 0 {
		lo = 0
	}
	if hi > len(values) {
		hi = len(values)
	}
	if lo >= hi {
		return math.NaN()
	}
	m := values[lo]
	for _, v := range values[lo+1 : hi] {
		if v > m {
			m = v
		}
	}
	return m
}

// Min returns the minimum of values[lo:hi]. NaN when the range is empty.
func Min(values []float64, lo, hi int) float64 {
	if lo < 0 {
		lo = 0
	}
	if hi > len(values) {
		hi = len(values)
	}
	if lo >= hi {
		return math.NaN()
	}
	m := values[lo]
	for _, v := range values[lo+1 : hi] {
		if v < m {
			m = v
		}
	}
	return m
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
