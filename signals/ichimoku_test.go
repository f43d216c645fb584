package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titanalgo/titan/market"
)

func appendClose(s market.Series, c float64) market.Series {
	return append(s, market.Bar{
		Time: testDay(len(s)),
		Open: c, High: c + 0.5, Low: c - 0.5, Close: c,
	})
}

func TestIchimokuBullishCross(t *testing.T) {
	// Decline for 60 bars, then rally: the 9-period Tenkan recovers faster
	// than the 26-period Kijun and must cross it exactly once.
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 200 - 1.5*float64(i)
	}
	series := seriesFromCloses(closes)
	det := NewIchimoku()

	require.Empty(t, det.Detect(series), "no cross while still declining")

	var fired []Signal
	base := series.Last().Close
	for i := 0; i < 40 && len(fired) == 0; i++ {
		series = appendClose(series, base+3*float64(i+1))
		fired = det.Detect(series)
	}

	require.Len(t, fired, 1)
	assert.Equal(t, "Ichimoku T-K Bullish Cross", fired[0].Type)
	assert.Equal(t, 80, fired[0].Confidence)
	assert.Equal(t, series.Last().Close, fired[0].Entry)
}

func TestIchimokuBearishCross(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + 1.5*float64(i)
	}
	series := seriesFromCloses(closes)
	det := NewIchimoku()

	var fired []Signal
	base := series.Last().Close
	for i := 0; i < 40 && len(fired) == 0; i++ {
		series = appendClose(series, base-3*float64(i+1))
		fired = det.Detect(series)
	}

	require.Len(t, fired, 1)
	assert.Equal(t, "Ichimoku T-K Bearish Cross", fired[0].Type)
}

func TestIchimokuFlatMarket(t *testing.T) {
	assert.Empty(t, NewIchimoku().Detect(flatSeries(60, 100)))
}

func TestIchimokuInsufficientData(t *testing.T) {
	assert.Empty(t, NewIchimoku().Detect(flatSeries(51, 100)))
}
