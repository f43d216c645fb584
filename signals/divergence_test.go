package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// divergenceCloses builds a price path with a steep first selloff to 100
// (bar 36) and a gentler second selloff to a lower low of 99 (bar 56). The
// second leg is shallow, so RSI at the second low is higher than at the
// first: a regular bullish divergence.
func divergenceCloses() []float64 {
	closes := make([]float64, 62)
	for i := 0; i <= 21; i++ {
		closes[i] = 115 + 0.2*float64(i)
	}
	for i := 22; i <= 36; i++ {
		closes[i] = 119.2 - 1.28*float64(i-21)
	}
	for i := 37; i <= 46; i++ {
		closes[i] = 100 + 0.8*float64(i-36)
	}
	for i := 47; i <= 56; i++ {
		closes[i] = 108 - 0.9*float64(i-46)
	}
	for i := 57; i <= 61; i++ {
		closes[i] = 99 + 0.7*float64(i-56)
	}
	return closes
}

func TestDivergenceBullish(t *testing.T) {
	series := seriesFromCloses(divergenceCloses())

	sigs := NewDivergence().Detect(series)
	require.Len(t, sigs, 1)

	sig := sigs[0]
	assert.Equal(t, "Regular Bullish RSI Divergence", sig.Type)
	assert.Equal(t, 85, sig.Confidence)
	assert.Equal(t, "RSI", sig.Indicator)
	assert.InDelta(t, series.Last().Close, sig.Entry, 1e-9)
}

func TestDivergenceBearishMirror(t *testing.T) {
	// Mirror the bullish path around 110: higher high with weaker momentum.
	closes := divergenceCloses()
	for i := range closes {
		closes[i] = 220 - closes[i]
	}

	sigs := NewDivergence().Detect(seriesFromCloses(closes))
	require.Len(t, sigs, 1)
	assert.Equal(t, "Regular Bearish RSI Divergence", sigs[0].Type)
	assert.Equal(t, 88, sigs[0].Confidence)
}

func TestDivergenceInsufficientData(t *testing.T) {
	assert.Empty(t, NewDivergence().Detect(flatSeries(30, 100)))
}

func TestDivergenceFlatMarket(t *testing.T) {
	assert.Empty(t, NewDivergence().Detect(flatSeries(80, 100)))
}
