package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titanalgo/titan/market"
)

// uptrendWithDip is a long rally with a short, shallow pullback at the end:
// the MACD histogram dips negative while price stays far above its 200-bar
// EMA. Appending recovery bars flips the histogram back positive, which is
// exactly the cross the detector looks for.
func uptrendWithDip() market.Series {
	closes := make([]float64, 260)
	for i := 0; i < 250; i++ {
		closes[i] = 100 + 0.5*float64(i)
	}
	for i := 250; i < 260; i++ {
		closes[i] = 225 - 1.5*float64(i-249)
	}
	return seriesFromCloses(closes)
}

func TestMACDCrossFiresOnRecovery(t *testing.T) {
	det := NewMACDCross()
	series := uptrendWithDip()

	require.Empty(t, det.Detect(series), "no cross during the pullback itself")

	// Rally until the histogram crosses back above zero. The cross exists
	// on exactly one bar pair, so detect after every appended bar.
	var fired []Signal
	last := series.Last()
	for i := 0; i < 60 && len(fired) == 0; i++ {
		c := last.Close + 3*float64(i+1)
		series = append(series, market.Bar{
			Time: testDay(len(series)),
			Open: c, High: c + 0.5, Low: c - 0.5, Close: c,
		})
		fired = det.Detect(series)
	}

	require.Len(t, fired, 1)
	sig := fired[0]
	assert.Equal(t, "MACD Bullish Cross", sig.Type)
	assert.Equal(t, 82, sig.Confidence)
	assert.Equal(t, "MACD/EMA200", sig.Indicator)
	assert.Equal(t, series.Last().Close, sig.Entry)
}

func TestMACDCrossNoBearishCase(t *testing.T) {
	// Downtrend into weakness: the detector has no bearish counterpart and
	// must stay silent no matter how the histogram crosses down.
	closes := make([]float64, 260)
	for i := range closes {
		closes[i] = 500 - 0.5*float64(i)
	}
	assert.Empty(t, NewMACDCross().Detect(seriesFromCloses(closes)))
}

func TestMACDCrossInsufficientData(t *testing.T) {
	assert.Empty(t, NewMACDCross().Detect(flatSeries(199, 100)))
}
