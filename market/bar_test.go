package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(i int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
}

func flatBar(i int, price float64) Bar {
	return Bar{Time: day(i), Open: price, High: price + 0.5, Low: price - 0.5, Close: price, Volume: 1000}
}

func TestValidateOK(t *testing.T) {
	s := Series{flatBar(0, 100), flatBar(1, 101), flatBar(2, 102)}
	assert.NoError(t, s.Validate())
}

func TestValidateDuplicateTimestamp(t *testing.T) {
	s := Series{flatBar(0, 100), flatBar(0, 101)}
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not after previous")
}

func TestValidateOutOfOrder(t *testing.T) {
	s := Series{flatBar(5, 100), flatBar(1, 101)}
	assert.Error(t, s.Validate())
}

func TestValidateBadPrices(t *testing.T) {
	s := Series{{Time: day(0), Open: 100, High: 99, Low: 101, Close: 100}}
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "high")

	s = Series{{Time: day(0), Open: 0, High: 1, Low: 1, Close: 1}}
	assert.Error(t, s.Validate())
}

func TestSliceHelpers(t *testing.T) {
	s := Series{flatBar(0, 100), flatBar(1, 102)}

	assert.Equal(t, []float64{100, 102}, s.Closes())
	assert.Equal(t, []float64{100.5, 102.5}, s.Highs())
	assert.Equal(t, []float64{99.5, 101.5}, s.Lows())
	assert.Equal(t, []float64{1000, 1000}, s.Volumes())
	assert.Equal(t, 102.0, s.Last().Close)
}
