package signals

import (
	"time"

	"github.com/titanalgo/titan/market"
)

func testDay(i int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
}

// seriesFromCloses builds bars with a fixed half-point range around each
// close.
func seriesFromCloses(closes []float64) market.Series {
	s := make(market.Series, len(closes))
	for i, c := range closes {
		s[i] = market.Bar{
			Time: testDay(i),
			Open: c, High: c + 0.5, Low: c - 0.5, Close: c,
			Volume: 1000,
		}
	}
	return s
}

// flatSeries is a motionless market: no detector should fire on it.
func flatSeries(n int, price float64) market.Series {
	s := make(market.Series, n)
	for i := range s {
		s[i] = market.Bar{
			Time: testDay(i),
			Open: price, High: price + 0.5, Low: price - 0.5, Close: price,
			Volume: 1000,
		}
	}
	return s
}
