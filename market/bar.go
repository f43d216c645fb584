// Package market provides price bar types shared by indicators, signal
// detectors and the backtest simulator.
package market

import (
	"fmt"
	"time"
)

// Bar is one OHLCV observation for a fixed time interval.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Series is an ordered sequence of bars. Every rolling-window computation in
// the engine relies on timestamps being strictly increasing; use Validate at
// the boundary before handing a series to detectors or the simulator.
type Series []Bar

// Validate checks the series invariants: strictly increasing timestamps and
// positive prices with High >= Low. A violation is a caller bug, so the error
// is descriptive and the check fails fast on the first bad bar.
func (s Series) Validate() error {
	for i, b := range s {
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
			return fmt.Errorf("bar %d (%s): non-positive price", i, b.Time.Format(time.RFC3339))
		}
		if b.High < b.Low {
			return fmt.Errorf("bar %d (%s): high %.6f below low %.6f", i, b.Time.Format(time.RFC3339), b.High, b.Low)
		}
		if i > 0 && !b.Time.After(s[i-1].Time) {
			return fmt.Errorf("bar %d (%s): timestamp not after previous bar (%s)",
				i, b.Time.Format(time.RFC3339), s[i-1].Time.Format(time.RFC3339))
		}
	}
	return nil
}

// Last returns the most recent bar. Panics on an empty series; callers are
// expected to have checked length against their warmup requirement.
func (s Series) Last() Bar {
	return s[len(s)-1]
}

// Closes returns the close prices as a slice aligned with the series.
func (s Series) Closes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Close
	}
	return out
}

// Highs returns the high prices as a slice aligned with the series.
func (s Series) Highs() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.High
	}
	return out
}

// Lows returns the low prices as a slice aligned with the series.
func (s Series) Lows() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Low
	}
	return out
}

// Volumes returns the volumes as a slice aligned with the series.
func (s Series) Volumes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Volume
	}
	return out
}
