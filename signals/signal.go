// Package signals implements the pattern detectors and the strategy router
// that picks one actionable signal per instrument.
package signals

import (
	"github.com/titanalgo/titan/market"
)

// Signal is a discrete trading suggestion. Detectors emit them with whatever
// price levels the pattern defines; the router's normalization step fills in
// any missing stop or target before a signal leaves the engine. Signals are
// immutable once produced.
type Signal struct {
	Type       string   `json:"type"`
	Confidence int      `json:"confidence"`
	Entry      float64  `json:"entry"`
	StopLoss   *float64 `json:"sl"`
	TakeProfit *float64 `json:"tp"`
	Strategy   string   `json:"strategy"`
	Reasoning  string   `json:"reasoning"`
	Indicator  string   `json:"indicator"`
}

// Detector evaluates a bar series and produces zero or more signals.
// Implementations return an empty slice when the series is shorter than
// MinBars or no condition fires; they never fail for "no signal".
type Detector interface {
	Name() string
	MinBars() int
	Detect(series market.Series) []Signal
}

// ptr returns a pointer to v, for optional price levels.
func ptr(v float64) *float64 { return &v }
