package signals

import (
	"context"
	"strings"

	"github.com/titanalgo/titan/indicators"
	"github.com/titanalgo/titan/market"
)

// Router selects exactly one actionable signal per instrument. Instruments
// are routed through a data-driven classification table (ticker -> class ->
// preferred detector ordering) before falling through to the generic
// priority chain: Turtle System 2, Turtle System 1, then the combined
// catch-all (divergence, MACD cross, sentiment, Ichimoku; first hit wins).
type Router struct {
	// Classes maps a ticker to its instrument class.
	Classes map[string]string
	// Preferred maps an instrument class to detector names tried first,
	// in priority order.
	Preferred map[string][]string

	sentiment *Sentiment
	detectors map[string]Detector

	// VolatilityThreshold gates the catch-all confidence penalty.
	VolatilityThreshold float64
}

// Default strategy labels applied during normalization when a detector does
// not set one.
var detectorStrategies = map[string]string{
	"bull-flag":     "Momentum Breakout",
	"double-bottom": "Support Reversal",
}

// DefaultClasses is the stock routing table: momentum instruments prefer
// bull flags, blue chips prefer double bottoms.
func DefaultClasses() map[string]string {
	return map[string]string{
		"TSLA":    "momentum",
		"BTC-USD": "momentum",
		"SOL-USD": "momentum",
		"AAPL":    "bluechip",
		"MSFT":    "bluechip",
		"AMZN":    "bluechip",
	}
}

// DefaultPreferred maps each instrument class to its preferred detectors.
func DefaultPreferred() map[string][]string {
	return map[string][]string{
		"momentum": {"bull-flag"},
		"bluechip": {"double-bottom"},
	}
}

// NewRouter builds a router with the default classification table and the
// full detector set. The sentiment provider may be nil, in which case the
// sentiment detector runs in fallback mode.
func NewRouter(provider SentimentProvider) *Router {
	r := &Router{
		Classes:             DefaultClasses(),
		Preferred:           DefaultPreferred(),
		sentiment:           NewSentiment(provider),
		detectors:           make(map[string]Detector),
		VolatilityThreshold: 80,
	}
	for _, d := range []Detector{
		NewDivergence(),
		NewMACDCross(),
		NewIchimoku(),
		NewTurtle(1),
		NewTurtle(2),
		NewBullFlag(),
		NewDoubleBottom(),
	} {
		r.detectors[d.Name()] = d
	}
	return r
}

// SelectBest evaluates all routing stages for the instrument and returns the
// single highest-priority signal, normalized so entry, stop loss and take
// profit are always populated. The second return is false when nothing
// fired.
func (r *Router) SelectBest(ctx context.Context, ticker string, series market.Series) (Signal, bool) {
	// 1. Instrument-class preference.
	if class, ok := r.Classes[ticker]; ok {
		for _, name := range r.Preferred[class] {
			det, ok := r.detectors[name]
			if !ok {
				continue
			}
			if sigs := det.Detect(series); len(sigs) > 0 {
				return r.normalize(sigs[0], detectorStrategies[name], series), true
			}
		}
	}

	// 2. Turtle breakouts, high-conviction system first.
	for _, name := range []string{"turtle-s2", "turtle-s1"} {
		if sigs := r.detectors[name].Detect(series); len(sigs) > 0 {
			return r.normalize(sigs[0], "Turtle Trading", series), true
		}
	}

	// 3. Combined catch-all. Every detector runs; a failing sentiment
	// provider degrades silently inside the detector.
	var collected []Signal
	collected = append(collected, r.detectors["divergence"].Detect(series)...)
	collected = append(collected, r.detectors["macd-cross"].Detect(series)...)
	collected = append(collected, r.sentiment.DetectTicker(ctx, ticker)...)
	collected = append(collected, r.detectors["ichimoku"].Detect(series)...)

	if vol := indicators.VolatilityIndex(series); vol > r.VolatilityThreshold {
		for i := range collected {
			collected[i].Confidence = int(float64(collected[i].Confidence) * 0.7)
			collected[i].Reasoning += " [Filtered for high volatility]"
		}
	}

	if len(collected) > 0 {
		return r.normalize(collected[0], "Mean Reversion", series), true
	}
	return Signal{}, false
}

// normalize guarantees the canonical signal shape: entry, stop loss and take
// profit are always set, deriving missing levels as +-2%/+-5% offsets from
// entry depending on the signal's direction marker.
func (r *Router) normalize(sig Signal, fallbackStrategy string, series market.Series) Signal {
	entry := sig.Entry
	if entry == 0 && len(series) > 0 {
		entry = series.Last().Close
	}
	sig.Entry = entry

	bullish := strings.Contains(sig.Type, "Bull") || strings.Contains(sig.Type, "Long")

	if sig.StopLoss == nil {
		if bullish {
			sig.StopLoss = ptr(entry * 0.98)
		} else {
			sig.StopLoss = ptr(entry * 1.02)
		}
	}
	if sig.TakeProfit == nil {
		if bullish {
			sig.TakeProfit = ptr(entry * 1.05)
		} else {
			sig.TakeProfit = ptr(entry * 0.95)
		}
	}

	if sig.Type == "" {
		sig.Type = "Unknown Signal"
	}
	if sig.Confidence == 0 {
		sig.Confidence = 50
	}
	if sig.Strategy == "" {
		if fallbackStrategy == "" {
			fallbackStrategy = "Unknown"
		}
		sig.Strategy = fallbackStrategy
	}
	if sig.Reasoning == "" {
		if sig.Indicator != "" {
			sig.Reasoning = sig.Indicator
		} else {
			sig.Reasoning = "Pattern detected"
		}
	}
	return sig
}
