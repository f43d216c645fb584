// Package sentiment provides news-based signal providers for the sentiment
// detector. All implementations satisfy signals.SentimentProvider; failures
// are returned to the caller, which degrades to its keyword fallback.
package sentiment

import (
	"context"
	"fmt"

	"github.com/titanalgo/titan/signals"
)

// Static serves a fixed set of headlines per ticker, scored with the shared
// keyword heuristic. Useful for tests and offline runs.
type Static struct {
	Headlines map[string][]string
}

func (s *Static) Signals(ctx context.Context, ticker string) ([]signals.Signal, error) {
	headlines, ok := s.Headlines[ticker]
	if !ok || len(headlines) == 0 {
		return nil, nil
	}
	return scoreToSignals(ticker, headlines), nil
}

// scoreToSignals converts a headline batch into at most one sentiment
// signal, mirroring the scoring used by the detector fallback.
func scoreToSignals(ticker string, headlines []string) []signals.Signal {
	score := signals.ScoreHeadlines(headlines)

	avg := float64(score) / float64(len(headlines))
	switch {
	case avg > 0.1:
		return []signals.Signal{{
			Type:       "Bullish News Sentiment",
			Confidence: clampConfidence(70 + int(avg*30)),
			Reasoning:  fmt.Sprintf("Positive news coverage detected for %s.", ticker),
		}}
	case avg < -0.1:
		return []signals.Signal{{
			Type:       "Bearish News Sentiment",
			Confidence: clampConfidence(70 + int(-avg*30)),
			Reasoning:  fmt.Sprintf("Negative news coverage detected for %s.", ticker),
		}}
	}
	return nil
}

func clampConfidence(c int) int {
	if c > 100 {
		return 100
	}
	if c < 0 {
		return 0
	}
	return c
}
