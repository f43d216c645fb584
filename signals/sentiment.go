package signals

import (
	"context"
	"strings"
)

// SentimentProvider supplies sentiment-derived signals for an instrument.
// Implementations typically wrap an external news source; they are the only
// collaborators in the detector layer allowed to perform I/O.
type SentimentProvider interface {
	Signals(ctx context.Context, ticker string) ([]Signal, error)
}

// Sentiment wraps an optional external provider. When the provider is
// absent, fails, or returns nothing, the detector falls back to keyword
// scoring over a small fixed headline table so that degraded operation
// never halts the rest of an evaluation pass.
type Sentiment struct {
	Provider SentimentProvider
}

func NewSentiment(p SentimentProvider) *Sentiment {
	return &Sentiment{Provider: p}
}

func (s *Sentiment) Name() string { return "sentiment" }

// DetectTicker evaluates news sentiment for the instrument. Unlike the
// price-pattern detectors, sentiment is keyed by ticker rather than by the
// bar series.
func (s *Sentiment) DetectTicker(ctx context.Context, ticker string) []Signal {
	if s.Provider != nil {
		sigs, err := s.Provider.Signals(ctx, ticker)
		if err == nil && len(sigs) > 0 {
			first := sigs[0]
			first.Entry = 0
			first.Indicator = "News Scanner"
			return []Signal{first}
		}
	}
	return s.fallback(ticker)
}

var fallbackHeadlines = map[string][]string{
	"BTC-USD": {
		"Bitcoin surges as ETF inflows hit record highs",
		"Adoption of BTC increasing in emerging markets",
	},
	"TSLA": {
		"Tesla delivery numbers beat expectations",
		"New Gigafactory expansion announced",
	},
	"AAPL": {
		"Apple iPhone sales in China showing resilience",
		"New AI features to boost iPad demand",
	},
}

var defaultHeadlines = []string{"Market remains cautious ahead of central bank meeting"}

var positiveWords = []string{
	"surge", "higher", "growth", "positive", "strong",
	"bull", "earnings", "hit", "beat", "expansion",
}

var negativeWords = []string{
	"pressure", "lower", "weak", "cut", "negative",
	"bear", "drag", "drop", "warn",
}

func (s *Sentiment) fallback(ticker string) []Signal {
	headlines, ok := fallbackHeadlines[ticker]
	if !ok {
		headlines = defaultHeadlines
	}

	score := ScoreHeadlines(headlines)
	switch {
	case score > 0:
		return []Signal{{
			Type:       "Bullish News Sentiment",
			Confidence: 75 + score*5,
			Indicator:  "News Scanner",
		}}
	case score < 0:
		return []Signal{{
			Type:       "Bearish News Sentiment",
			Confidence: 75 + (-score)*5,
			Indicator:  "News Scanner",
		}}
	}
	return nil
}

// ScoreHeadlines counts positive minus negative keyword hits across the
// given headlines. It backs both the fallback detector here and the HTTP
// news provider.
func ScoreHeadlines(headlines []string) int {
	score := 0
	for _, h := range headlines {
		lower := strings.ToLower(h)
		for _, w := range positiveWords {
			if strings.Contains(lower, w) {
				score++
			}
		}
		for _, w := range negativeWords {
			if strings.Contains(lower, w) {
				score--
			}
		}
	}
	return score
}
