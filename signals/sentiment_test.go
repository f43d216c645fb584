package signals

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingProvider struct{}

func (failingProvider) Signals(ctx context.Context, ticker string) ([]Signal, error) {
	return nil, errors.New("news feed unreachable")
}

type fixedProvider struct {
	sigs []Signal
}

func (p fixedProvider) Signals(ctx context.Context, ticker string) ([]Signal, error) {
	return p.sigs, nil
}

func TestSentimentProviderResult(t *testing.T) {
	det := NewSentiment(fixedProvider{sigs: []Signal{{
		Type:       "Bullish News Sentiment",
		Confidence: 91,
		Entry:      42, // providers do not price entries
		Reasoning:  "Positive news coverage detected for TSLA.",
	}}})

	sigs := det.DetectTicker(context.Background(), "TSLA")
	require.Len(t, sigs, 1)
	assert.Equal(t, 91, sigs[0].Confidence)
	assert.Equal(t, 0.0, sigs[0].Entry)
	assert.Equal(t, "News Scanner", sigs[0].Indicator)
}

func TestSentimentFallbackOnProviderFailure(t *testing.T) {
	det := NewSentiment(failingProvider{})

	sigs := det.DetectTicker(context.Background(), "TSLA")
	require.Len(t, sigs, 1)
	// "beat" and "expansion" each score +1: 75 + 2*5.
	assert.Equal(t, "Bullish News Sentiment", sigs[0].Type)
	assert.Equal(t, 85, sigs[0].Confidence)
}

func TestSentimentFallbackWithoutProvider(t *testing.T) {
	det := NewSentiment(nil)

	sigs := det.DetectTicker(context.Background(), "BTC-USD")
	require.Len(t, sigs, 1)
	assert.Equal(t, "Bullish News Sentiment", sigs[0].Type)
}

func TestSentimentNeutralTicker(t *testing.T) {
	det := NewSentiment(nil)
	assert.Empty(t, det.DetectTicker(context.Background(), "UNKNOWN"))
}

func TestScoreHeadlines(t *testing.T) {
	assert.Equal(t, 2, ScoreHeadlines([]string{"Strong growth reported"}))
	assert.Equal(t, -1, ScoreHeadlines([]string{"Analysts warn of slowdown"}))
	assert.Equal(t, 0, ScoreHeadlines(nil))
}
