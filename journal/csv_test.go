package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titanalgo/titan/signals"
)

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()

	rows, err := csv.NewReader(fh).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVJournalRoundTrip(t *testing.T) {
	dir := t.TempDir()
	sigPath := filepath.Join(dir, "signals.csv")
	btPath := filepath.Join(dir, "backtests.csv")

	j, err := NewCSV(sigPath, btPath)
	require.NoError(t, err)

	tp := 105.0
	require.NoError(t, j.RecordSignal(SignalRecord{
		ID:     "01HTEST",
		Ticker: "BTC-USD",
		Signal: signals.Signal{
			Type:       "Turtle System 1 Long",
			Confidence: 75,
			Entry:      100,
			TakeProfit: &tp,
			Strategy:   "Turtle Trading",
		},
		CreatedAt: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, j.RecordBacktest(BacktestRecord{
		RunID:     "01HRUN",
		CreatedAt: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		Result:    testResult("BTC-USD"),
	}))
	require.NoError(t, j.Close())

	sigRows := readAll(t, sigPath)
	require.Len(t, sigRows, 2)
	assert.Equal(t, "signal_id", sigRows[0][0])
	assert.Equal(t, []string{
		"01HTEST", "BTC-USD", "Turtle System 1 Long", "75",
		"100", "0", "105", "Turtle Trading", "", "",
		"2026-08-31T12:00:00Z",
	}, sigRows[1])

	btRows := readAll(t, btPath)
	require.Len(t, btRows, 2)
	assert.Equal(t, "run_id", btRows[0][0])
	assert.Equal(t, "01HRUN", btRows[1][0])
	assert.Equal(t, "BTC-USD", btRows[1][1])
	// Capped profit factor column.
	assert.Equal(t, "9999", btRows[1][9])
}

func TestCappedProfitFactor(t *testing.T) {
	assert.Equal(t, 2.5, cappedProfitFactor(2.5))
	assert.Equal(t, float64(profitFactorCap), cappedProfitFactor(1e18))
}
