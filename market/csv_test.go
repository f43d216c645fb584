package market

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

const sampleCSV = `time,open,high,low,close,volume
2024-01-01,100,105,99,102,5000
2024-01-02,102,107,101,105,6000
not a bar line
2024-01-03,105,108,104,106,7000
`

func TestReadCSV(t *testing.T) {
	series, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, series, 3)

	assert.Equal(t, 102.0, series[0].Close)
	assert.Equal(t, 7000.0, series[2].Volume)
	assert.True(t, series[1].Time.After(series[0].Time))
}

func TestReadCSVUnixSeconds(t *testing.T) {
	series, err := ReadCSV(strings.NewReader("1704067200,100,101,99,100\n1704153600,100,102,99,101\n"))
	require.NoError(t, err)
	require.Len(t, series, 2)
	// Volume column is optional.
	assert.Equal(t, 0.0, series[0].Volume)
}

func TestReadCSVRejectsOutOfOrder(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("2024-01-02,1,2,1,1\n2024-01-01,1,2,1,1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid bar series")
}

func TestLoadCSVXZ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.csv.xz")

	f, err := os.Create(path)
	require.NoError(t, err)
	w, err := xz.NewWriter(f)
	require.NoError(t, err)
	_, err = w.Write([]byte(sampleCSV))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	series, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Len(t, series, 3)
}
