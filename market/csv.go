package market

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ulikunitz/xz"
)

// Timestamp layouts accepted by LoadCSV, tried in order.
var csvLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// LoadCSV reads a bar series from a CSV file with columns
// time,open,high,low,close[,volume]. Files ending in .xz are decompressed
// transparently. A header row is tolerated and lines that do not parse are
// skipped; the resulting series is validated before being returned.
func LoadCSV(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bars: %w", err)
	}
	defer f.Close()

	var rd io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open xz stream: %w", err)
		}
		rd = xr
	}

	return ReadCSV(rd)
}

// ReadCSV parses bar rows from r. See LoadCSV for the expected format.
func ReadCSV(r io.Reader) (Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var series Series
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read bars: %w", err)
		}
		if len(rec) < 5 {
			continue
		}

		ts, err := parseTime(strings.TrimSpace(rec[0]))
		if err != nil {
			// Header or junk line.
			continue
		}

		vals := make([]float64, 0, 5)
		ok := true
		for _, field := range rec[1:min(len(rec), 6)] {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				ok = false
				break
			}
			vals = append(vals, v)
		}
		if !ok || len(vals) < 4 {
			continue
		}

		b := Bar{Time: ts, Open: vals[0], High: vals[1], Low: vals[2], Close: vals[3]}
		if len(vals) > 4 {
			b.Volume = vals[4]
		}
		series = append(series, b)
	}

	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bar series: %w", err)
	}
	return series, nil
}

func parseTime(s string) (time.Time, error) {
	// Unix seconds first, then the text layouts.
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	for _, layout := range csvLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
