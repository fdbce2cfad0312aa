package pipeline

import (
	"bytes"
	"compress/gzip"
	"encoding/csv"

	"github.com/c-dsouza/spacereport/pkg/models"
	"github.com/pkg/errors"
)

// ToCSV renders a table to its canonical text encoding: a UTF-8 CSV with
// the header in declared column order and one data row per record. The
// output round-trips: re-ingesting it as CSV reproduces the same columns
// and row values as text.
func ToCSV(t *models.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Columns); err != nil {
		return nil, errors.Wrap(err, "Failed to write CSV header")
	}

	fields := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			fields[i] = models.RenderValue(row[col])
		}
		if err := w.Write(fields); err != nil {
			return nil, errors.Wrap(err, "Failed to write CSV row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "Failed to flush CSV writer")
	}

	return buf.Bytes(), nil
}

// Compress gzips a whole buffer in one shot. No chunking and no seek
// support; decompressing reproduces the input exactly.
func Compress(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)

	if _, err := gw.Write(raw); err != nil {
		return nil, errors.Wrap(err, "Failed to write gzip stream")
	}
	if err := gw.Close(); err != nil {
		return nil, errors.Wrap(err, "Failed to close gzip stream")
	}

	return buf.Bytes(), nil
}
