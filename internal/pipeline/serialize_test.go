package pipeline_test

import (
	"bytes"
	"compress/gzip"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-dsouza/spacereport/internal/ingest"
	"github.com/c-dsouza/spacereport/internal/pipeline"
	"github.com/c-dsouza/spacereport/pkg/models"
)

func TestToCSV(t *testing.T) {
	t.Run("Header follows declared column order", func(tt *testing.T) {
		table := buildTable([]string{"b", "a"},
			models.Record{"a": "1", "b": "2"},
		)

		raw, err := pipeline.ToCSV(table)
		require.NoError(tt, err)
		lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
		require.Equal(tt, 2, len(lines))
		assert.Equal(tt, "b,a", lines[0])
		assert.Equal(tt, "2,1", lines[1])
	})

	t.Run("Round-trips through the delimited decoder", func(tt *testing.T) {
		table := buildTable([]string{"name", "count", "note"},
			models.Record{"name": "alpha", "count": 3.5, "note": "with, comma"},
			models.Record{"name": "beta", "count": 7, "note": "plain"},
		)

		raw, err := pipeline.ToCSV(table)
		require.NoError(tt, err)

		back, err := ingest.Ingest(raw, ingest.FormatDelimited)
		require.NoError(tt, err)
		require.Equal(tt, table.Columns, back.Columns)
		require.Equal(tt, table.RowCount(), back.RowCount())
		for i, row := range table.Rows {
			for _, col := range table.Columns {
				assert.Equal(tt, models.RenderValue(row[col]), models.RenderValue(back.Rows[i][col]))
			}
		}
	})
}

func TestCompress(t *testing.T) {
	t.Run("Decompression restores the input exactly", func(tt *testing.T) {
		raw := []byte("some text worth keeping\nwith a second line\n")

		compressed, err := pipeline.Compress(raw)
		require.NoError(tt, err)

		gr, err := gzip.NewReader(bytes.NewReader(compressed))
		require.NoError(tt, err)
		restored, err := ioutil.ReadAll(gr)
		require.NoError(tt, err)
		require.NoError(tt, gr.Close())
		assert.Equal(tt, raw, restored)
	})

	t.Run("Repetitive input compresses smaller", func(tt *testing.T) {
		raw := []byte(strings.Repeat("sensor-7,ok,21.5,2020-01-01T00:00:00Z\n", 64))
		require.True(tt, len(raw) >= 1024)

		compressed, err := pipeline.Compress(raw)
		require.NoError(tt, err)
		assert.Less(tt, len(compressed), len(raw))
	})

	t.Run("Deterministic for the same input", func(tt *testing.T) {
		raw := []byte("same bytes in, same bytes out")

		a, err := pipeline.Compress(raw)
		require.NoError(tt, err)
		b, err := pipeline.Compress(raw)
		require.NoError(tt, err)
		assert.Equal(tt, a, b)
	})
}
