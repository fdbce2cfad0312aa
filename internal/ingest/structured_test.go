package ingest_test

import (
	"encoding/json"
	"testing"

	"github.com/itchyny/gojq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-dsouza/spacereport/internal/ingest"
)

func TestIngestStructured(t *testing.T) {
	t.Run("Array of objects keeps document key order", func(tt *testing.T) {
		raw := []byte(`[{"zeta":1,"alpha":"x"},{"zeta":2,"alpha":"y","extra":true}]`)

		table, err := ingest.Ingest(raw, ingest.FormatStructured)
		require.NoError(tt, err)
		assert.Equal(tt, []string{"zeta", "alpha", "extra"}, table.Columns)
		require.Equal(tt, 2, table.RowCount())
		assert.Equal(tt, json.Number("1"), table.Rows[0]["zeta"])
		assert.Nil(tt, table.Rows[0]["extra"])
		assert.Equal(tt, true, table.Rows[1]["extra"])
	})

	t.Run("Null values are absent cells", func(tt *testing.T) {
		raw := []byte(`[{"a":null,"b":"x"}]`)

		table, err := ingest.Ingest(raw, ingest.FormatStructured)
		require.NoError(tt, err)
		require.Equal(tt, 1, table.RowCount())
		assert.Nil(tt, table.Rows[0]["a"])
		assert.Equal(tt, "x", table.Rows[0]["b"])
	})

	t.Run("Nested structures freeze to JSON text", func(tt *testing.T) {
		raw := []byte(`[{"meta":{"k":1},"tags":["a","b"]}]`)

		table, err := ingest.Ingest(raw, ingest.FormatStructured)
		require.NoError(tt, err)
		require.Equal(tt, 1, table.RowCount())
		assert.Equal(tt, `{"k":1}`, table.Rows[0]["meta"])
		assert.Equal(tt, `["a","b"]`, table.Rows[0]["tags"])
	})

	t.Run("Object of arrays is column oriented", func(tt *testing.T) {
		raw := []byte(`{"name":["a","b"],"size":[1,2,3]}`)

		table, err := ingest.Ingest(raw, ingest.FormatStructured)
		require.NoError(tt, err)
		assert.Equal(tt, []string{"name", "size"}, table.Columns)
		require.Equal(tt, 3, table.RowCount())
		assert.Equal(tt, "b", table.Rows[1]["name"])
		assert.Nil(tt, table.Rows[2]["name"])
		assert.Equal(tt, json.Number("3"), table.Rows[2]["size"])
	})

	t.Run("Scalar document is an error", func(tt *testing.T) {
		_, err := ingest.Ingest([]byte(`42`), ingest.FormatStructured)
		require.Error(tt, err)
	})

	t.Run("Empty document yields an empty table", func(tt *testing.T) {
		table, err := ingest.Ingest([]byte("  \n"), ingest.FormatStructured)
		require.NoError(tt, err)
		assert.Equal(tt, 0, table.RowCount())
	})
}

func TestApplyQuery(t *testing.T) {
	t.Run("Reshapes a wrapped document into an array", func(tt *testing.T) {
		raw := []byte(`{"rows":[{"a":1},{"a":2}],"meta":"ignored"}`)
		query, err := gojq.Parse(".rows[]")
		require.NoError(tt, err)

		out, err := ingest.ApplyQuery(raw, query)
		require.NoError(tt, err)

		table, err := ingest.Ingest(out, ingest.FormatStructured)
		require.NoError(tt, err)
		assert.Equal(tt, []string{"a"}, table.Columns)
		assert.Equal(tt, 2, table.RowCount())
	})

	t.Run("Query errors surface as ingestion errors", func(tt *testing.T) {
		query, err := gojq.Parse(".missing[]")
		require.NoError(tt, err)

		_, err = ingest.ApplyQuery([]byte(`{"rows":[]}`), query)
		require.Error(tt, err)
	})
}
