package pipeline

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/c-dsouza/spacereport/pkg/models"
)

const parquetRowGroupSize = 16 * 1024 * 1024 // 16M

// WriteParquet writes a table to a SNAPPY-compressed parquet file. Every
// column is stored as UTF8 in canonical text form; absent cells become
// parquet nulls. The table schema is only known at runtime, so the writer
// is built from metadata strings rather than a tagged struct.
func WriteParquet(t *models.Table, path string) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return errors.Wrapf(err, "Failed to create parquet file %s", path)
	}
	defer fw.Close()

	md := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		md[i] = fmt.Sprintf("name=%s, type=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=OPTIONAL", parquetColumnName(col, i))
	}

	pw, err := writer.NewCSVWriter(md, fw, 4)
	if err != nil {
		return errors.Wrap(err, "Failed to create parquet writer")
	}

	pw.RowGroupSize = parquetRowGroupSize
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	rec := make([]*string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			if v, ok := row[col]; ok && v != nil {
				text := models.RenderValue(v)
				rec[i] = &text
			} else {
				rec[i] = nil
			}
		}

		if err := pw.WriteString(rec); err != nil {
			return errors.Wrap(err, "Failed to write parquet row")
		}
	}

	if err := pw.WriteStop(); err != nil {
		return errors.Wrap(err, "Failed to finalize parquet file")
	}

	return nil
}

// parquetColumnName rewrites an arbitrary column header into a safe parquet
// field name.
func parquetColumnName(col string, idx int) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(col) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}

	name := sb.String()
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = fmt.Sprintf("col%d_%s", idx, name)
	}
	return name
}
