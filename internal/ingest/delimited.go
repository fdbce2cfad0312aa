package ingest

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/c-dsouza/spacereport/pkg/models"
	"github.com/pkg/errors"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// ingestDelimited decodes CSV bytes. The first record is the header and
// fixes the column order. An empty cell is an absent value.
func ingestDelimited(raw []byte) (*models.Table, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM)))

	header, err := reader.Read()
	if err == io.EOF {
		return models.NewTable(nil), nil
	}
	if err != nil {
		return nil, &IngestionError{Format: FormatDelimited, Err: errors.Wrap(err, "Failed to read CSV header")}
	}

	table := models.NewTable(header)
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &IngestionError{Format: FormatDelimited, Err: errors.Wrap(err, "Failed to read CSV row")}
		}

		row := models.Record{}
		for i, col := range header {
			if i < len(fields) && fields[i] != "" {
				row[col] = fields[i]
			}
		}
		table.Append(row)
	}

	return table, nil
}
