package ingest

import (
	"bytes"

	"github.com/c-dsouza/spacereport/pkg/models"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ingestSpreadsheet decodes the first sheet of an xlsx workbook. The first
// row is the header. Cells come back as display strings; empty or missing
// trailing cells are absent values.
func ingestSpreadsheet(raw []byte) (*models.Table, error) {
	book, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, &IngestionError{Format: FormatSpreadsheet, Err: errors.Wrap(err, "Failed to open workbook")}
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return models.NewTable(nil), nil
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, &IngestionError{Format: FormatSpreadsheet, Err: errors.Wrapf(err, "Failed to read sheet %s", sheets[0])}
	}
	if len(rows) == 0 {
		return models.NewTable(nil), nil
	}

	header := rows[0]
	table := models.NewTable(header)
	for _, cells := range rows[1:] {
		row := models.Record{}
		for i, col := range header {
			if i < len(cells) && cells[i] != "" {
				row[col] = cells[i]
			}
		}
		table.Append(row)
	}

	return table, nil
}
