package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/c-dsouza/spacereport/pkg/models"
	"github.com/itchyny/gojq"
	"github.com/pkg/errors"
)

// ingestStructured decodes a JSON document into a table. Two layouts are
// recognized: an array of objects (one object per row) and an object of
// arrays (one array per column). Column order follows first appearance in
// the document text, not Go map order.
func ingestStructured(raw []byte) (*models.Table, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return models.NewTable(nil), nil
	}

	var (
		table *models.Table
		err   error
	)
	switch trimmed[0] {
	case '[':
		table, err = decodeObjectRows(trimmed)
	case '{':
		table, err = decodeColumnArrays(trimmed)
	default:
		err = fmt.Errorf("document is neither a JSON array nor a JSON object")
	}

	if err != nil {
		return nil, &IngestionError{Format: FormatStructured, Err: err}
	}
	return table, nil
}

// decodeObjectRows reads [{...}, {...}] keeping key order of first
// appearance as the column order.
func decodeObjectRows(raw []byte) (*models.Table, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}

	var columns []string
	seen := map[string]bool{}
	var rows []models.Record

	for dec.More() {
		if err := expectDelim(dec, '{'); err != nil {
			return nil, errors.Wrap(err, "array element is not an object")
		}

		row := models.Record{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, errors.Wrap(err, "Failed to read object key")
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected token %v as object key", keyTok)
			}

			var v interface{}
			if err := dec.Decode(&v); err != nil {
				return nil, errors.Wrapf(err, "Failed to decode value of %s", key)
			}

			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
			if v != nil {
				row[key] = freezeValue(v)
			}
		}
		if _, err := dec.Token(); err != nil { // closing '}'
			return nil, err
		}

		rows = append(rows, row)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return nil, err
	}

	table := models.NewTable(columns)
	table.Rows = rows
	return table, nil
}

// decodeColumnArrays reads {"col": [...], ...} in document key order.
func decodeColumnArrays(raw []byte) (*models.Table, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var columns []string
	values := map[string][]interface{}{}
	rowCount := 0

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "Failed to read column name")
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v as column name", keyTok)
		}

		var cells []interface{}
		if err := dec.Decode(&cells); err != nil {
			return nil, errors.Wrapf(err, "column %s does not hold an array", key)
		}

		columns = append(columns, key)
		values[key] = cells
		if len(cells) > rowCount {
			rowCount = len(cells)
		}
	}

	table := models.NewTable(columns)
	for i := 0; i < rowCount; i++ {
		row := models.Record{}
		for _, col := range columns {
			cells := values[col]
			if i < len(cells) && cells[i] != nil {
				row[col] = freezeValue(cells[i])
			}
		}
		table.Append(row)
	}

	return table, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %v, got %v", want, tok)
	}
	return nil
}

// freezeValue keeps scalar cell values as-is and freezes nested structures
// to their compact JSON text so later rendering stays deterministic.
func freezeValue(v interface{}) interface{} {
	switch v.(type) {
	case map[string]interface{}, []interface{}:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(raw)
	default:
		return v
	}
}

// ApplyQuery reshapes a JSON document with a jq expression before
// tabulation. Every non-null value the query emits becomes one element of
// the rewritten array document.
func ApplyQuery(raw []byte, query *gojq.Query) ([]byte, error) {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &IngestionError{Format: FormatStructured, Err: errors.Wrap(err, "Failed to parse JSON document")}
	}

	var out []interface{}
	iter := query.Run(doc)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, &IngestionError{Format: FormatStructured, Err: errors.Wrap(err, "Failed to apply query")}
		}
		if v != nil {
			out = append(out, v)
		}
	}

	return json.Marshal(out)
}
