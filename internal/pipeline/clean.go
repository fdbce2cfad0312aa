package pipeline

import (
	"fmt"
	"strings"

	"github.com/c-dsouza/spacereport/pkg/models"
)

// CleanResult is the output of the cleaning stage.
type CleanResult struct {
	Table *models.Table
	Stats models.CleanStats
}

// Clean removes incomplete rows first, then exact-duplicate rows from the
// remainder, counting each separately. A row removed as incomplete is never
// also counted as a duplicate. The input table is not modified; relative
// order of surviving rows is preserved and the first occurrence of a
// duplicate set wins.
func Clean(t *models.Table) *CleanResult {
	result := &CleanResult{Table: t.Empty()}

	seen := map[string]struct{}{}
	for _, row := range t.Rows {
		if !rowComplete(t.Columns, row) {
			result.Stats.IncompleteRemoved++
			continue
		}

		key := rowFingerprint(t.Columns, row)
		if _, ok := seen[key]; ok {
			result.Stats.DuplicatesRemoved++
			continue
		}
		seen[key] = struct{}{}

		result.Table.Append(row)
	}

	return result
}

// rowComplete tells whether every declared column holds a present value.
func rowComplete(columns []string, row models.Record) bool {
	for _, col := range columns {
		if v, ok := row[col]; !ok || v == nil {
			return false
		}
	}
	return true
}

// rowFingerprint builds a canonical key over all columns. The rendered text
// is tagged with the value's dynamic type so a numeric 1 and a string "1"
// never collapse into one row.
func rowFingerprint(columns []string, row models.Record) string {
	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		v := row[col]
		parts = append(parts, fmt.Sprintf("%T=%s", v, models.RenderValue(v)))
	}
	return strings.Join(parts, "\x1f")
}
