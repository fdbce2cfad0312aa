package pipeline

import (
	"encoding/json"
	"time"

	"github.com/araddon/dateparse"

	"github.com/c-dsouza/spacereport/pkg/models"
)

const (
	// DefaultTimestampColumn is the column the partitioning stage looks for.
	DefaultTimestampColumn = "timestamp"
	// DefaultHotWindow is the age cutoff separating hot from cold rows.
	DefaultHotWindow = 30 * 24 * time.Hour
)

// PartitionResult is the output of the partitioning stage. When Skipped is
// set the table had no timestamp column and no split was attempted; callers
// must surface that state instead of treating everything as hot or cold.
type PartitionResult struct {
	Skipped      bool
	Hot          *models.Table
	Cold         *models.Table
	Unclassified int
}

// Partition splits a table into hot (timestamp >= cutoff) and cold
// (timestamp < cutoff) partitions. A row whose timestamp cannot be parsed
// lands in neither partition and is reported through Unclassified, so the
// split stays observable and lossless. The cutoff is computed once by the
// caller; every row in one call is judged against the same instant.
func Partition(t *models.Table, tsColumn string, cutoff time.Time) *PartitionResult {
	if !t.HasColumn(tsColumn) {
		return &PartitionResult{Skipped: true}
	}

	result := &PartitionResult{
		Hot:  t.Empty(),
		Cold: t.Empty(),
	}

	for _, row := range t.Rows {
		ts, ok := parseTimestamp(row[tsColumn])
		switch {
		case !ok:
			result.Unclassified++
		case !ts.Before(cutoff):
			result.Hot.Append(row)
		default:
			result.Cold.Append(row)
		}
	}

	return result
}

// parseTimestamp interprets a cell value as a point in time. Strings go
// through flexible layout detection; bare numbers are unix seconds.
func parseTimestamp(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		ts, err := dateparse.ParseAny(t)
		if err != nil {
			return time.Time{}, false
		}
		return ts, true
	case json.Number:
		sec, err := t.Int64()
		if err != nil {
			f, ferr := t.Float64()
			if ferr != nil {
				return time.Time{}, false
			}
			sec = int64(f)
		}
		return time.Unix(sec, 0), true
	case float64:
		return time.Unix(int64(t), 0), true
	case int64:
		return time.Unix(t, 0), true
	case int:
		return time.Unix(int64(t), 0), true
	default:
		return time.Time{}, false
	}
}
