package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// RenderValue converts a cell value to its canonical text form. The rendering
// is deterministic and locale-independent so that serializing a table and
// re-ingesting it yields the same values as text. Absent cells render empty.
func RenderValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", t)
	}
}
