package models

// Record is one row of a table, mapping column name to value.
// A nil value or a missing key means the cell is absent.
type Record map[string]interface{}

// Table is an ordered collection of records sharing one declared column set.
// Row order is insertion order and every stage preserves it.
type Table struct {
	Columns []string
	Rows    []Record
}

// NewTable creates an empty table with the given column order.
func NewTable(columns []string) *Table {
	return &Table{Columns: columns}
}

// Append adds a record to the end of the table.
func (x *Table) Append(r Record) {
	x.Rows = append(x.Rows, r)
}

// RowCount returns the number of rows.
func (x *Table) RowCount() int {
	return len(x.Rows)
}

// HasColumn tells whether name is in the declared column set.
func (x *Table) HasColumn(name string) bool {
	for _, c := range x.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Head returns up to n leading rows.
func (x *Table) Head(n int) []Record {
	if n > len(x.Rows) {
		n = len(x.Rows)
	}
	return x.Rows[:n]
}

// Empty creates a new table sharing the column order but no rows.
func (x *Table) Empty() *Table {
	columns := make([]string, len(x.Columns))
	copy(columns, x.Columns)
	return &Table{Columns: columns}
}
