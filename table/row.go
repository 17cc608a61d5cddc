package table

import "strings"

// Column positions inside a Row.
const (
	ColumnKey = iota
	ColumnName
	ColumnFather
	ColumnMother
	ColumnInstitution
	ColumnCourse
	ColumnResult

	// ColumnCount is the number of columns fetched for every row (A:G).
	ColumnCount
)

// Row is a positional record. Absent cells are empty strings.
type Row [ColumnCount]string

// NewRow builds a row from a variable number of cells.
// Cells past ColumnCount are dropped, missing ones stay empty.
func NewRow(cells ...string) Row {
	var r Row
	copy(r[:], cells)
	return r
}

// Key returns the trimmed key cell.
func (r Row) Key() string {
	return strings.TrimSpace(r[ColumnKey])
}

// IsBlank is true when every cell of the row is empty or whitespace.
func (r Row) IsBlank() bool {
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
