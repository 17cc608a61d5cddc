package table

import "fmt"

// ID identifies a table (sheet) inside a remote resource (spreadsheet).
type ID struct {
	Resource string
	Name     string
}

func (id ID) String() string {
	if id.Resource == "" {
		return id.Name
	}
	return fmt.Sprintf("%s/%s", id.Resource, id.Name)
}

// Info describes a table as reported by discovery.
// A RowCount of 0 means the size isn't known.
type Info struct {
	ID       ID
	RowCount int
}

// Table is an ordered list of rows, without the header row.
type Table struct {
	ID   ID
	Rows []Row
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
