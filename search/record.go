package search

import (
	"strings"

	"github.com/sp0x/certd/table"
)

// Placeholder is used for cells that have no value.
const Placeholder = "N/A"

// Record is a certificate record as handed to the presentation layer.
type Record struct {
	AdmitNumber    string `json:"admitNumber"`
	StudentName    string `json:"studentName"`
	FatherName     string `json:"fatherName"`
	MotherName     string `json:"motherName"`
	Institution    string `json:"institution"`
	Course         string `json:"course"`
	Result         string `json:"result"`
	SourceTable    string `json:"sourceTable"`
	SourceResource string `json:"sourceResource,omitempty"`
}

// ToRecord maps a positional row to a record.
func ToRecord(row table.Row, source table.ID) *Record {
	cell := func(i int) string {
		v := strings.TrimSpace(row[i])
		if v == "" {
			return Placeholder
		}
		return v
	}
	return &Record{
		AdmitNumber:    cell(table.ColumnKey),
		StudentName:    cell(table.ColumnName),
		FatherName:     cell(table.ColumnFather),
		MotherName:     cell(table.ColumnMother),
		Institution:    cell(table.ColumnInstitution),
		Course:         cell(table.ColumnCourse),
		Result:         cell(table.ColumnResult),
		SourceTable:    source.Name,
		SourceResource: source.Resource,
	}
}
