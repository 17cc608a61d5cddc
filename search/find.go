package search

import (
	"github.com/sp0x/certd/table"
)

// Match is a row found by FindByKey, along with the table it came from.
type Match struct {
	Row   table.Row
	Table table.ID
}

// FindByKey scans the tables in set order and their rows in stored order,
// and returns the first row whose key cell matches.
func FindByKey(set *table.Set, key string, matcher Matcher) (*Match, bool) {
	for _, t := range set.Tables() {
		for _, row := range t.Rows {
			if matcher.Match(row[table.ColumnKey], key) {
				return &Match{Row: row, Table: t.ID}, true
			}
		}
	}
	return nil, false
}
