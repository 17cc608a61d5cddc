package table

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Set is an insertion-ordered collection of tables.
// The insertion order is the search priority.
type Set struct {
	tables *linkedhashmap.Map
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{tables: linkedhashmap.New()}
}

// Put adds a table to the set. Re-adding a table with the same id replaces
// its rows but keeps its original position.
func (s *Set) Put(t *Table) {
	s.tables.Put(t.ID, t)
}

// Get looks up a table by its id.
func (s *Set) Get(id ID) (*Table, bool) {
	v, found := s.tables.Get(id)
	if !found {
		return nil, false
	}
	return v.(*Table), true
}

// Tables returns the tables in search order.
func (s *Set) Tables() []*Table {
	if s == nil {
		return nil
	}
	output := make([]*Table, 0, s.tables.Size())
	it := s.tables.Iterator()
	for it.Next() {
		output = append(output, it.Value().(*Table))
	}
	return output
}

// Len returns the number of tables.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.tables.Size()
}

// Records returns the total number of rows across all tables.
func (s *Set) Records() int {
	total := 0
	for _, t := range s.Tables() {
		total += t.Len()
	}
	return total
}
