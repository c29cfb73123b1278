package state

import (
	"sync"

	"github.com/five82/jobsheet/internal/sheet"
)

// Store holds the authoritative record list. The UI is its only writer; every
// commit replaces the list wholesale while unchanged records keep their
// pointers.
type Store struct {
	mu      sync.RWMutex
	records []*sheet.Record
	columns sheet.Columns
	version uint64
}

// NewStore seeds a store with records and the column registry.
func NewStore(records []*sheet.Record, columns sheet.Columns) *Store {
	return &Store{
		records: cloneRecords(records),
		columns: append(sheet.Columns(nil), columns...),
	}
}

// Records returns the current record list. The slice is a copy; the records
// themselves are shared and must not be modified.
func (s *Store) Records() []*sheet.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.records)
}

// Columns returns a copy of the column registry.
func (s *Store) Columns() sheet.Columns {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(sheet.Columns(nil), s.columns...)
}

// Apply commits one field update. Unknown record or column ids leave the
// store untouched and report false.
func (s *Store) Apply(recordID, columnID string, v sheet.Value) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := sheet.ApplyUpdate(s.records, s.columns, recordID, columnID, v)
	if !ok {
		return false
	}
	s.records = next
	s.version++
	return true
}

// Version counts successful Apply calls.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func cloneRecords(items []*sheet.Record) []*sheet.Record {
	if len(items) == 0 {
		return nil
	}
	dup := make([]*sheet.Record, len(items))
	copy(dup, items)
	return dup
}
