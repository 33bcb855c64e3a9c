package memory

import "github.com/bokol-ooch/temporizadores/pkg/storage"

// Store contains all memory-based sub-stores for managing the persistent models
type store struct {
	records *recordStore
}

// NewStore creates a new memory-based Storage interface
func NewStore() storage.Interface {
	return &store{
		records: newRecordStore(),
	}
}

// Records returns a sub-store for managing the record model
func (s *store) Records() storage.RecordStore {
	return s.records
}

// Close drops every record, later calls on the store fail with
// storage.ErrClosed.
func (s *store) Close() error {
	s.records.close()
	return nil
}
