package storage

import (
	"time"

	"github.com/bokol-ooch/temporizadores/pkg/model"
)

// Interface is implemented by the storage
type Interface interface {
	Records() RecordStore
	Close() error
}

// RecordStore is responsible for managing the Record model
type RecordStore interface {
	// FetchAll returns every record, newest (highest ID) first.
	FetchAll() ([]model.Record, error)
	// FetchFiltered returns the records matching f, oldest (lowest ID) first.
	FetchFiltered(f Filter) ([]model.Record, error)
	// Create inserts m and sets m.ID to the assigned identifier.
	Create(m *model.Record) error
}

// Filter restricts FetchFiltered. Zero values impose no constraint.
type Filter struct {
	// Name must match the record name exactly.
	Name string
	// From is an inclusive lower bound on the record start time.
	From time.Time
	// To is an exclusive upper bound on the record end time.
	To time.Time
}

// Match reports whether m satisfies the filter.
func (f Filter) Match(m *model.Record) bool {
	if f.Name != "" && m.Name != f.Name {
		return false
	}
	if !f.From.IsZero() && m.StartTime.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && !m.EndTime.Before(f.To) {
		return false
	}
	return true
}
