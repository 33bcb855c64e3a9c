package memory

import (
	"sort"
	"sync"

	"github.com/bokol-ooch/temporizadores/pkg/model"
	"github.com/bokol-ooch/temporizadores/pkg/storage"
	"github.com/bokol-ooch/temporizadores/pkg/timestamp"
)

type recordStore struct {
	store  map[int64]model.Record
	nextID int64
	closed bool
	sync.RWMutex
}

func newRecordStore() *recordStore {
	return &recordStore{
		store:  make(map[int64]model.Record),
		nextID: 1,
	}
}

func (s *recordStore) FetchAll() ([]model.Record, error) {
	models, err := s.collect(storage.Filter{})
	if err != nil {
		return nil, err
	}

	sort.Slice(models, func(i, j int) bool {
		return models[i].ID > models[j].ID
	})

	return models, nil
}

func (s *recordStore) FetchFiltered(f storage.Filter) ([]model.Record, error) {
	models, err := s.collect(f)
	if err != nil {
		return nil, err
	}

	sort.Slice(models, func(i, j int) bool {
		return models[i].ID < models[j].ID
	})

	return models, nil
}

func (s *recordStore) Create(m *model.Record) error {
	s.Lock()
	defer s.Unlock()

	if s.closed {
		return storage.ErrClosed
	}

	m.ID = s.getNextID()
	m.StartTime = timestamp.Normalize(m.StartTime)
	m.EndTime = timestamp.Normalize(m.EndTime)

	s.store[m.ID] = *m

	return nil
}

func (s *recordStore) collect(f storage.Filter) ([]model.Record, error) {
	s.RLock()
	defer s.RUnlock()

	if s.closed {
		return nil, storage.ErrClosed
	}

	models := make([]model.Record, 0, len(s.store))
	for _, m := range s.store {
		if f.Match(&m) {
			models = append(models, m)
		}
	}

	return models, nil
}

func (s *recordStore) close() {
	s.Lock()
	defer s.Unlock()

	s.closed = true
	s.store = make(map[int64]model.Record)
}

func (s *recordStore) getNextID() int64 {
	id := s.nextID
	s.nextID++
	return id
}
