// Package store holds uploaded datasets in memory. Documents are
// never persisted; restarting the server clears every dataset.
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Nitesh1413/ai-data-cleaner/domain/profile"
	"github.com/Nitesh1413/ai-data-cleaner/domain/table"
	"github.com/Nitesh1413/ai-data-cleaner/internal/errors"
)

// Dataset couples an uploaded table with its computed report
type Dataset struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	Table      *table.Table           `json:"-"`
	Report     *profile.DatasetReport `json:"report,omitempty"`
	UploadedAt time.Time              `json:"uploaded_at"`
}

// DatasetStore is a concurrency-safe in-memory dataset registry
type DatasetStore struct {
	mu       sync.RWMutex
	datasets map[string]*Dataset
}

// NewDatasetStore creates an empty store
func NewDatasetStore() *DatasetStore {
	return &DatasetStore{datasets: make(map[string]*Dataset)}
}

// Add registers a table under a fresh ID and returns the dataset
func (s *DatasetStore) Add(name string, tbl *table.Table, report *profile.DatasetReport) *Dataset {
	ds := &Dataset{
		ID:         uuid.NewString(),
		Name:       name,
		Table:      tbl,
		Report:     report,
		UploadedAt: time.Now(),
	}

	s.mu.Lock()
	s.datasets[ds.ID] = ds
	s.mu.Unlock()

	return ds
}

// Get returns the dataset for id
func (s *DatasetStore) Get(id string) (*Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ds, ok := s.datasets[id]
	if !ok {
		return nil, errors.NotFound("dataset")
	}
	return ds, nil
}

// List returns all datasets ordered by upload time, newest first
func (s *DatasetStore) List() []*Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Dataset, 0, len(s.datasets))
	for _, ds := range s.datasets {
		out = append(out, ds)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out
}

// Delete removes the dataset for id
func (s *DatasetStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.datasets[id]; !ok {
		return errors.NotFound("dataset")
	}
	delete(s.datasets, id)
	return nil
}
