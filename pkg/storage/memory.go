package storage

import (
	"context"
	"sync"

	"github.com/budget-zero/backend/pkg/models"
)

// MemoryStorage keeps the snapshot in memory. Everything is lost when the
// process ends.
type MemoryStorage struct {
	mu       sync.Mutex
	snapshot Snapshot
}

// NewMemory returns an empty in-memory storage.
func NewMemory() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load(_ context.Context) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return clone(m.snapshot), nil
}

func (m *MemoryStorage) Save(_ context.Context, snapshot Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snapshot = clone(snapshot)
	return nil
}

func (m *MemoryStorage) Ping(_ context.Context) error {
	return nil
}

func (m *MemoryStorage) Close() error {
	return nil
}

func clone(s Snapshot) Snapshot {
	out := Snapshot{
		Transactions: make([]models.Transaction, len(s.Transactions)),
		Categories:   make([]models.Category, len(s.Categories)),
		Labels:       append([]models.Label{}, s.Labels...),
	}

	for i, t := range s.Transactions {
		out.Transactions[i] = t.Clone()
	}

	for i, c := range s.Categories {
		out.Categories[i] = c.Clone()
	}

	return out
}
