package storage

import (
	"context"
	"sync"
)

// memoryStore keeps values in process memory. Nothing survives a restart.
type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty in-memory store
func NewMemory() *memoryStore {
	return &memoryStore{
		values: make(map[string]string),
	}
}

func (m *memoryStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *memoryStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *memoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
