package datasources

import (
	"context"
	"sync"
)

// ClientStateStore is the small key-value port behind per-client notification state.
// Get returns ErrNotFound for keys that were never set or have been removed.
type ClientStateStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// MemoryClientStateStore keeps client state in process memory.
type MemoryClientStateStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ ClientStateStore = (*MemoryClientStateStore)(nil)

func NewMemoryClientStateStore() *MemoryClientStateStore {
	return &MemoryClientStateStore{values: make(map[string]string)}
}

func (s *MemoryClientStateStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryClientStateStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *MemoryClientStateStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
