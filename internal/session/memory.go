package session

import (
	"context"
	"sync"
)

// MemoryStore keeps session values in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, sessionID, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[sessionID][key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, sessionID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values[sessionID] == nil {
		m.values[sessionID] = make(map[string]string)
	}
	m.values[sessionID][key] = value
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values[sessionID], k)
	}
	return nil
}
