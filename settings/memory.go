package settings

import (
	"context"
	"sync"
)

// MemoryStore keeps values in process. Values are lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	owners map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{owners: map[string]map[string]string{}}
}

func (m *MemoryStore) Load(_ context.Context, owner string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := map[string]string{}
	for k, v := range m.owners[owner] {
		out[k] = v
	}
	return out, nil
}

func (m *MemoryStore) Save(_ context.Context, owner string, values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.owners[owner] == nil {
		m.owners[owner] = map[string]string{}
	}
	for k, v := range values {
		m.owners[owner][k] = v
	}
	return nil
}
