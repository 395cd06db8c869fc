package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a process-local Store. It does not survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	token   string
	savedAt time.Time
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (m *MemoryStore) Get(_ context.Context) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.token != "", nil
}

func (m *MemoryStore) Set(_ context.Context, token string) error {
	m.mu.Lock()
	m.token, m.savedAt = token, m.now()
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	m.token, m.savedAt = "", time.Time{}
	m.mu.Unlock()
	return nil
}

// SavedAt reports when the current credential was set.
func (m *MemoryStore) SavedAt(_ context.Context) (time.Time, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.savedAt, m.token != "", nil
}
