package repo

import (
	"context"
	"maps"
	"sync"
	"time"
)

// Memory is a process local Repo, the default when postgres is disabled
type Memory struct {
	mu      sync.RWMutex
	values  map[string]map[string]string
	updated map[string]time.Time
}

// NewMemory returns an empty in-memory Repo
func NewMemory() *Memory {
	return &Memory{
		values:  map[string]map[string]string{},
		updated: map[string]time.Time{},
	}
}

// Values implements Repo
func (m *Memory) Values(_ context.Context, formType string) (map[string]string, time.Time, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.values[formType]))
	maps.Copy(out, m.values[formType])
	return out, m.updated[formType], nil
}

// Upsert implements Repo
func (m *Memory) Upsert(_ context.Context, formType string, values map[string]string, at time.Time) error {
	if len(values) == 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.values[formType]
	if !ok {
		cur = make(map[string]string, len(values))
		m.values[formType] = cur
	}
	maps.Copy(cur, values)
	if at.After(m.updated[formType]) {
		m.updated[formType] = at
	}
	return nil
}

// Clear implements Repo
func (m *Memory) Clear(_ context.Context, formType string) error {
	m.mu.Lock()
	delete(m.values, formType)
	delete(m.updated, formType)
	m.mu.Unlock()
	return nil
}
