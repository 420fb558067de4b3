package repo

import (
	"context"
	"sync"

	"formvoice/internal/services/api/commands/domain"
)

// DefaultCapacity is the per form type history kept by Memory
const DefaultCapacity = 500

// Memory keeps the newest entries of each form type in process
type Memory struct {
	mu   sync.RWMutex
	cap  int
	logs map[string][]domain.Activity // oldest first
}

// NewMemory returns a Memory keeping at most capacity entries per form type
func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Memory{cap: capacity, logs: map[string][]domain.Activity{}}
}

// Append implements Repo
func (m *Memory) Append(_ context.Context, a domain.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	log := append(m.logs[a.FormType], a)
	if over := len(log) - m.cap; over > 0 {
		// drop the oldest in place
		n := copy(log, log[over:])
		clear(log[n:])
		log = log[:n]
	}
	m.logs[a.FormType] = log
	return nil
}

// Recent implements Repo
func (m *Memory) Recent(_ context.Context, formType string, limit int) ([]domain.Activity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	log := m.logs[formType]
	if limit <= 0 || limit > len(log) {
		limit = len(log)
	}
	out := make([]domain.Activity, 0, limit)
	for i := len(log) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, log[i])
	}
	return out, nil
}
