package store

import (
	"context"
	"storyrun-service/internal/domain"
	"storyrun-service/internal/ports"
	"sync"
)

// In-memory implementation of the RunStore port.
// The record is replaced as a whole under the lock, so readers observe
// either the previous or the new submission, never a mix of both.
type MemoryRunStore struct {
	mu  sync.RWMutex
	run *domain.RunRecord
}

func NewMemoryRunStore() *MemoryRunStore {
	return &MemoryRunStore{}
}

func (s *MemoryRunStore) Get(ctx context.Context) (*domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.run == nil {
		return nil, ports.ErrRunNotFound
	}

	cp := *s.run
	return &cp, nil
}

func (s *MemoryRunStore) Replace(ctx context.Context, run domain.RunRecord) error {
	s.mu.Lock()
	s.run = &run
	s.mu.Unlock()
	return nil
}
