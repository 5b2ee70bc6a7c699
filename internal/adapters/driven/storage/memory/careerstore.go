// Package memory provides in-memory store implementations used by tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/arah-infotech/sitebot/internal/core/domain"
	"github.com/arah-infotech/sitebot/internal/core/ports/driven"
)

// Ensure CareerStore implements the interface.
var _ driven.CareerStore = (*CareerStore)(nil)

// CareerStore is an in-memory implementation of driven.CareerStore.
type CareerStore struct {
	mu      sync.RWMutex
	careers map[string]domain.Career
}

// NewCareerStore creates a new in-memory career store.
func NewCareerStore() *CareerStore {
	return &CareerStore{careers: make(map[string]domain.Career)}
}

// ListCareers returns openings sorted newest first.
func (s *CareerStore) ListCareers(_ context.Context, activeOnly bool) ([]domain.Career, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Career, 0, len(s.careers))
	for id := range s.careers {
		c := s.careers[id]
		if activeOnly && !c.Active {
			continue
		}
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// GetCareer retrieves an opening by ID.
func (s *CareerStore) GetCareer(_ context.Context, id string) (*domain.Career, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.careers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

// SaveCareer stores or updates an opening.
func (s *CareerStore) SaveCareer(_ context.Context, c *domain.Career) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.careers[c.ID] = *c
	return nil
}

// DeleteCareer removes an opening.
func (s *CareerStore) DeleteCareer(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.careers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.careers, id)
	return nil
}
