package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/arah-infotech/sitebot/internal/core/domain"
	"github.com/arah-infotech/sitebot/internal/core/ports/driven"
)

// Ensure the stores implement the interfaces.
var (
	_ driven.ContactStore     = (*ContactStore)(nil)
	_ driven.ApplicationStore = (*ApplicationStore)(nil)
	_ driven.AdminStore       = (*AdminStore)(nil)
)

// ContactStore is an in-memory implementation of driven.ContactStore.
type ContactStore struct {
	mu       sync.RWMutex
	contacts map[string]domain.ContactMessage
}

// NewContactStore creates a new in-memory contact store.
func NewContactStore() *ContactStore {
	return &ContactStore{contacts: make(map[string]domain.ContactMessage)}
}

// ListContacts returns messages sorted newest first.
func (s *ContactStore) ListContacts(_ context.Context) ([]domain.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.ContactMessage, 0, len(s.contacts))
	for id := range s.contacts {
		result = append(result, s.contacts[id])
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// SaveContact stores a message.
func (s *ContactStore) SaveContact(_ context.Context, m *domain.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts[m.ID] = *m
	return nil
}

// MarkContactRead flags a message as handled.
func (s *ContactStore) MarkContactRead(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.contacts[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.Read = true
	s.contacts[id] = m
	return nil
}

// DeleteContact removes a message.
func (s *ContactStore) DeleteContact(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.contacts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.contacts, id)
	return nil
}

// ApplicationStore is an in-memory implementation of driven.ApplicationStore.
type ApplicationStore struct {
	mu           sync.RWMutex
	applications map[string]domain.JobApplication
}

// NewApplicationStore creates a new in-memory application store.
func NewApplicationStore() *ApplicationStore {
	return &ApplicationStore{applications: make(map[string]domain.JobApplication)}
}

// ListApplications returns applications, optionally filtered by career,
// sorted newest first.
func (s *ApplicationStore) ListApplications(_ context.Context, careerID string) ([]domain.JobApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.JobApplication, 0, len(s.applications))
	for id := range s.applications {
		a := s.applications[id]
		if careerID != "" && a.CareerID != careerID {
			continue
		}
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// SaveApplication stores an application.
func (s *ApplicationStore) SaveApplication(_ context.Context, a *domain.JobApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications[a.ID] = *a
	return nil
}

// AdminStore is an in-memory implementation of driven.AdminStore.
type AdminStore struct {
	mu     sync.RWMutex
	admins map[string]domain.Admin // keyed by lowercase email
}

// NewAdminStore creates a new in-memory admin store.
func NewAdminStore() *AdminStore {
	return &AdminStore{admins: make(map[string]domain.Admin)}
}

// GetAdminByEmail retrieves an admin by email (case-insensitive).
func (s *AdminStore) GetAdminByEmail(_ context.Context, email string) (*domain.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.admins[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

// SaveAdmin stores or updates an admin.
func (s *AdminStore) SaveAdmin(_ context.Context, a *domain.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admins[strings.ToLower(a.Email)] = *a
	return nil
}
