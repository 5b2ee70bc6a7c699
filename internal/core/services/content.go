package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arah-infotech/sitebot/internal/core/domain"
	"github.com/arah-infotech/sitebot/internal/core/ports/driven"
	"github.com/arah-infotech/sitebot/internal/core/ports/driving"
)

// Ensure ContentService implements the interface.
var _ driving.ContentService = (*ContentService)(nil)

// ContentService manages careers, products, contact messages and job
// applications on top of the injected stores.
type ContentService struct {
	careers      driven.CareerStore
	products     driven.ProductStore
	contacts     driven.ContactStore
	applications driven.ApplicationStore
}

// NewContentService creates a content service with injected stores.
func NewContentService(
	careers driven.CareerStore,
	products driven.ProductStore,
	contacts driven.ContactStore,
	applications driven.ApplicationStore,
) *ContentService {
	return &ContentService{
		careers:      careers,
		products:     products,
		contacts:     contacts,
		applications: applications,
	}
}

// ListCareers returns job openings, optionally only active ones.
func (s *ContentService) ListCareers(ctx context.Context, activeOnly bool) ([]domain.Career, error) {
	return s.careers.ListCareers(ctx, activeOnly)
}

// GetCareer returns a single opening by ID.
func (s *ContentService) GetCareer(ctx context.Context, id string) (*domain.Career, error) {
	return s.careers.GetCareer(ctx, id)
}

// CreateCareer stores a new opening, assigning an ID and timestamps.
func (s *ContentService) CreateCareer(ctx context.Context, c *domain.Career) error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("%w: career title is required", domain.ErrInvalidInput)
	}
	c.ID = uuid.New().String()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	return s.careers.SaveCareer(ctx, c)
}

// UpdateCareer replaces an existing opening.
func (s *ContentService) UpdateCareer(ctx context.Context, c *domain.Career) error {
	existing, err := s.careers.GetCareer(ctx, c.ID)
	if err != nil {
		return err
	}
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now()
	return s.careers.SaveCareer(ctx, c)
}

// DeleteCareer removes an opening.
func (s *ContentService) DeleteCareer(ctx context.Context, id string) error {
	return s.careers.DeleteCareer(ctx, id)
}

// ListProducts returns all product listings.
func (s *ContentService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.ListProducts(ctx)
}

// CreateProduct stores a new product listing.
func (s *ContentService) CreateProduct(ctx context.Context, p *domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product name is required", domain.ErrInvalidInput)
	}
	p.ID = uuid.New().String()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	return s.products.SaveProduct(ctx, p)
}

// UpdateProduct replaces an existing product listing.
func (s *ContentService) UpdateProduct(ctx context.Context, p *domain.Product) error {
	existing, err := s.products.GetProduct(ctx, p.ID)
	if err != nil {
		return err
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	return s.products.SaveProduct(ctx, p)
}

// DeleteProduct removes a product listing.
func (s *ContentService) DeleteProduct(ctx context.Context, id string) error {
	return s.products.DeleteProduct(ctx, id)
}

// ListContacts returns all inbound contact messages, newest first.
func (s *ContentService) ListContacts(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.contacts.ListContacts(ctx)
}

// SubmitContact stores a public contact-form submission.
func (s *ContentService) SubmitContact(ctx context.Context, m *domain.ContactMessage) error {
	if strings.TrimSpace(m.Message) == "" {
		return fmt.Errorf("%w: message body is required", domain.ErrInvalidInput)
	}
	m.ID = uuid.New().String()
	m.Read = false
	m.CreatedAt = time.Now()
	return s.contacts.SaveContact(ctx, m)
}

// MarkContactRead flags a contact message as handled.
func (s *ContentService) MarkContactRead(ctx context.Context, id string) error {
	return s.contacts.MarkContactRead(ctx, id)
}

// DeleteContact removes a contact message.
func (s *ContentService) DeleteContact(ctx context.Context, id string) error {
	return s.contacts.DeleteContact(ctx, id)
}

// ListApplications returns job applications, optionally filtered by career.
func (s *ContentService) ListApplications(ctx context.Context, careerID string) ([]domain.JobApplication, error) {
	return s.applications.ListApplications(ctx, careerID)
}

// SubmitApplication stores a candidate application after checking the
// opening exists and is active.
func (s *ContentService) SubmitApplication(ctx context.Context, a *domain.JobApplication) error {
	career, err := s.careers.GetCareer(ctx, a.CareerID)
	if err != nil {
		return fmt.Errorf("lookup career %s: %w", a.CareerID, err)
	}
	if !career.Active {
		return fmt.Errorf("%w: career %s is not accepting applications", domain.ErrInvalidInput, a.CareerID)
	}
	a.ID = uuid.New().String()
	a.CreatedAt = time.Now()
	return s.applications.SaveApplication(ctx, a)
}
