// Package driving provides interfaces exposed by core services to inbound
// adapters (primary ports): the HTTP API, the CLI, and the chat TUI.
package driving

import (
	"context"

	"github.com/arah-infotech/sitebot/internal/core/domain"
)

// ChatService turns a user message into a grounded assistant reply.
type ChatService interface {
	// Reply answers a single user message using the current website
	// knowledge corpus. Failures are one of the closed chat error kinds
	// (domain.ErrChatNotConfigured, domain.ErrKnowledgeNotReady,
	// domain.ErrProviderFailure); boundaries map them to fixed display
	// strings via domain.DisplayReply.
	Reply(ctx context.Context, message string) (string, error)
}

// ContentService manages site content: careers, products, contact messages
// and job applications.
type ContentService interface {
	ListCareers(ctx context.Context, activeOnly bool) ([]domain.Career, error)
	GetCareer(ctx context.Context, id string) (*domain.Career, error)
	CreateCareer(ctx context.Context, c *domain.Career) error
	UpdateCareer(ctx context.Context, c *domain.Career) error
	DeleteCareer(ctx context.Context, id string) error

	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, p *domain.Product) error
	UpdateProduct(ctx context.Context, p *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error

	ListContacts(ctx context.Context) ([]domain.ContactMessage, error)
	SubmitContact(ctx context.Context, m *domain.ContactMessage) error
	MarkContactRead(ctx context.Context, id string) error
	DeleteContact(ctx context.Context, id string) error

	ListApplications(ctx context.Context, careerID string) ([]domain.JobApplication, error)
	SubmitApplication(ctx context.Context, a *domain.JobApplication) error
}

// AuthService authenticates dashboard admins.
type AuthService interface {
	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, email, password string) (string, error)

	// Verify validates a session token and returns the admin email.
	Verify(token string) (string, error)
}
