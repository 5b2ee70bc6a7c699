package driven

import (
	"context"

	"github.com/arah-infotech/sitebot/internal/core/domain"
)

// CareerStore persists job openings.
type CareerStore interface {
	ListCareers(ctx context.Context, activeOnly bool) ([]domain.Career, error)
	GetCareer(ctx context.Context, id string) (*domain.Career, error)
	SaveCareer(ctx context.Context, c *domain.Career) error
	DeleteCareer(ctx context.Context, id string) error
}

// ProductStore persists product listings.
type ProductStore interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	SaveProduct(ctx context.Context, p *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

// ContactStore persists inbound contact messages.
type ContactStore interface {
	ListContacts(ctx context.Context) ([]domain.ContactMessage, error)
	SaveContact(ctx context.Context, m *domain.ContactMessage) error
	MarkContactRead(ctx context.Context, id string) error
	DeleteContact(ctx context.Context, id string) error
}

// ApplicationStore persists job applications.
type ApplicationStore interface {
	ListApplications(ctx context.Context, careerID string) ([]domain.JobApplication, error)
	SaveApplication(ctx context.Context, a *domain.JobApplication) error
}

// AdminStore persists dashboard users.
type AdminStore interface {
	GetAdminByEmail(ctx context.Context, email string) (*domain.Admin, error)
	SaveAdmin(ctx context.Context, a *domain.Admin) error
}

// ConfigStore provides persistent key-value configuration.
type ConfigStore interface {
	Get(key string) (any, bool)
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetStringSlice(key string) []string
	Set(key string, value any) error
	Save() error
}
