package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arah-infotech/sitebot/internal/adapters/driven/storage/memory"
	"github.com/arah-infotech/sitebot/internal/core/domain"
)

func newContentService() *ContentService {
	return NewContentService(
		memory.NewCareerStore(),
		memory.NewProductStore(),
		memory.NewContactStore(),
		memory.NewApplicationStore(),
	)
}

func TestContentService_CreateCareerAssignsIDAndTimestamps(t *testing.T) {
	svc := newContentService()
	career := &domain.Career{Title: "Go Developer", Description: "Build services", Active: true}

	err := svc.CreateCareer(context.Background(), career)

	require.NoError(t, err)
	assert.NotEmpty(t, career.ID)
	assert.False(t, career.CreatedAt.IsZero())
	assert.Equal(t, career.CreatedAt, career.UpdatedAt)
}

func TestContentService_CreateCareerRequiresTitle(t *testing.T) {
	svc := newContentService()

	err := svc.CreateCareer(context.Background(), &domain.Career{Description: "no title"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContentService_UpdateCareerPreservesCreatedAt(t *testing.T) {
	svc := newContentService()
	ctx := context.Background()
	career := &domain.Career{Title: "Go Developer", Description: "Build services", Active: true}
	require.NoError(t, svc.CreateCareer(ctx, career))
	created := career.CreatedAt

	updated := &domain.Career{ID: career.ID, Title: "Senior Go Developer", Description: "Lead services"}
	err := svc.UpdateCareer(ctx, updated)

	require.NoError(t, err)
	assert.Equal(t, created, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created) || updated.UpdatedAt.Equal(created))
}

func TestContentService_UpdateMissingCareer(t *testing.T) {
	svc := newContentService()

	err := svc.UpdateCareer(context.Background(), &domain.Career{ID: "nope", Title: "x", Description: "y"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContentService_ListCareersActiveOnly(t *testing.T) {
	svc := newContentService()
	ctx := context.Background()
	require.NoError(t, svc.CreateCareer(ctx, &domain.Career{Title: "Open", Description: "d", Active: true}))
	require.NoError(t, svc.CreateCareer(ctx, &domain.Career{Title: "Closed", Description: "d", Active: false}))

	active, err := svc.ListCareers(ctx, true)
	require.NoError(t, err)
	all, err := svc.ListCareers(ctx, false)
	require.NoError(t, err)

	assert.Len(t, active, 1)
	assert.Equal(t, "Open", active[0].Title)
	assert.Len(t, all, 2)
}

func TestContentService_CreateProductRequiresName(t *testing.T) {
	svc := newContentService()

	err := svc.CreateProduct(context.Background(), &domain.Product{Description: "no name"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContentService_SubmitContact(t *testing.T) {
	svc := newContentService()
	ctx := context.Background()
	msg := &domain.ContactMessage{Name: "Asha", Email: "asha@example.com", Message: "Hello"}

	require.NoError(t, svc.SubmitContact(ctx, msg))

	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.Read)

	listed, err := svc.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	require.NoError(t, svc.MarkContactRead(ctx, msg.ID))
	listed, err = svc.ListContacts(ctx)
	require.NoError(t, err)
	assert.True(t, listed[0].Read)
}

func TestContentService_SubmitContactRequiresMessage(t *testing.T) {
	svc := newContentService()

	err := svc.SubmitContact(context.Background(), &domain.ContactMessage{Name: "Asha", Email: "a@b.c"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContentService_SubmitApplication(t *testing.T) {
	svc := newContentService()
	ctx := context.Background()
	career := &domain.Career{Title: "Go Developer", Description: "d", Active: true}
	require.NoError(t, svc.CreateCareer(ctx, career))

	app := &domain.JobApplication{CareerID: career.ID, Name: "Ravi", Email: "ravi@example.com"}
	require.NoError(t, svc.SubmitApplication(ctx, app))

	assert.NotEmpty(t, app.ID)

	apps, err := svc.ListApplications(ctx, career.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}

func TestContentService_SubmitApplicationInactiveCareer(t *testing.T) {
	svc := newContentService()
	ctx := context.Background()
	career := &domain.Career{Title: "Closed", Description: "d", Active: false}
	require.NoError(t, svc.CreateCareer(ctx, career))

	err := svc.SubmitApplication(ctx, &domain.JobApplication{CareerID: career.ID, Name: "Ravi", Email: "r@e.c"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContentService_SubmitApplicationUnknownCareer(t *testing.T) {
	svc := newContentService()

	err := svc.SubmitApplication(context.Background(), &domain.JobApplication{CareerID: "missing", Name: "R", Email: "r@e.c"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
