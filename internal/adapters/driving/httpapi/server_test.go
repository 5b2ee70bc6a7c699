package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arah-infotech/sitebot/internal/core/domain"
)

// stubChat returns a canned reply or error.
type stubChat struct {
	reply string
	err   error
	got   string
}

func (s *stubChat) Reply(_ context.Context, message string) (string, error) {
	s.got = message
	return s.reply, s.err
}

// stubContent backs the content routes with fixed data.
type stubContent struct {
	careers      []domain.Career
	products     []domain.Product
	contacts     []domain.ContactMessage
	applications []domain.JobApplication
	err          error

	createdCareer *domain.Career
	deletedCareer string
	submitted     *domain.ContactMessage
	application   *domain.JobApplication
	listedCareer  string
}

func (s *stubContent) ListCareers(_ context.Context, _ bool) ([]domain.Career, error) {
	return s.careers, s.err
}

func (s *stubContent) GetCareer(_ context.Context, id string) (*domain.Career, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.careers {
		if s.careers[i].ID == id {
			return &s.careers[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubContent) CreateCareer(_ context.Context, c *domain.Career) error {
	if s.err != nil {
		return s.err
	}
	c.ID = "generated-id"
	s.createdCareer = c
	return nil
}

func (s *stubContent) UpdateCareer(_ context.Context, _ *domain.Career) error { return s.err }

func (s *stubContent) DeleteCareer(_ context.Context, id string) error {
	s.deletedCareer = id
	return s.err
}

func (s *stubContent) ListProducts(_ context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubContent) CreateProduct(_ context.Context, _ *domain.Product) error { return s.err }
func (s *stubContent) UpdateProduct(_ context.Context, _ *domain.Product) error { return s.err }
func (s *stubContent) DeleteProduct(_ context.Context, _ string) error          { return s.err }

func (s *stubContent) ListContacts(_ context.Context) ([]domain.ContactMessage, error) {
	return s.contacts, s.err
}

func (s *stubContent) SubmitContact(_ context.Context, m *domain.ContactMessage) error {
	s.submitted = m
	return s.err
}

func (s *stubContent) MarkContactRead(_ context.Context, _ string) error { return s.err }
func (s *stubContent) DeleteContact(_ context.Context, _ string) error   { return s.err }

func (s *stubContent) ListApplications(_ context.Context, careerID string) ([]domain.JobApplication, error) {
	s.listedCareer = careerID
	return s.applications, s.err
}

func (s *stubContent) SubmitApplication(_ context.Context, a *domain.JobApplication) error {
	s.application = a
	return s.err
}

// stubAuth accepts a single credential pair and token.
type stubAuth struct{}

func (stubAuth) Login(_ context.Context, email, password string) (string, error) {
	if email == "admin@example.com" && password == "secret-pass" {
		return "good-token", nil
	}
	return "", domain.ErrUnauthorized
}

func (stubAuth) Verify(token string) (string, error) {
	if token == "good-token" {
		return "admin@example.com", nil
	}
	return "", domain.ErrUnauthorized
}

func newTestServer(chat *stubChat, content *stubContent) *Server {
	if chat == nil {
		chat = &stubChat{}
	}
	if content == nil {
		content = &stubContent{}
	}
	return NewServer(Config{}, chat, content, stubAuth{})
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, newTestServer(nil, nil).Handler(), http.MethodGet, "/api/health", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestChat_Success(t *testing.T) {
	chat := &stubChat{reply: "We offer cloud services."}
	rec := doJSON(t, newTestServer(chat, nil).Handler(), http.MethodPost, "/api/chatbot",
		domain.ChatRequest{Message: "  what do you offer?  "}, "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "We offer cloud services.", resp.Reply)
	assert.Equal(t, "what do you offer?", chat.got)
}

func TestChat_EmptyMessage(t *testing.T) {
	handler := newTestServer(nil, nil).Handler()

	for _, body := range []any{domain.ChatRequest{Message: "   "}, nil} {
		rec := doJSON(t, handler, http.MethodPost, "/api/chatbot", body, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "message is required")
	}
}

func TestChat_DegradedStatesReturnFallbackReplies(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not configured", domain.ErrChatNotConfigured, domain.ReplyNotConfigured},
		{"knowledge loading", domain.ErrKnowledgeNotReady, domain.ReplyNotReady},
		{"provider outage", fmt.Errorf("%w: status 500", domain.ErrProviderFailure), domain.ReplyProviderDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := &stubChat{err: tt.err}
			rec := doJSON(t, newTestServer(chat, nil).Handler(), http.MethodPost, "/api/chatbot",
				domain.ChatRequest{Message: "hello"}, "")

			assert.Equal(t, http.StatusOK, rec.Code)

			var resp domain.ChatResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.Reply)
		})
	}
}

func TestChat_UnknownErrorIsInternal(t *testing.T) {
	chat := &stubChat{err: fmt.Errorf("database exploded")}
	rec := doJSON(t, newTestServer(chat, nil).Handler(), http.MethodPost, "/api/chatbot",
		domain.ChatRequest{Message: "hello"}, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLogin(t *testing.T) {
	handler := newTestServer(nil, nil).Handler()

	rec := doJSON(t, handler, http.MethodPost, "/api/admin/login",
		loginRequest{Email: "admin@example.com", Password: "secret-pass"}, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "good-token", resp.Token)

	rec = doJSON(t, handler, http.MethodPost, "/api/admin/login",
		loginRequest{Email: "admin@example.com", Password: "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_ValidationError(t *testing.T) {
	rec := doJSON(t, newTestServer(nil, nil).Handler(), http.MethodPost, "/api/admin/login",
		loginRequest{Email: "not-an-email", Password: "x"}, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email")
}

func TestCareers_ListIsPublic(t *testing.T) {
	content := &stubContent{careers: []domain.Career{{ID: "c1", Title: "Go Engineer"}}}
	rec := doJSON(t, newTestServer(nil, content).Handler(), http.MethodGet, "/api/careers?active=true", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var careers []domain.Career
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &careers))
	require.Len(t, careers, 1)
	assert.Equal(t, "Go Engineer", careers[0].Title)
}

func TestCareers_EmptyListIsArrayNotNull(t *testing.T) {
	rec := doJSON(t, newTestServer(nil, nil).Handler(), http.MethodGet, "/api/careers", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCareers_GetUnknownIs404(t *testing.T) {
	rec := doJSON(t, newTestServer(nil, nil).Handler(), http.MethodGet, "/api/careers/nope", nil, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCareers_MutationsRequireAuth(t *testing.T) {
	content := &stubContent{}
	handler := newTestServer(nil, content).Handler()
	career := domain.Career{Title: "Go Engineer", Description: "Build things."}

	rec := doJSON(t, handler, http.MethodPost, "/api/careers", career, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/api/careers", career, "bad-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/api/careers", career, "good-token")
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, content.createdCareer)
	assert.Equal(t, "Go Engineer", content.createdCareer.Title)
}

func TestCareers_Delete(t *testing.T) {
	content := &stubContent{}
	handler := newTestServer(nil, content).Handler()

	rec := doJSON(t, handler, http.MethodDelete, "/api/careers/c1", nil, "good-token")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "c1", content.deletedCareer)
}

func TestContact_SubmitIsPublic(t *testing.T) {
	content := &stubContent{}
	msg := domain.ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "hello"}
	rec := doJSON(t, newTestServer(nil, content).Handler(), http.MethodPost, "/api/contact", msg, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, content.submitted)
	assert.Equal(t, "Ada", content.submitted.Name)
}

func TestContact_InboxRequiresAuth(t *testing.T) {
	handler := newTestServer(nil, nil).Handler()

	rec := doJSON(t, handler, http.MethodGet, "/api/contact", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/contact", nil, "good-token")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestApplications_SubmitPublicListFiltered(t *testing.T) {
	content := &stubContent{}
	handler := newTestServer(nil, content).Handler()

	app := domain.JobApplication{CareerID: "c1", Name: "Ada", Email: "ada@example.com"}
	rec := doJSON(t, handler, http.MethodPost, "/api/applications", app, "")
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, content.application)

	rec = doJSON(t, handler, http.MethodGet, "/api/applications?careerId=c1", nil, "good-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "c1", content.listedCareer)
}

func TestServiceErrorMapping(t *testing.T) {
	content := &stubContent{err: domain.ErrInvalidInput}
	rec := doJSON(t, newTestServer(nil, content).Handler(), http.MethodPost, "/api/contact",
		domain.ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "x"}, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
