package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arah-infotech/sitebot/internal/core/domain"
)

// fakeConfigStore is an in-memory ConfigStore for settings tests.
type fakeConfigStore struct {
	data map[string]any
}

func newFakeConfigStore() *fakeConfigStore {
	return &fakeConfigStore{data: make(map[string]any)}
}

func (f *fakeConfigStore) Get(key string) (any, bool) {
	v, ok := f.data[key]
	return v, ok
}

func (f *fakeConfigStore) GetString(key string) string {
	if v, ok := f.data[key].(string); ok {
		return v
	}
	return ""
}

func (f *fakeConfigStore) GetInt(key string) int {
	if v, ok := f.data[key].(int); ok {
		return v
	}
	return 0
}

func (f *fakeConfigStore) GetBool(key string) bool {
	if v, ok := f.data[key].(bool); ok {
		return v
	}
	return false
}

func (f *fakeConfigStore) GetStringSlice(key string) []string {
	if v, ok := f.data[key].([]string); ok {
		return v
	}
	return nil
}

func (f *fakeConfigStore) Set(key string, value any) error {
	f.data[key] = value
	return nil
}

func (f *fakeConfigStore) Save() error { return nil }

func TestSettingsService_ChatbotDefaults(t *testing.T) {
	svc := NewSettingsService(newFakeConfigStore())
	t.Setenv("SITEBOT_GROQ_API_KEY", "")

	cfg := svc.Chatbot()

	assert.Equal(t, domain.ProviderGroq, cfg.Provider)
	assert.Equal(t, domain.KnowledgeStatic, cfg.Knowledge)
	assert.False(t, cfg.IsConfigured())
}

func TestSettingsService_ChatbotRoundTrip(t *testing.T) {
	svc := NewSettingsService(newFakeConfigStore())

	err := svc.SetChatbot(domain.ChatbotSettings{
		Provider:     domain.ProviderGemini,
		Model:        "gemini-1.5-flash",
		APIKey:       "key-123",
		Knowledge:    domain.KnowledgeCrawl,
		CrawlURLs:    []string{"https://arahinfotech.net/"},
		CorpusBudget: 1000,
	})
	require.NoError(t, err)

	cfg := svc.Chatbot()
	assert.Equal(t, domain.ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-1.5-flash", cfg.Model)
	assert.Equal(t, "key-123", cfg.APIKey)
	assert.Equal(t, domain.KnowledgeCrawl, cfg.Knowledge)
	assert.Equal(t, []string{"https://arahinfotech.net/"}, cfg.CrawlURLs)
	assert.Equal(t, 1000, cfg.CorpusBudget)
	assert.True(t, cfg.IsConfigured())
}

func TestSettingsService_SetChatbotRejectsUnknownProvider(t *testing.T) {
	svc := NewSettingsService(newFakeConfigStore())

	err := svc.SetChatbot(domain.ChatbotSettings{Provider: "openai", Knowledge: domain.KnowledgeStatic})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_EnvOverridesAPIKey(t *testing.T) {
	store := newFakeConfigStore()
	store.data["chatbot.groq_api_key"] = "from-file"
	svc := NewSettingsService(store)

	t.Setenv("SITEBOT_GROQ_API_KEY", "from-env")

	assert.Equal(t, "from-env", svc.Chatbot().APIKey)
}

func TestSettingsService_ServerDefaults(t *testing.T) {
	svc := NewSettingsService(newFakeConfigStore())

	srv := svc.Server()

	assert.Equal(t, ":5000", srv.Addr)
	assert.Empty(t, srv.JWTSecret)
}

func TestSettingsService_EnvOverridesJWTSecret(t *testing.T) {
	store := newFakeConfigStore()
	store.data["server.jwt_secret"] = "file-secret"
	svc := NewSettingsService(store)

	t.Setenv("SITEBOT_JWT_SECRET", "env-secret")

	assert.Equal(t, "env-secret", svc.Server().JWTSecret)
}
