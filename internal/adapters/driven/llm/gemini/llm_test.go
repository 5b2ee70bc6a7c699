package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arah-infotech/sitebot/internal/core/ports/driven"
)

const modelListing = `{"models":[
	{"name":"models/embedding-001","supportedGenerationMethods":["embedContent"]},
	{"name":"models/gemini-1.5-pro","supportedGenerationMethods":["generateContent","countTokens"]},
	{"name":"models/gemini-1.5-flash","supportedGenerationMethods":["generateContent"]}
]}`

func newTestService(t *testing.T, preferred []string, handler http.HandlerFunc) *CompletionService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := NewCompletionService(Config{
		APIKey:          "test-key",
		BaseURL:         server.URL,
		PreferredModels: preferred,
	})
	require.NoError(t, err)
	return svc
}

func TestNewCompletionService_RequiresAPIKey(t *testing.T) {
	_, err := NewCompletionService(Config{})

	assert.Error(t, err)
}

func TestResolveModel_PrefersListedModel(t *testing.T) {
	svc := newTestService(t, []string{"gemini-1.5-flash", "gemini-1.5-pro"},
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/models", r.URL.Path)
			_, _ = w.Write([]byte(modelListing)) //nolint:errcheck // test handler
		})

	require.NoError(t, svc.Ping(context.Background()))
	assert.Equal(t, "gemini-1.5-flash", svc.ModelName())
}

func TestResolveModel_FallsBackToFirstAvailable(t *testing.T) {
	svc := newTestService(t, []string{"gemini-9000"},
		func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(modelListing)) //nolint:errcheck // test handler
		})

	require.NoError(t, svc.Ping(context.Background()))
	// First generateContent-capable model in listing order.
	assert.Equal(t, "gemini-1.5-pro", svc.ModelName())
}

func TestResolveModel_NoUsableModels(t *testing.T) {
	svc := newTestService(t, nil, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"models":[{"name":"models/embedding-001","supportedGenerationMethods":["embedContent"]}]}`)) //nolint:errcheck // test handler
	})

	err := svc.Ping(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no models support generateContent")
}

func TestResolveModel_CachedAfterFirstCall(t *testing.T) {
	listCalls := 0
	svc := newTestService(t, []string{"gemini-1.5-flash"},
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/models" {
				listCalls++
				_, _ = w.Write([]byte(modelListing)) //nolint:errcheck // test handler
			}
		})

	require.NoError(t, svc.Ping(context.Background()))
	require.NoError(t, svc.Ping(context.Background()))

	assert.Equal(t, 1, listCalls)
}

func TestComplete_SendsSystemInstruction(t *testing.T) {
	var gotReq generateRequest
	svc := newTestService(t, []string{"gemini-1.5-flash"},
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/models" {
				_, _ = w.Write([]byte(modelListing)) //nolint:errcheck // test handler
				return
			}
			assert.True(t, strings.HasSuffix(r.URL.Path, "gemini-1.5-flash:generateContent"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"grounded "},{"text":"answer"}]}}]}`)) //nolint:errcheck // test handler
		})

	reply, err := svc.Complete(context.Background(), "system rules", "user question",
		driven.CompletionOptions{MaxTokens: 1024, Temperature: 0.5})

	require.NoError(t, err)
	assert.Equal(t, "grounded answer", reply)
	require.NotNil(t, gotReq.SystemInstruction)
	assert.Equal(t, "system rules", gotReq.SystemInstruction.Parts[0].Text)
	require.Len(t, gotReq.Contents, 1)
	assert.Equal(t, "user", gotReq.Contents[0].Role)
	assert.Equal(t, "user question", gotReq.Contents[0].Parts[0].Text)
	assert.Equal(t, 1024, gotReq.GenerationConfig.MaxOutputTokens)
}

func TestComplete_NoCandidatesReturnsEmptyString(t *testing.T) {
	svc := newTestService(t, []string{"gemini-1.5-flash"},
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/models" {
				_, _ = w.Write([]byte(modelListing)) //nolint:errcheck // test handler
				return
			}
			_, _ = w.Write([]byte(`{"candidates":[]}`)) //nolint:errcheck // test handler
		})

	reply, err := svc.Complete(context.Background(), "s", "u", driven.CompletionOptions{})

	require.NoError(t, err)
	assert.Empty(t, reply)
}

func TestComplete_APIErrorSurfaces(t *testing.T) {
	svc := newTestService(t, []string{"gemini-1.5-flash"},
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/models" {
				_, _ = w.Write([]byte(modelListing)) //nolint:errcheck // test handler
				return
			}
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`)) //nolint:errcheck // test handler
		})

	_, err := svc.Complete(context.Background(), "s", "u", driven.CompletionOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestModelName_UnresolvedUsesFirstPreference(t *testing.T) {
	svc, err := NewCompletionService(Config{APIKey: "k", PreferredModels: []string{"gemini-1.5-flash"}})

	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-flash", svc.ModelName())
}
