package tui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arah-infotech/sitebot/internal/core/domain"
)

func TestNewHTTPSend_Success(t *testing.T) {
	var gotReq domain.ChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chatbot", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(domain.ChatResponse{Reply: "grounded answer"}) //nolint:errcheck // test handler
	}))
	defer server.Close()

	send := NewHTTPSend(server.URL+"/", nil)
	reply, err := send(context.Background(), "what do you offer?")

	require.NoError(t, err)
	assert.Equal(t, "grounded answer", reply)
	assert.Equal(t, "what do you offer?", gotReq.Message)
}

func TestNewHTTPSend_Non200IsProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	send := NewHTTPSend(server.URL, nil)
	_, err := send(context.Background(), "hello")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProviderFailure)
}

func TestNewHTTPSend_UnreachableServer(t *testing.T) {
	send := NewHTTPSend("http://127.0.0.1:1", nil)

	_, err := send(context.Background(), "hello")

	assert.Error(t, err)
}
