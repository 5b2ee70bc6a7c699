package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/arah-infotech/sitebot/internal/core/domain"
)

// NewHTTPSend returns a SendFunc that posts messages to a running site
// API. baseURL is the server root, e.g. http://localhost:5000.
func NewHTTPSend(baseURL string, client *http.Client) SendFunc {
	if client == nil {
		client = http.DefaultClient
	}
	endpoint := strings.TrimRight(baseURL, "/") + "/api/chatbot"

	return func(ctx context.Context, message string) (string, error) {
		payload, err := json.Marshal(domain.ChatRequest{Message: message})
		if err != nil {
			return "", fmt.Errorf("encoding request: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return "", fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return "", fmt.Errorf("sending message: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return "", fmt.Errorf("reading response: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("%w: chatbot endpoint returned %d", domain.ErrProviderFailure, resp.StatusCode)
		}

		var chatResp domain.ChatResponse
		if err := json.Unmarshal(body, &chatResp); err != nil {
			return "", fmt.Errorf("decoding response: %w", err)
		}
		return chatResp.Reply, nil
	}
}
