// Package gemini provides a completion service adapter using the Google
// Gemini generateContent API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/arah-infotech/sitebot/internal/core/ports/driven"
	"github.com/arah-infotech/sitebot/internal/logger"
)

// Ensure CompletionService implements the interface.
var _ driven.CompletionService = (*CompletionService)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 60 * time.Second
)

// Config holds configuration for the Gemini completion service.
type Config struct {
	// APIKey is the Gemini API key (required).
	APIKey string

	// BaseURL is the API base URL (default: the v1beta endpoint).
	BaseURL string

	// PreferredModels is consulted in priority order against the models the
	// API reports as available. Empty means the built-in preference list.
	// If none of the preferred names is available, the first model the
	// provider reports as supporting generateContent is used.
	PreferredModels []string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration
}

// CompletionService wraps the Gemini generateContent API. The concrete
// model is resolved lazily on first use by intersecting the preference list
// with the provider's model listing.
type CompletionService struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	preferred []string

	mu    sync.Mutex
	model string
}

// generateRequest is the generateContent request format.
type generateRequest struct {
	SystemInstruction *content       `json:"system_instruction,omitempty"`
	Contents          []content      `json:"contents"`
	GenerationConfig  generateConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// generateResponse is the generateContent response format.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// listModelsResponse is the models listing response format.
type listModelsResponse struct {
	Models []struct {
		Name                       string   `json:"name"`
		SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
	} `json:"models"`
}

// NewCompletionService creates a new Gemini completion service.
func NewCompletionService(cfg Config) (*CompletionService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &CompletionService{
		client:    &http.Client{Timeout: cfg.Timeout},
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		preferred: cfg.PreferredModels,
	}, nil
}

// Complete submits a system instruction plus user message and returns the
// generated text.
func (s *CompletionService) Complete(ctx context.Context, system, user string, opts driven.CompletionOptions) (string, error) {
	model, err := s.resolveModel(ctx)
	if err != nil {
		return "", err
	}

	reqBody := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: system}}},
		Contents: []content{
			{Role: "user", Parts: []part{{Text: user}}},
		},
		GenerationConfig: generateConfig{
			Temperature:     opts.Temperature,
			MaxOutputTokens: opts.MaxTokens,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if genResp.Error != nil {
		return "", fmt.Errorf("gemini error (%s): %s", genResp.Error.Status, genResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini error (status %d): %s", resp.StatusCode, string(body))
	}
	if len(genResp.Candidates) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, p := range genResp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// ModelName returns the resolved model, or the first preference if the
// model has not been resolved yet.
func (s *CompletionService) ModelName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.model != "" {
		return s.model
	}
	if len(s.preferred) > 0 {
		return s.preferred[0]
	}
	return "gemini (unresolved)"
}

// Ping validates the API key and resolves the model by listing models.
func (s *CompletionService) Ping(ctx context.Context) error {
	_, err := s.resolveModel(ctx)
	return err
}

// Close releases resources.
func (s *CompletionService) Close() error {
	return nil
}

// resolveModel picks the first preferred model the provider reports as
// available, falling back to the first model that supports generateContent.
// The result is cached for the lifetime of the service.
func (s *CompletionService) resolveModel(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.model != "" {
		return s.model, nil
	}

	available, err := s.listModels(ctx)
	if err != nil {
		return "", err
	}
	if len(available) == 0 {
		return "", fmt.Errorf("gemini: no models support generateContent")
	}

	for _, want := range s.preferred {
		for _, have := range available {
			if have == want {
				s.model = want
				logger.Debug("Gemini model resolved from preference list: %s", want)
				return s.model, nil
			}
		}
	}

	// None of the preferred names is available; take the provider default.
	s.model = available[0]
	logger.Info("Gemini: no preferred model available, using %s", s.model)
	return s.model, nil
}

// listModels returns the names of models that support generateContent, in
// the order the provider reports them.
func (s *CompletionService) listModels(ctx context.Context) ([]string, error) {
	url := fmt.Sprintf("%s/models?key=%s", s.baseURL, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create list request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: list models failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gemini: read list response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini: API returned status %d: %s", resp.StatusCode, string(body))
	}

	var listResp listModelsResponse
	if err := json.Unmarshal(body, &listResp); err != nil {
		return nil, fmt.Errorf("gemini: decode list response: %w", err)
	}

	var names []string
	for _, m := range listResp.Models {
		for _, method := range m.SupportedGenerationMethods {
			if method == "generateContent" {
				names = append(names, strings.TrimPrefix(m.Name, "models/"))
				break
			}
		}
	}
	return names, nil
}
