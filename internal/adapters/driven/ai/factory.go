// Package ai provides factory functions for creating the completion
// service from settings.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/arah-infotech/sitebot/internal/adapters/driven/llm/gemini"
	"github.com/arah-infotech/sitebot/internal/adapters/driven/llm/groq"
	"github.com/arah-infotech/sitebot/internal/core/domain"
	"github.com/arah-infotech/sitebot/internal/core/ports/driven"
	"github.com/arah-infotech/sitebot/internal/logger"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// CreateCompletionService creates the completion backend selected by
// settings. Returns nil (not an error) when the provider is not configured;
// the responder then degrades to its configuration fallback.
func CreateCompletionService(settings domain.ChatbotSettings) (driven.CompletionService, error) {
	if !settings.IsConfigured() {
		return nil, nil
	}

	switch settings.Provider {
	case domain.ProviderGroq:
		return groq.NewCompletionService(groq.Config{
			APIKey: settings.APIKey,
			Model:  settings.Model,
		})

	case domain.ProviderGemini:
		preferred := domain.DefaultGeminiModels()
		if settings.Model != "" {
			preferred = append([]string{settings.Model}, preferred...)
		}
		return gemini.NewCompletionService(gemini.Config{
			APIKey:          settings.APIKey,
			PreferredModels: preferred,
		})

	default:
		return nil, fmt.Errorf("unsupported completion provider: %s", settings.Provider)
	}
}

// CreateAndValidateCompletionService creates the completion backend and
// validates connectivity with a short ping. A failed ping is reported as a
// warning and the service is discarded, leaving the assistant in its
// unavailable-by-config state rather than failing process startup.
func CreateAndValidateCompletionService(settings domain.ChatbotSettings) driven.CompletionService {
	svc, err := CreateCompletionService(settings)
	if err != nil {
		logger.Warn("Chat provider disabled: %v", err)
		return nil
	}
	if svc == nil {
		logger.Warn("Chat provider disabled: no API key configured")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		logger.Warn("Chat provider unreachable, disabling assistant: %v", err)
		svc.Close()
		return nil
	}

	logger.Info("Chat provider ready: %s (%s)", settings.Provider, svc.ModelName())
	return svc
}
