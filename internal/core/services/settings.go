package services

import (
	"fmt"
	"os"

	"github.com/arah-infotech/sitebot/internal/core/domain"
	"github.com/arah-infotech/sitebot/internal/core/ports/driven"
)

// Config keys used in the TOML config store.
const (
	keyChatProvider  = "chatbot.provider"
	keyChatModel     = "chatbot.model"
	keyGroqAPIKey    = "chatbot.groq_api_key"
	keyGeminiAPIKey  = "chatbot.gemini_api_key"
	keyKnowledgeKind = "chatbot.knowledge"
	keyKnowledgeFile = "chatbot.knowledge_file"
	keyCrawlURLs     = "chatbot.crawl_urls"
	keyCorpusBudget  = "chatbot.corpus_budget"
	keyServerAddr    = "server.addr"
	keyServerJWT     = "server.jwt_secret"
	keyServerDataDir = "server.data_dir"
)

// Environment overrides for secrets, so deployments never have to write
// keys into the config file.
const (
	envGroqAPIKey   = "SITEBOT_GROQ_API_KEY"
	envGeminiAPIKey = "SITEBOT_GEMINI_API_KEY"
	envJWTSecret    = "SITEBOT_JWT_SECRET"
)

// SettingsService reads and writes application settings through the config
// store, applying defaults and environment overrides.
type SettingsService struct {
	store driven.ConfigStore
}

// NewSettingsService creates a settings service.
func NewSettingsService(store driven.ConfigStore) *SettingsService {
	return &SettingsService{store: store}
}

// Chatbot returns the assistant settings with defaults applied.
func (s *SettingsService) Chatbot() domain.ChatbotSettings {
	provider := domain.CompletionProvider(s.store.GetString(keyChatProvider))
	if !provider.IsValid() {
		provider = domain.ProviderGroq
	}

	knowledge := domain.KnowledgeKind(s.store.GetString(keyKnowledgeKind))
	if !knowledge.IsValid() {
		knowledge = domain.KnowledgeStatic
	}

	return domain.ChatbotSettings{
		Provider:      provider,
		Model:         s.store.GetString(keyChatModel),
		APIKey:        s.apiKeyFor(provider),
		Knowledge:     knowledge,
		CrawlURLs:     s.store.GetStringSlice(keyCrawlURLs),
		KnowledgeFile: s.store.GetString(keyKnowledgeFile),
		CorpusBudget:  s.store.GetInt(keyCorpusBudget),
	}
}

// SetChatbot persists assistant settings. API keys are only written when
// non-empty so env-managed deployments keep the file clean.
func (s *SettingsService) SetChatbot(cfg domain.ChatbotSettings) error {
	if !cfg.Provider.IsValid() {
		return fmt.Errorf("%w: unknown provider %q", domain.ErrInvalidInput, cfg.Provider)
	}
	if !cfg.Knowledge.IsValid() {
		return fmt.Errorf("%w: unknown knowledge source %q", domain.ErrInvalidInput, cfg.Knowledge)
	}

	if err := s.store.Set(keyChatProvider, cfg.Provider.String()); err != nil {
		return err
	}
	if err := s.store.Set(keyKnowledgeKind, cfg.Knowledge.String()); err != nil {
		return err
	}
	if cfg.Model != "" {
		if err := s.store.Set(keyChatModel, cfg.Model); err != nil {
			return err
		}
	}
	if cfg.APIKey != "" {
		key := keyGroqAPIKey
		if cfg.Provider == domain.ProviderGemini {
			key = keyGeminiAPIKey
		}
		if err := s.store.Set(key, cfg.APIKey); err != nil {
			return err
		}
	}
	if len(cfg.CrawlURLs) > 0 {
		if err := s.store.Set(keyCrawlURLs, cfg.CrawlURLs); err != nil {
			return err
		}
	}
	if cfg.KnowledgeFile != "" {
		if err := s.store.Set(keyKnowledgeFile, cfg.KnowledgeFile); err != nil {
			return err
		}
	}
	if cfg.CorpusBudget > 0 {
		if err := s.store.Set(keyCorpusBudget, cfg.CorpusBudget); err != nil {
			return err
		}
	}
	return nil
}

// Server returns HTTP server settings with defaults applied.
func (s *SettingsService) Server() domain.ServerSettings {
	addr := s.store.GetString(keyServerAddr)
	if addr == "" {
		addr = ":5000"
	}

	secret := os.Getenv(envJWTSecret)
	if secret == "" {
		secret = s.store.GetString(keyServerJWT)
	}

	return domain.ServerSettings{
		Addr:      addr,
		JWTSecret: secret,
	}
}

// DataDir returns the directory for persistent data (SQLite database).
// Empty means the store's default location.
func (s *SettingsService) DataDir() string {
	return s.store.GetString(keyServerDataDir)
}

// apiKeyFor resolves the API key for a provider: environment first, then
// config file.
func (s *SettingsService) apiKeyFor(provider domain.CompletionProvider) string {
	switch provider {
	case domain.ProviderGemini:
		if key := os.Getenv(envGeminiAPIKey); key != "" {
			return key
		}
		return s.store.GetString(keyGeminiAPIKey)
	default:
		if key := os.Getenv(envGroqAPIKey); key != "" {
			return key
		}
		return s.store.GetString(keyGroqAPIKey)
	}
}
