package domain

const unknownDescription = "Unknown"

// CompletionProvider identifies a hosted LLM completion backend.
type CompletionProvider string

// Available completion providers.
const (
	// ProviderGroq is the Groq cloud API (OpenAI-compatible).
	ProviderGroq CompletionProvider = "groq"

	// ProviderGemini is the Google Gemini cloud API.
	ProviderGemini CompletionProvider = "gemini"
)

// IsValid returns true if the provider is recognised.
func (p CompletionProvider) IsValid() bool {
	switch p {
	case ProviderGroq, ProviderGemini:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p CompletionProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p CompletionProvider) Description() string {
	switch p {
	case ProviderGroq:
		return "Groq (cloud, OpenAI-compatible)"
	case ProviderGemini:
		return "Google Gemini (cloud)"
	default:
		return unknownDescription
	}
}

// KnowledgeKind selects how the website knowledge corpus is produced.
type KnowledgeKind string

// Available knowledge sources.
const (
	// KnowledgeStatic uses a fixed hand-authored description of the business.
	KnowledgeStatic KnowledgeKind = "static"

	// KnowledgeCrawl scrapes a fixed list of website URLs at startup.
	KnowledgeCrawl KnowledgeKind = "crawl"
)

// IsValid returns true if the knowledge kind is recognised.
func (k KnowledgeKind) IsValid() bool {
	switch k {
	case KnowledgeStatic, KnowledgeCrawl:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k KnowledgeKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the knowledge kind.
func (k KnowledgeKind) Description() string {
	switch k {
	case KnowledgeStatic:
		return "Static (hand-authored content)"
	case KnowledgeCrawl:
		return "Crawl (scrape website at startup)"
	default:
		return unknownDescription
	}
}

// Chatbot behaviour defaults.
const (
	// DefaultCorpusBudget is the maximum number of corpus characters included
	// in the system prompt. Head truncation, not summarisation.
	DefaultCorpusBudget = 25000

	// DefaultMaxTokens caps the length of a generated reply.
	DefaultMaxTokens = 1024

	// DefaultTemperature is the fixed sampling temperature.
	DefaultTemperature = 0.5

	// DefaultGroqModel is the Groq model used when none is configured.
	DefaultGroqModel = "llama-3.1-8b-instant"

	// DefaultMinPageText is the minimum extracted text length for a crawled
	// page to count as real content rather than boilerplate.
	DefaultMinPageText = 50
)

// DefaultCrawlURLs is the fixed, ordered list of website pages scraped by
// the crawl knowledge source when none is configured.
func DefaultCrawlURLs() []string {
	return []string{
		"https://arahinfotech.net/",
		"https://arahinfotech.net/about",
		"https://arahinfotech.net/services",
		"https://arahinfotech.net/services/website-designing",
		"https://arahinfotech.net/services/ai-solutions",
		"https://arahinfotech.net/services/digital-marketing",
		"https://arahinfotech.net/products",
		"https://arahinfotech.net/industries",
		"https://arahinfotech.net/careers",
		"https://arahinfotech.net/contact",
	}
}

// DefaultGeminiModels is the model preference list consulted in priority
// order against the models the Gemini API reports as available.
func DefaultGeminiModels() []string {
	return []string{
		"gemini-1.5-flash",
		"gemini-1.5-flash-8b",
		"gemini-1.5-pro",
	}
}

// ChatbotSettings holds assistant configuration: which completion backend
// answers and which knowledge source grounds the answers.
type ChatbotSettings struct {
	// Provider is the completion backend.
	Provider CompletionProvider

	// Model overrides the provider's default model. For Gemini this is a
	// preference hint checked against the models the API reports.
	Model string

	// APIKey is the provider API key.
	APIKey string

	// Knowledge selects the corpus strategy.
	Knowledge KnowledgeKind

	// CrawlURLs is the ordered page list for the crawl strategy.
	// Empty means DefaultCrawlURLs.
	CrawlURLs []string

	// KnowledgeFile optionally overrides the embedded static corpus with a
	// file on disk.
	KnowledgeFile string

	// CorpusBudget is the prompt character budget (0 means default).
	CorpusBudget int
}

// IsConfigured returns true if the completion backend is usable.
// Both supported providers require an API key.
func (s ChatbotSettings) IsConfigured() bool {
	return s.Provider.IsValid() && s.APIKey != ""
}

// ServerSettings holds HTTP server configuration.
type ServerSettings struct {
	// Addr is the listen address, e.g. ":5000".
	Addr string

	// JWTSecret signs admin session tokens.
	JWTSecret string
}
