package driven

import "context"

// CompletionService produces a text reply from a hosted LLM completion
// endpoint. Implementations wrap one provider's HTTP API each.
//
// Implementations include:
//   - Groq (OpenAI-compatible chat completions)
//   - Google Gemini (generateContent)
type CompletionService interface {
	// Complete submits a system instruction plus the user message and
	// returns the generated text. Any transport or provider error is
	// returned as-is; callers decide how failures surface to users.
	Complete(ctx context.Context, system, user string, opts CompletionOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	// Used at startup to verify credentials before committing to AI mode.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// CompletionOptions configures a single completion call.
type CompletionOptions struct {
	// MaxTokens caps the generated output length.
	MaxTokens int

	// Temperature controls sampling randomness.
	Temperature float64
}
