package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arah-infotech/sitebot/internal/core/domain"
	"github.com/arah-infotech/sitebot/internal/core/ports/driven"
	"github.com/arah-infotech/sitebot/internal/core/ports/driving"
	"github.com/arah-infotech/sitebot/internal/logger"
)

// Ensure Responder implements the interface.
var _ driving.ChatService = (*Responder)(nil)

// defaultSystemPrompt is the fallback system instruction when no PromptStore
// is configured. The %s placeholder receives the truncated knowledge corpus.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
const defaultSystemPrompt = `You are the official AI Assistant of Arah Infotech.

RULES:
1. If the user greets you (e.g., "hi", "hello", "hey"), respond with a warm welcome: "👋 Hello! Welcome to Arah Infotech 🤖. I can help you with information about our services, products, or company. What would you like to know?"
2. If the user asks something completely irrelevant (outside of Arah Infotech or greetings), say:
   "I am designed to provide information about Arah Infotech only. Please ask about our services, products, or company! 😊"
3. If the user asks specifically about the company (e.g., "About the company", "Who are you?"), follow this structure:
   ### 🏢 About Arah Infotech
   **[Provide a BRIEF summary of 2-3 sentences about our mission and expertise, using relevant emojis like 🚀 and 🤖].**

   **Do you want more info? (Yes/No)**
4. If the user says "yes" to see more info, provide the FULL comprehensive details using beautiful Markdown (headers, detailed bullet points, and emojis).
5. For ALL other valid questions about services/careers/products, follow this EXACT visual structure:
   ### [Emoji] [Heading Name]
   **Arah Infotech offers a range of (Topic) including:**
   1. 🚀 [Item Name] 📈 ✨
   2. 🤖 [Item Name] 🛠️ 🌐
   3. 📊 [Item Name] 💎 🚀

   **Do you want more info? (Yes/No)**
6. Use Numbered lists (1, 2, 3) for summaries.
7. Use 2-3 rich emojis per list item.
8. Answer ONLY using the provided knowledge.

WEBSITE KNOWLEDGE:
%s`

// Responder turns a user message plus the current knowledge corpus into a
// grounded reply, or one of three deterministic failures. Nothing is
// retried: every failure mode maps to a closed error kind so the HTTP
// boundary can render a fixed apology string.
type Responder struct {
	llm          driven.CompletionService // nil when the provider is not configured
	knowledge    *KnowledgeState
	prompts      driven.PromptStore // optional
	corpusBudget int
	maxTokens    int
	temperature  float64
}

// ResponderOptions tunes prompt construction and sampling. Zero values fall
// back to the domain defaults.
type ResponderOptions struct {
	CorpusBudget int
	MaxTokens    int
	Temperature  float64
}

// NewResponder creates a chat responder. llm may be nil (provider not
// configured); Reply then degrades to the configuration error without any
// network call.
func NewResponder(llm driven.CompletionService, knowledge *KnowledgeState, opts ResponderOptions) *Responder {
	if opts.CorpusBudget <= 0 {
		opts.CorpusBudget = domain.DefaultCorpusBudget
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = domain.DefaultMaxTokens
	}
	if opts.Temperature <= 0 {
		opts.Temperature = domain.DefaultTemperature
	}
	return &Responder{
		llm:          llm,
		knowledge:    knowledge,
		corpusBudget: opts.CorpusBudget,
		maxTokens:    opts.MaxTokens,
		temperature:  opts.Temperature,
	}
}

// SetPromptStore sets the prompt store for loading the customisable system
// prompt. If not set, the responder uses the hardcoded default.
func (r *Responder) SetPromptStore(store driven.PromptStore) {
	r.prompts = store
}

// Reply answers a single user message.
func (r *Responder) Reply(ctx context.Context, message string) (string, error) {
	if r.llm == nil {
		logger.Debug("Chat request rejected: provider not configured")
		return "", domain.ErrChatNotConfigured
	}

	if !r.knowledge.Ready() {
		logger.Debug("Chat request rejected: knowledge not ready")
		return "", domain.ErrKnowledgeNotReady
	}

	corpus := r.truncateCorpus(r.knowledge.Snapshot())
	system := fmt.Sprintf(r.systemPrompt(), corpus)

	logger.Debug("Chat: model=%s corpus=%d chars message=%d chars",
		r.llm.ModelName(), len(corpus), len(message))

	reply, err := r.llm.Complete(ctx, system, message, driven.CompletionOptions{
		MaxTokens:   r.maxTokens,
		Temperature: r.temperature,
	})
	if err != nil {
		logger.Warn("Completion failed: %v", err)
		return "", fmt.Errorf("%w: %w", domain.ErrProviderFailure, err)
	}

	if strings.TrimSpace(reply) == "" {
		return domain.ReplyEmptyAnswer, nil
	}
	return reply, nil
}

// truncateCorpus head-truncates the corpus to the character budget. Only
// the first N characters are ever visible to the model; the position bias
// is an accepted tradeoff of not summarising.
func (r *Responder) truncateCorpus(corpus string) string {
	if len(corpus) <= r.corpusBudget {
		return corpus
	}
	cut := r.corpusBudget
	// Back up to a rune boundary so the cut never produces invalid UTF-8.
	for cut > 0 && !utf8.RuneStart(corpus[cut]) {
		cut--
	}
	return corpus[:cut]
}

// systemPrompt loads the system instruction template, falling back to the
// embedded default.
func (r *Responder) systemPrompt() string {
	if r.prompts == nil {
		return defaultSystemPrompt
	}
	prompt, err := r.prompts.Load(driven.PromptChatSystem)
	if err != nil || !strings.Contains(prompt, "%s") {
		return defaultSystemPrompt
	}
	return prompt
}
