package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// Chat assistant errors. Every failure of the assistant collapses to one
	// of these three kinds so the HTTP boundary can map each to a fixed,
	// user-displayable reply.

	// ErrChatNotConfigured indicates the completion provider is missing or
	// misconfigured (no API key, no usable model). No network call is made.
	ErrChatNotConfigured = errors.New("chat provider not configured")

	// ErrKnowledgeNotReady indicates the website knowledge corpus has not
	// been populated yet. Transient; resolves once population completes.
	ErrKnowledgeNotReady = errors.New("website knowledge not ready")

	// ErrProviderFailure indicates the completion provider call failed
	// (timeout, non-2xx, malformed response, rate limit).
	ErrProviderFailure = errors.New("completion provider failure")
)

// Fixed assistant replies. Clients display these verbatim; automated callers
// cannot distinguish causes beyond the text, which is acceptable for a
// non-critical help widget.
const (
	// ReplyNotConfigured is returned when the provider is not configured.
	ReplyNotConfigured = "AI chatbot is unavailable due to missing configuration."

	// ReplyNotReady is returned while the knowledge corpus is still loading.
	ReplyNotReady = "The assistant is still loading website knowledge. Please try again in a moment."

	// ReplyProviderDown is returned when the provider call fails.
	ReplyProviderDown = "Service temporarily unavailable. Please try again later."

	// ReplyEmptyAnswer is returned when the provider yields an empty payload.
	ReplyEmptyAnswer = "I'm sorry, I couldn't generate an answer."
)

// DisplayReply maps an assistant error to its fixed user-facing reply.
// Returns false if err is not one of the closed chat error kinds, in which
// case the caller should treat it as an internal error.
func DisplayReply(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrChatNotConfigured):
		return ReplyNotConfigured, true
	case errors.Is(err, ErrKnowledgeNotReady):
		return ReplyNotReady, true
	case errors.Is(err, ErrProviderFailure):
		return ReplyProviderDown, true
	default:
		return "", false
	}
}
