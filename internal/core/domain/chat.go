package domain

// Sender identifies who produced a chat transcript entry.
type Sender string

// Transcript entry senders.
const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is a single entry in the client-local chat transcript.
// Entries are append-only and never persisted server-side; every request to
// the assistant is independent and carries only the current message.
type ChatMessage struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// ChatRequest is the wire request for the assistant endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the wire response for the assistant endpoint.
// Reply is always present on a 200 and is never null.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// WelcomeMessage is the seed entry shown by chat clients before any
// round trip has happened.
const WelcomeMessage = "Welcome to Arah Infotech 👋 How can we assist you today?"
