// Package ai defines the boundary to the generative completion service the
// assistant falls back to, plus a Gemini REST implementation.
package ai

import "context"

// Role of one conversation message.
const (
	RoleUser      = "user"
	RoleAssistant = "model"
)

// Message is one turn of conversation history forwarded to the fallback.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Reply is what the fallback returns: text to display/speak and an optional
// structured action the shell may execute.
type Reply struct {
	Text   string `json:"text"`
	Action string `json:"action,omitempty"`
}

// Responder completes an utterance the local pipeline could not classify.
// Implementations own their transport and errors; the dispatcher never sees
// this interface.
type Responder interface {
	Complete(ctx context.Context, utterance string, history []Message) (Reply, error)
}
