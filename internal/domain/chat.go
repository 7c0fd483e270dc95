package domain

import "context"

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Role    string
	Content string
}

// ChatCompleter generates an assistant reply for a conversation history.
type ChatCompleter interface {
	Complete(ctx context.Context, system string, history []ChatMessage) (string, error)
}
