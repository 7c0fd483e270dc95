// Package chat is a thin wrapper around the design-assistant completion
// provider. It shares no state with the retrieval pipeline.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/kailas-cloud/roomsearch/internal/domain"
)

// systemPrompt frames the assistant as an interior-design consultant.
const systemPrompt = `You are an AI design consultant specializing in bathroom renovations. ` +
	`Speak in a friendly, expert, and encouraging tone. Ask the user which style they ` +
	`like best (modern, minimalist, scandinavian, industrial, or boho), identify key ` +
	`cost drivers such as materials, fixtures, and lighting, estimate a reasonable ` +
	`renovation cost range, then ask for the user's budget and offer personalized ` +
	`design and budgeting recommendations. Keep all responses concise.`

// Service keeps a bounded in-memory conversation history and delegates reply
// generation to the completion provider.
type Service struct {
	completer  domain.ChatCompleter
	maxHistory int

	mu      sync.Mutex
	history []domain.ChatMessage
}

// New creates a chat service. maxHistory bounds the retained conversation;
// non-positive values default to 40 messages.
func New(completer domain.ChatCompleter, maxHistory int) *Service {
	if maxHistory <= 0 {
		maxHistory = 40
	}
	return &Service{completer: completer, maxHistory: maxHistory}
}

// Reply appends the user message to the history, obtains the assistant
// reply, and records it. Provider failures surface as ErrChatUnavailable
// and leave the history without the failed turn.
func (s *Service) Reply(ctx context.Context, userInput string) (string, error) {
	userInput = strings.TrimSpace(userInput)
	if userInput == "" {
		return "", fmt.Errorf("%w: message is required", domain.ErrInvalidRequest)
	}

	s.mu.Lock()
	history := make([]domain.ChatMessage, len(s.history), len(s.history)+1)
	copy(history, s.history)
	s.mu.Unlock()

	history = append(history, domain.ChatMessage{Role: domain.RoleUser, Content: userInput})

	reply, err := s.completer.Complete(ctx, systemPrompt, history)
	if err != nil {
		if errors.Is(err, domain.ErrChatUnavailable) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", domain.ErrChatUnavailable, err)
	}

	s.mu.Lock()
	s.history = append(s.history,
		domain.ChatMessage{Role: domain.RoleUser, Content: userInput},
		domain.ChatMessage{Role: domain.RoleAssistant, Content: reply},
	)
	if len(s.history) > s.maxHistory {
		s.history = s.history[len(s.history)-s.maxHistory:]
	}
	s.mu.Unlock()

	return reply, nil
}
