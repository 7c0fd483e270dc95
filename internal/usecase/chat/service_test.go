package chat

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/kailas-cloud/roomsearch/internal/domain"
)

type mockCompleter struct {
	reply       string
	err         error
	lastSystem  string
	lastHistory []domain.ChatMessage
	calls       int
}

func (m *mockCompleter) Complete(
	_ context.Context, system string, history []domain.ChatMessage,
) (string, error) {
	m.calls++
	m.lastSystem = system
	m.lastHistory = history
	return m.reply, m.err
}

func TestReply(t *testing.T) {
	comp := &mockCompleter{reply: "Lovely choice! Modern it is."}
	svc := New(comp, 0)

	reply, err := svc.Reply(context.Background(), "I like modern bathrooms")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != comp.reply {
		t.Errorf("reply = %q", reply)
	}
	if comp.lastSystem == "" {
		t.Error("system prompt not passed to completer")
	}
	if len(comp.lastHistory) != 1 || comp.lastHistory[0].Role != domain.RoleUser {
		t.Errorf("history = %+v, want single user turn", comp.lastHistory)
	}
}

func TestReply_AccumulatesHistory(t *testing.T) {
	comp := &mockCompleter{reply: "sure"}
	svc := New(comp, 0)

	for i := 0; i < 3; i++ {
		if _, err := svc.Reply(context.Background(), fmt.Sprintf("turn %d", i)); err != nil {
			t.Fatalf("turn %d: %v", i, err)
		}
	}

	// Third call sees the two previous user/assistant pairs plus its own turn.
	if len(comp.lastHistory) != 5 {
		t.Errorf("history length = %d, want 5", len(comp.lastHistory))
	}
}

func TestReply_HistoryBounded(t *testing.T) {
	comp := &mockCompleter{reply: "ok"}
	svc := New(comp, 4)

	for i := 0; i < 10; i++ {
		if _, err := svc.Reply(context.Background(), "hello"); err != nil {
			t.Fatal(err)
		}
	}
	// Retained history stays at the cap; the provider sees cap+1 messages.
	if len(comp.lastHistory) != 5 {
		t.Errorf("history length = %d, want 5", len(comp.lastHistory))
	}
}

func TestReply_EmptyMessage(t *testing.T) {
	svc := New(&mockCompleter{}, 0)
	if _, err := svc.Reply(context.Background(), "   "); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("err = %v, want ErrInvalidRequest", err)
	}
}

func TestReply_ProviderFailure(t *testing.T) {
	comp := &mockCompleter{err: errors.New("timeout")}
	svc := New(comp, 0)

	_, err := svc.Reply(context.Background(), "hello")
	if !errors.Is(err, domain.ErrChatUnavailable) {
		t.Fatalf("err = %v, want ErrChatUnavailable", err)
	}

	// Failed turn is not recorded.
	comp.err = nil
	comp.reply = "hi"
	if _, err := svc.Reply(context.Background(), "hello again"); err != nil {
		t.Fatal(err)
	}
	if len(comp.lastHistory) != 1 {
		t.Errorf("history length = %d, want 1 (failed turn dropped)", len(comp.lastHistory))
	}
}
