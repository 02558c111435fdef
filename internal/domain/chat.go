package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ChatRole represents the role of a chat message
type ChatRole string

const (
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_System    ChatRole = "system"
	ChatRole_Tool      ChatRole = "tool"
)

// ChatMessage represents a persisted message in a conversation
type ChatMessage struct {
	ID               uuid.UUID
	ConversationID   uuid.UUID
	ChatRole         ChatRole
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	CreatedAt        time.Time
}

// ToAssistantMessage converts a persisted message into a model message.
func (m ChatMessage) ToAssistantMessage() AssistantMessage {
	return AssistantMessage{
		Role:    m.ChatRole,
		Content: m.Content,
	}
}

// ChatMessageRepository defines the interface for chat message persistence
type ChatMessageRepository interface {
	// CreateChatMessages appends messages to their conversations.
	CreateChatMessages(ctx context.Context, messages []ChatMessage) error

	// ListChatMessages retrieves messages of one conversation ordered by creation time.
	// If limit is greater than 0, only the last N messages are returned.
	// Returns messages and a boolean indicating if there are more messages.
	ListChatMessages(ctx context.Context, conversationID uuid.UUID, limit int) ([]ChatMessage, bool, error)
}
