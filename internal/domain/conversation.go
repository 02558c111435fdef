package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ConversationTitleMaxLength is the number of characters of the first user message kept as title.
const ConversationTitleMaxLength = 35

// Conversation represents a chat conversation, which can have multiple messages and a title.
type Conversation struct {
	ID            uuid.UUID
	Title         string
	LastMessageAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks if the conversation has valid data.
func (c Conversation) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return NewValidationErr("conversation title cannot be empty")
	}
	return nil
}

// ConversationRepository defines the interface for managing conversations.
type ConversationRepository interface {
	// CreateConversation creates a new conversation with the given title and returns it.
	CreateConversation(context.Context, string) (Conversation, error)
	// GetConversation returns the conversation with the given ID, a boolean indicating if it was found, and an error if any.
	GetConversation(context.Context, uuid.UUID) (Conversation, bool, error)
	// UpdateConversation updates the conversation with the given ID.
	UpdateConversation(context.Context, Conversation) error
	// ListConversations returns a list of conversations with pagination support ordered by last message time descending.
	ListConversations(ctx context.Context, page int, pageSize int) ([]Conversation, bool, error)
	// DeleteConversation deletes the conversation with the given ID and its messages.
	DeleteConversation(context.Context, uuid.UUID) error
}

// GenerateConversationTitle derives a title from the first user message: its first
// ConversationTitleMaxLength characters, with an ellipsis when truncated.
func GenerateConversationTitle(userMessage string) string {
	text := strings.TrimSpace(userMessage)
	if text == "" {
		return "New Conversation"
	}
	runes := []rune(text)
	if len(runes) <= ConversationTitleMaxLength {
		return text
	}
	return string(runes[:ConversationTitleMaxLength]) + "..."
}
