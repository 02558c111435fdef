package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ErrorCode identifies the class of an API error.
type ErrorCode string

const (
	BADREQUEST       ErrorCode = "BAD_REQUEST"
	NOTFOUND         ErrorCode = "NOT_FOUND"
	INDEXUNAVAILABLE ErrorCode = "INDEX_UNAVAILABLE"
	INTERNALERROR    ErrorCode = "INTERNAL_ERROR"
)

// Error is the body of an API error.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp wraps an API error.
type ErrorResp struct {
	Error Error `json:"error"`
}

// SendMessageRequest is the body of the chat endpoints.
type SendMessageRequest struct {
	Message        string              `json:"message"`
	ConversationId *openapi_types.UUID `json:"conversation_id,omitempty"`
}

// SendMessageResp is the answer to one chat message.
type SendMessageResp struct {
	ConversationId      openapi_types.UUID `json:"conversation_id"`
	ConversationCreated bool               `json:"conversation_created"`
	Response            string             `json:"response"`
	Outcome             string             `json:"outcome"`
}

// Conversation is a conversation summary.
type Conversation struct {
	Id            openapi_types.UUID `json:"id"`
	Title         string             `json:"title"`
	LastMessageAt *time.Time         `json:"last_message_at,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// ConversationListResp is one page of conversations.
type ConversationListResp struct {
	Conversations []Conversation `json:"conversations"`
	Page          int            `json:"page"`
	NextPage      *int           `json:"next_page,omitempty"`
	PreviousPage  *int           `json:"previous_page,omitempty"`
}

// ListConversationsParams are the query parameters of GET /api/conversations.
type ListConversationsParams struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"page_size" json:"page_size"`
}

// ChatMessageRole is the author of a chat message.
type ChatMessageRole string

// ChatMessage is one persisted chat message.
type ChatMessage struct {
	Id        openapi_types.UUID `json:"id"`
	Role      ChatMessageRole    `json:"role"`
	Content   string             `json:"content"`
	CreatedAt time.Time          `json:"created_at"`
}

// ChatHistoryResp is the message history of a conversation.
type ChatHistoryResp struct {
	ConversationId openapi_types.UUID `json:"conversation_id"`
	Messages       []ChatMessage      `json:"messages"`
	HasMore        bool               `json:"has_more"`
}

// ListChatMessagesParams are the query parameters of the message history endpoint.
type ListChatMessagesParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// IndexRebuildResp reports a completed index rebuild.
type IndexRebuildResp struct {
	Sections int `json:"sections"`
	Chunks   int `json:"chunks"`
}

// HealthResp reports the service status.
type HealthResp struct {
	Status      string `json:"status"`
	IndexChunks int    `json:"index_chunks"`
}
