package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// ListChatMessages defines the interface for the ListChatMessages use case
type ListChatMessages interface {
	// Query returns the latest messages of a conversation in chronological order.
	// A limit of 0 returns every message.
	Query(ctx context.Context, conversationID uuid.UUID, limit int) ([]domain.ChatMessage, bool, error)
}

// ListChatMessagesImpl is the implementation of the ListChatMessages use case
type ListChatMessagesImpl struct {
	conversationRepo domain.ConversationRepository
	chatMessageRepo  domain.ChatMessageRepository
}

// NewListChatMessagesImpl creates a new instance of ListChatMessagesImpl
func NewListChatMessagesImpl(conversationRepo domain.ConversationRepository, chatMessageRepo domain.ChatMessageRepository) ListChatMessagesImpl {
	return ListChatMessagesImpl{
		conversationRepo: conversationRepo,
		chatMessageRepo:  chatMessageRepo,
	}
}

// Query retrieves the messages of one conversation
func (lcm ListChatMessagesImpl) Query(ctx context.Context, conversationID uuid.UUID, limit int) ([]domain.ChatMessage, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if limit < 0 {
		err := domain.NewValidationErr("limit cannot be negative")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, false, err
	}

	_, found, err := lcm.conversationRepo.GetConversation(spanCtx, conversationID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}
	if !found {
		err := domain.NewNotFoundErr("conversation not found")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, false, err
	}

	messages, hasMore, err := lcm.chatMessageRepo.ListChatMessages(spanCtx, conversationID, limit)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}

	// Filter out tool messages before returning to the user
	messagesToReturnToUser := []domain.ChatMessage{}
	for _, msg := range messages {
		if msg.ChatRole != domain.ChatRole_Tool && len(msg.Content) > 0 {
			messagesToReturnToUser = append(messagesToReturnToUser, msg)
		}
	}

	return messagesToReturnToUser, hasMore, nil
}

// InitListChatMessages is the initializer for the ListChatMessages use case
type InitListChatMessages struct {
	ConversationRepo domain.ConversationRepository `resolve:""`
	Repo             domain.ChatMessageRepository  `resolve:""`
}

// Initialize registers the ListChatMessages use case in the dependency container
func (i InitListChatMessages) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListChatMessages](NewListChatMessagesImpl(i.ConversationRepo, i.Repo))
	return ctx, nil
}
