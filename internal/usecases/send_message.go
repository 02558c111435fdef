package usecases

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// SendMessageRequest is one user message, optionally continuing a conversation.
type SendMessageRequest struct {
	Message        string
	ConversationID *uuid.UUID
}

// SendMessageResult is the outcome of one conversation turn.
type SendMessageResult struct {
	ConversationID      uuid.UUID
	ConversationCreated bool
	Answer              string
	Outcome             string
	Usage               domain.AssistantUsage
}

// SendMessage defines the interface for the SendMessage use case
type SendMessage interface {
	// Execute answers a user message within a conversation and persists the turn.
	Execute(ctx context.Context, req SendMessageRequest, onEvent domain.AssistantEventCallback) (SendMessageResult, error)
}

// SendMessageImpl is the implementation of the SendMessage use case
type SendMessageImpl struct {
	conversationRepo domain.ConversationRepository
	chatMessageRepo  domain.ChatMessageRepository
	uow              domain.UnitOfWork
	timeProvider     domain.CurrentTimeProvider
	orchestrator     Orchestrator
	logger           *log.Logger
	model            string
	historyMessages  int
}

// NewSendMessageImpl creates a new instance of SendMessageImpl
func NewSendMessageImpl(
	conversationRepo domain.ConversationRepository,
	chatMessageRepo domain.ChatMessageRepository,
	uow domain.UnitOfWork,
	timeProvider domain.CurrentTimeProvider,
	orchestrator Orchestrator,
	logger *log.Logger,
	model string,
	historyMessages int,
) SendMessageImpl {
	return SendMessageImpl{
		conversationRepo: conversationRepo,
		chatMessageRepo:  chatMessageRepo,
		uow:              uow,
		timeProvider:     timeProvider,
		orchestrator:     orchestrator,
		logger:           logger,
		model:            model,
		historyMessages:  historyMessages,
	}
}

// Execute runs one orchestration for the message. The user message and the answer are
// persisted together once the run finished; a cancelled run persists nothing.
func (sm SendMessageImpl) Execute(ctx context.Context, req SendMessageRequest, onEvent domain.AssistantEventCallback) (SendMessageResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	userMessage := strings.TrimSpace(req.Message)
	if userMessage == "" {
		err := domain.NewValidationErr("message cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return SendMessageResult{}, err
	}
	if onEvent == nil {
		onEvent = func(domain.AssistantEventType, any) error { return nil }
	}

	conversation, conversationCreated, err := sm.createOrRetrieveConversation(spanCtx, req.ConversationID, userMessage)
	if telemetry.RecordErrorAndStatus(span, err) {
		return SendMessageResult{}, err
	}
	span.SetAttributes(
		attribute.String("conversation_id", conversation.ID.String()),
		attribute.Bool("conversation_created", conversationCreated),
	)

	if err := onEvent(domain.AssistantEventType_TurnStarted, domain.AssistantTurnStarted{
		ConversationID:      conversation.ID,
		ConversationCreated: conversationCreated,
	}); telemetry.RecordErrorAndStatus(span, err) {
		return SendMessageResult{}, err
	}

	prior, err := sm.fetchChatHistory(spanCtx, conversation.ID, conversationCreated)
	if telemetry.RecordErrorAndStatus(span, err) {
		return SendMessageResult{}, err
	}

	askedAt := sm.timeProvider.Now()
	result, err := sm.orchestrator.Run(spanCtx, prior, userMessage, onEvent)
	if telemetry.RecordErrorAndStatus(span, err) {
		return SendMessageResult{}, err
	}
	if err := spanCtx.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return SendMessageResult{}, err
	}

	answeredAt := sm.timeProvider.Now()
	err = sm.persistTurn(spanCtx, conversation, []domain.ChatMessage{
		{
			ID:             uuid.New(),
			ConversationID: conversation.ID,
			ChatRole:       domain.ChatRole_User,
			Content:        userMessage,
			CreatedAt:      askedAt,
		},
		{
			ID:               uuid.New(),
			ConversationID:   conversation.ID,
			ChatRole:         domain.ChatRole_Assistant,
			Content:          result.Answer,
			Model:            sm.model,
			PromptTokens:     result.Usage.PromptTokens,
			CompletionTokens: result.Usage.CompletionTokens,
			CreatedAt:        answeredAt,
		},
	}, answeredAt)
	if telemetry.RecordErrorAndStatus(span, err) {
		return SendMessageResult{}, err
	}

	if err := onEvent(domain.AssistantEventType_TurnCompleted, domain.AssistantTurnCompleted{
		Content:     result.Answer,
		Iterations:  result.Iterations,
		Usage:       result.Usage,
		CompletedAt: answeredAt.Format(time.RFC3339),
	}); telemetry.RecordErrorAndStatus(span, err) {
		return SendMessageResult{}, err
	}

	return SendMessageResult{
		ConversationID:      conversation.ID,
		ConversationCreated: conversationCreated,
		Answer:              result.Answer,
		Outcome:             result.Outcome,
		Usage:               result.Usage,
	}, nil
}

// createOrRetrieveConversation loads the requested conversation or starts a new one
// titled after the first message.
func (sm SendMessageImpl) createOrRetrieveConversation(ctx context.Context, conversationID *uuid.UUID, userMessage string) (domain.Conversation, bool, error) {
	if conversationID != nil {
		conversation, found, err := sm.conversationRepo.GetConversation(ctx, *conversationID)
		if err != nil {
			return domain.Conversation{}, false, err
		}
		if !found {
			return domain.Conversation{}, false, domain.NewNotFoundErr("conversation not found")
		}
		return conversation, false, nil
	}

	conversation, err := sm.conversationRepo.CreateConversation(ctx, domain.GenerateConversationTitle(userMessage))
	if err != nil {
		return domain.Conversation{}, false, err
	}
	sm.logger.Printf("SendMessage: started conversation %s", conversation.ID)
	return conversation, true, nil
}

// fetchChatHistory returns the latest user and assistant messages of the conversation.
func (sm SendMessageImpl) fetchChatHistory(ctx context.Context, conversationID uuid.UUID, conversationCreated bool) ([]domain.AssistantMessage, error) {
	if conversationCreated || sm.historyMessages <= 0 {
		return nil, nil
	}

	history, _, err := sm.chatMessageRepo.ListChatMessages(ctx, conversationID, sm.historyMessages)
	if err != nil {
		return nil, err
	}

	messages := make([]domain.AssistantMessage, 0, len(history))
	for _, msg := range history {
		if msg.ChatRole != domain.ChatRole_User && msg.ChatRole != domain.ChatRole_Assistant {
			continue
		}
		if strings.TrimSpace(msg.Content) == "" {
			continue
		}
		messages = append(messages, msg.ToAssistantMessage())
	}
	return messages, nil
}

// persistTurn stores the messages and bumps the conversation activity in one transaction.
func (sm SendMessageImpl) persistTurn(ctx context.Context, conversation domain.Conversation, messages []domain.ChatMessage, at time.Time) error {
	return sm.uow.Execute(ctx, func(uow domain.UnitOfWork) error {
		if err := uow.ChatMessage().CreateChatMessages(ctx, messages); err != nil {
			return err
		}
		conversation.LastMessageAt = &at
		conversation.UpdatedAt = at
		return uow.Conversation().UpdateConversation(ctx, conversation)
	})
}

// InitSendMessage is the initializer for the SendMessage use case
type InitSendMessage struct {
	ConversationRepo domain.ConversationRepository `resolve:""`
	ChatMessageRepo  domain.ChatMessageRepository  `resolve:""`
	Uow              domain.UnitOfWork             `resolve:""`
	TimeProvider     domain.CurrentTimeProvider    `resolve:""`
	Orchestrator     Orchestrator                  `resolve:""`
	Logger           *log.Logger                   `resolve:""`
	Model            string                        `config:"LLM_MODEL"`
	// Number of prior messages given to the model as context
	HistoryMessages int `config:"AGENT_HISTORY_MESSAGES" default:"10"`
}

// Initialize registers the SendMessage use case in the dependency container
func (i InitSendMessage) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SendMessage](NewSendMessageImpl(
		i.ConversationRepo,
		i.ChatMessageRepo,
		i.Uow,
		i.TimeProvider,
		i.Orchestrator,
		i.Logger,
		i.Model,
		i.HistoryMessages,
	))
	return ctx, nil
}
