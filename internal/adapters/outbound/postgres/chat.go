package postgres

import (
	"context"
	"database/sql"
	"slices"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var chatFields = []string{
	"id",
	"conversation_id",
	"chat_role",
	"content",
	"model",
	"prompt_tokens",
	"completion_tokens",
	"created_at",
}

// ChatMessageRepository persists chat messages in Postgres.
type ChatMessageRepository struct {
	sb squirrel.StatementBuilderType
}

// NewChatMessageRepository creates a new ChatMessageRepository.
func NewChatMessageRepository(br squirrel.BaseRunner) ChatMessageRepository {
	return ChatMessageRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateChatMessages appends messages in a single insert.
func (r ChatMessageRepository) CreateChatMessages(ctx context.Context, messages []domain.ChatMessage) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("messages", len(messages)),
	))
	defer span.End()

	if len(messages) == 0 {
		return nil
	}

	insertQry := r.sb.
		Insert("chat_messages").
		Columns(chatFields...)

	for _, message := range messages {
		insertQry = insertQry.Values(
			message.ID,
			message.ConversationID,
			message.ChatRole,
			message.Content,
			message.Model,
			message.PromptTokens,
			message.CompletionTokens,
			message.CreatedAt,
		)
	}

	_, err := insertQry.ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// ListChatMessages retrieves messages of one conversation in chronological order.
// If limit > 0, returns up to the latest N messages; hasMore indicates if there are older messages.
func (r ChatMessageRepository) ListChatMessages(ctx context.Context, conversationID uuid.UUID, limit int) ([]domain.ChatMessage, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("conversation_id", conversationID.String()),
		attribute.Int("limit", limit),
	))
	defer span.End()

	qry := r.sb.
		Select(chatFields...).
		From("chat_messages").
		Where(squirrel.Eq{"conversation_id": conversationID}).
		OrderBy("created_at DESC", "id DESC")

	if limit > 0 {
		qry = qry.Limit(uint64(limit + 1)) // fetch one extra to detect more
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}
	defer rows.Close() //nolint:errcheck

	msgs := []domain.ChatMessage{}
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(
			&m.ID,
			&m.ConversationID,
			&m.ChatRole,
			&m.Content,
			&m.Model,
			&m.PromptTokens,
			&m.CompletionTokens,
			&m.CreatedAt,
		); telemetry.RecordErrorAndStatus(span, err) {
			return nil, false, err
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}

	hasMore := false
	if limit > 0 && len(msgs) > limit {
		hasMore = true
		msgs = msgs[:limit]
	}

	// rows come newest first
	slices.Reverse(msgs)

	return msgs, hasMore, nil
}

// InitChatMessageRepository is a Symbiont initializer for ChatMessageRepository.
type InitChatMessageRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the ChatMessageRepository in the dependency container.
func (r InitChatMessageRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ChatMessageRepository](NewChatMessageRepository(r.DB))
	return ctx, nil
}
