package usecases

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// embeddingAttempts is the number of tries for the query embedding: the first call plus one retry.
const embeddingAttempts = 2

// SearchPassages defines the interface for the SearchPassages use case
type SearchPassages interface {
	// Query returns up to k book passages most similar to the query, best first.
	// An empty result is not an error.
	Query(ctx context.Context, query string, k int, filter domain.PassageFilter) ([]domain.Passage, error)
}

// SearchPassagesImpl is the implementation of the SearchPassages use case
type SearchPassagesImpl struct {
	index          domain.PassageIndex
	encoder        domain.SemanticEncoder
	embeddingModel string
	logger         *log.Logger
}

// NewSearchPassagesImpl creates a new instance of SearchPassagesImpl
func NewSearchPassagesImpl(
	index domain.PassageIndex,
	encoder domain.SemanticEncoder,
	embeddingModel string,
	logger *log.Logger,
) SearchPassagesImpl {
	return SearchPassagesImpl{
		index:          index,
		encoder:        encoder,
		embeddingModel: embeddingModel,
		logger:         logger,
	}
}

// Query embeds the query and searches the active index. k is clamped to the index size.
// It fails with domain.ErrIndexNotInitialized while no index is active.
func (uc SearchPassagesImpl) Query(ctx context.Context, query string, k int, filter domain.PassageFilter) ([]domain.Passage, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("k", k),
		attribute.String("section_filter", filter.SectionLabel),
	))
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		err := domain.NewValidationErr("query cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	if k < 1 {
		err := domain.NewValidationErr("k must be at least 1")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	size := uc.index.Len()
	if size == 0 {
		telemetry.RecordErrorAndStatus(span, domain.ErrIndexNotInitialized)
		return nil, domain.ErrIndexNotInitialized
	}
	k = min(k, size)

	vector, err := uc.embedQuery(spanCtx, query)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	RecordLLMTokensEmbedding(spanCtx, vector.TotalTokens)

	passages, err := uc.index.Search(spanCtx, vector.Vector, k, filter)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if passages == nil {
		passages = []domain.Passage{}
	}

	span.SetAttributes(attribute.Int("results", len(passages)))
	return passages, nil
}

// embedQuery vectorizes the query, retrying once on failure.
func (uc SearchPassagesImpl) embedQuery(ctx context.Context, query string) (domain.EmbeddingVector, error) {
	var lastErr error
	for attempt := 1; attempt <= embeddingAttempts; attempt++ {
		vector, err := uc.encoder.VectorizeQuery(ctx, uc.embeddingModel, query)
		if err == nil {
			return vector, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return domain.EmbeddingVector{}, ctx.Err()
		}
		uc.logger.Printf("SearchPassages: embedding attempt %d/%d failed: %v", attempt, embeddingAttempts, err)
	}
	return domain.EmbeddingVector{}, fmt.Errorf("%w: %w", domain.ErrEmbeddingFailure, lastErr)
}

// InitSearchPassages is the initializer for the SearchPassages use case
type InitSearchPassages struct {
	Index          domain.PassageIndex    `resolve:""`
	Encoder        domain.SemanticEncoder `resolve:""`
	Logger         *log.Logger            `resolve:""`
	EmbeddingModel string                 `config:"LLM_EMBEDDING_MODEL"`
}

// Initialize registers the SearchPassages use case in the dependency container
func (i InitSearchPassages) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SearchPassages](NewSearchPassagesImpl(i.Index, i.Encoder, i.EmbeddingModel, i.Logger))
	return ctx, nil
}
