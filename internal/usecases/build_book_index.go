package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// BookIndexStats summarizes one index build.
type BookIndexStats struct {
	Sections int
	Chunks   int
}

// BuildBookIndex defines the interface for the BuildBookIndex use case
type BuildBookIndex interface {
	// Execute loads and chunks the book, then rebuilds, persists and activates the index.
	Execute(ctx context.Context) (BookIndexStats, error)
	// LoadOrBuild activates the persisted index, building it when it is missing or unusable.
	LoadOrBuild(ctx context.Context) error
}

// BuildBookIndexImpl is the implementation of the BuildBookIndex use case
type BuildBookIndexImpl struct {
	source  domain.BookSource
	chunker domain.TextChunker
	index   domain.PassageIndexManager
	logger  *log.Logger
}

// NewBuildBookIndexImpl creates a new instance of BuildBookIndexImpl
func NewBuildBookIndexImpl(
	source domain.BookSource,
	chunker domain.TextChunker,
	index domain.PassageIndexManager,
	logger *log.Logger,
) BuildBookIndexImpl {
	return BuildBookIndexImpl{
		source:  source,
		chunker: chunker,
		index:   index,
		logger:  logger,
	}
}

// Execute rebuilds the index from the book. The previous index stays active if any step fails.
func (uc BuildBookIndexImpl) Execute(ctx context.Context) (BookIndexStats, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	sections, err := uc.source.LoadSections(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return BookIndexStats{}, fmt.Errorf("failed to load book sections: %w", err)
	}

	chunks, err := uc.chunker.Chunk(sections)
	if telemetry.RecordErrorAndStatus(span, err) {
		return BookIndexStats{}, fmt.Errorf("failed to chunk book: %w", err)
	}
	if len(chunks) == 0 {
		err := errors.New("book produced no chunks")
		telemetry.RecordErrorAndStatus(span, err)
		return BookIndexStats{}, err
	}

	span.SetAttributes(
		attribute.Int("sections", len(sections)),
		attribute.Int("chunks", len(chunks)),
	)

	if err := uc.index.Rebuild(spanCtx, chunks); telemetry.RecordErrorAndStatus(span, err) {
		return BookIndexStats{}, err
	}

	stats := BookIndexStats{Sections: len(sections), Chunks: len(chunks)}
	uc.logger.Printf("BuildBookIndex: indexed %d chunks from %d sections", stats.Chunks, stats.Sections)
	return stats, nil
}

// LoadOrBuild loads the persisted index. Only domain.ErrIndexUnavailable triggers a build;
// any other failure is returned as is.
func (uc BuildBookIndexImpl) LoadOrBuild(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := uc.index.Load(spanCtx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrIndexUnavailable) {
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	uc.logger.Printf("BuildBookIndex: %v, building a new index", err)
	_, err = uc.Execute(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitBuildBookIndex is the initializer for the BuildBookIndex use case
type InitBuildBookIndex struct {
	Source  domain.BookSource          `resolve:""`
	Chunker domain.TextChunker         `resolve:""`
	Index   domain.PassageIndexManager `resolve:""`
	Logger  *log.Logger                `resolve:""`
}

// Initialize registers the BuildBookIndex use case in the dependency container
func (i InitBuildBookIndex) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[BuildBookIndex](NewBuildBookIndexImpl(i.Source, i.Chunker, i.Index, i.Logger))
	return ctx, nil
}

// InitBookIndex makes sure a usable index is active before the application serves requests.
// A failure aborts startup.
type InitBookIndex struct {
	BuildBookIndex BuildBookIndex `resolve:""`
}

// Initialize loads or builds the book index.
func (i InitBookIndex) Initialize(ctx context.Context) (context.Context, error) {
	if err := i.BuildBookIndex.LoadOrBuild(ctx); err != nil {
		return ctx, fmt.Errorf("failed to prepare book index: %w", err)
	}
	return ctx, nil
}
