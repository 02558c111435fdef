package vectorindex

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Manager owns the active index. Searches read whichever index is active when they
// start; rebuilds construct a complete new index and swap it in atomically.
type Manager struct {
	active      atomic.Pointer[Index]
	rebuildMu   sync.Mutex
	path        string
	model       string
	parallelism int
	encoder     domain.SemanticEncoder
	logger      *log.Logger
}

// NewManager creates a Manager with no active index.
func NewManager(
	path string,
	model string,
	parallelism int,
	encoder domain.SemanticEncoder,
	logger *log.Logger,
) *Manager {
	return &Manager{
		path:        path,
		model:       model,
		parallelism: parallelism,
		encoder:     encoder,
		logger:      logger,
	}
}

// Current returns the active index, nil when none was loaded or built yet.
func (m *Manager) Current() *Index {
	return m.active.Load()
}

// Swap makes idx the active index and returns the previous one.
func (m *Manager) Swap(idx *Index) *Index {
	return m.active.Swap(idx)
}

// Len returns the size of the active index.
func (m *Manager) Len() int {
	return m.active.Load().Len()
}

// Search implements domain.PassageIndex over the active index.
func (m *Manager) Search(ctx context.Context, query []float64, k int, filter domain.PassageFilter) ([]domain.Passage, error) {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("k", k),
		attribute.String("section_filter", filter.SectionLabel),
	))
	defer span.End()

	matches, err := m.active.Load().Search(query, k, filter)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	passages := make([]domain.Passage, len(matches))
	for i, match := range matches {
		passages[i] = domain.Passage{
			ChunkID:      match.Chunk.ID,
			Text:         match.Chunk.Text,
			SectionLabel: match.Chunk.SectionLabel,
			SectionTitle: match.Chunk.SectionTitle,
			Score:        match.Score,
		}
	}
	return passages, nil
}

// Load reads the persisted index and activates it. An index produced by a different
// embedding model is reported as unavailable so callers rebuild it. Load waits for a
// running rebuild, so it never replaces a freshly rebuilt index with an older file.
func (m *Manager) Load(ctx context.Context) error {
	m.rebuildMu.Lock()
	defer m.rebuildMu.Unlock()

	idx, err := Load(ctx, m.path)
	if err != nil {
		return err
	}
	if m.model != "" && idx.Model() != m.model {
		return fmt.Errorf("%w: index was built with model %q, configured model is %q",
			domain.ErrIndexUnavailable, idx.Model(), m.model)
	}
	m.Swap(idx)
	m.logger.Printf("PassageIndex: loaded %d chunks (dimension %d) from %s", idx.Len(), idx.Dimension(), m.path)
	return nil
}

// Rebuild embeds the chunks, persists the new index and swaps it in. Concurrent
// rebuilds are serialized; searches keep using the previous index meanwhile.
func (m *Manager) Rebuild(ctx context.Context, chunks []domain.Chunk) (err error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("chunks", len(chunks)),
	))
	defer span.End()

	m.rebuildMu.Lock()
	defer m.rebuildMu.Unlock()

	started := time.Now()
	defer func() {
		telemetry.RecordErrorAndStatus(span, err)
		recordIndexBuild(spanCtx, err, time.Since(started))
	}()

	idx, stats, err := Build(spanCtx, chunks, m.encoder, m.model, m.parallelism)
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}
	recordEmbeddingTokens(spanCtx, stats.TotalTokens)

	if err := Save(spanCtx, idx, m.path); err != nil {
		return fmt.Errorf("save index: %w", err)
	}

	m.Swap(idx)
	m.logger.Printf("PassageIndex: rebuilt %d chunks in %s (%d embedding calls, %d tokens)",
		stats.Chunks, time.Since(started).Round(time.Millisecond), stats.EmbeddingCalls, stats.TotalTokens)
	return nil
}

// InitPassageIndex is a Symbiont initializer that registers the index Manager as
// domain.PassageIndexManager and domain.PassageIndex.
type InitPassageIndex struct {
	Logger      *log.Logger            `resolve:""`
	Encoder     domain.SemanticEncoder `resolve:""`
	Path        string                 `config:"INDEX_PATH" default:"data/innocents_abroad.index.db"`
	Model       string                 `config:"LLM_EMBEDDING_MODEL"`
	Parallelism int                    `config:"INDEX_BUILD_PARALLELISM" default:"4"`
}

// Initialize registers the Manager in the dependency container.
func (i InitPassageIndex) Initialize(ctx context.Context) (context.Context, error) {
	m := NewManager(i.Path, i.Model, i.Parallelism, i.Encoder, i.Logger)
	depend.Register[domain.PassageIndexManager](m)
	depend.Register[domain.PassageIndex](m)
	return ctx, nil
}
