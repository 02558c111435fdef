package domain

import (
	"context"
	"strings"
)

// Section is one chapter of the source book after cleanup and segmentation.
type Section struct {
	Label string
	Title string
	Text  string
}

// Chunk is a contiguous piece of a section that gets embedded and indexed.
// IDs are unique across the whole document and assigned in document order.
type Chunk struct {
	ID                int
	Text              string
	SectionLabel      string
	SectionTitle      string
	PositionInSection int
	SectionChunkCount int
}

// Passage is a chunk returned by a similarity search together with its score.
type Passage struct {
	ChunkID      int
	Text         string
	SectionLabel string
	SectionTitle string
	Score        float64
}

// PassageFilter restricts a search to chunks matching its non-empty fields.
type PassageFilter struct {
	SectionLabel string
}

// IsEmpty reports whether the filter accepts every chunk.
func (f PassageFilter) IsEmpty() bool {
	return strings.TrimSpace(f.SectionLabel) == ""
}

// Matches reports whether the chunk satisfies the filter.
func (f PassageFilter) Matches(c Chunk) bool {
	if f.IsEmpty() {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(f.SectionLabel), c.SectionLabel)
}

// BookSource provides the cleaned and segmented source document.
type BookSource interface {
	// LoadSections returns the book sections in document order.
	LoadSections(ctx context.Context) ([]Section, error)
}

// TextChunker splits sections into chunks.
type TextChunker interface {
	Chunk(sections []Section) ([]Chunk, error)
}

// PassageIndex is the read side of the active vector index.
type PassageIndex interface {
	// Search returns at most k passages ranked by similarity to the query vector.
	Search(ctx context.Context, query []float64, k int, filter PassageFilter) ([]Passage, error)
	// Len returns the number of indexed chunks, 0 when no index is active.
	Len() int
}

// PassageIndexManager owns the lifecycle of the active index.
type PassageIndexManager interface {
	PassageIndex
	// Load reads the persisted index and makes it active.
	Load(ctx context.Context) error
	// Rebuild embeds the chunks, persists the new index and swaps it in.
	Rebuild(ctx context.Context, chunks []Chunk) error
}
