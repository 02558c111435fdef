// Package vectorindex holds the in-memory similarity index over book chunks,
// its on-disk SQLite representation and the atomically swappable active index.
package vectorindex

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/common"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"golang.org/x/sync/errgroup"
)

type entry struct {
	chunk  domain.Chunk
	vector []float64
}

// Match is one search hit.
type Match struct {
	Chunk domain.Chunk
	Score float64
}

// Index is an immutable set of unit-length chunk vectors. A nil *Index is a
// valid value that reports ErrIndexNotInitialized on search.
type Index struct {
	entries   []entry
	byID      map[int]int
	dimension int
	model     string
}

// newIndex assembles an index from entries whose vectors are already normalized.
func newIndex(model string, entries []entry) (*Index, error) {
	idx := &Index{
		entries: entries,
		byID:    make(map[int]int, len(entries)),
		model:   model,
	}
	for i, e := range entries {
		if idx.dimension == 0 {
			idx.dimension = len(e.vector)
		}
		if len(e.vector) != idx.dimension {
			return nil, fmt.Errorf("chunk %d: vector dimension %d does not match index dimension %d",
				e.chunk.ID, len(e.vector), idx.dimension)
		}
		if _, dup := idx.byID[e.chunk.ID]; dup {
			return nil, fmt.Errorf("duplicate chunk id %d", e.chunk.ID)
		}
		idx.byID[e.chunk.ID] = i
	}
	return idx, nil
}

// New creates an index from chunks and their raw embedding vectors.
func New(model string, chunks []domain.Chunk, vectors [][]float64) (*Index, error) {
	if len(chunks) != len(vectors) {
		return nil, domain.NewValidationErr(fmt.Sprintf(
			"got %d vectors for %d chunks", len(vectors), len(chunks),
		))
	}
	entries := make([]entry, len(chunks))
	for i, c := range chunks {
		unit, ok := common.Normalize(vectors[i])
		if !ok {
			return nil, domain.NewValidationErr(fmt.Sprintf("chunk %d has an empty or zero vector", c.ID))
		}
		entries[i] = entry{chunk: c, vector: unit}
	}
	idx, err := newIndex(model, entries)
	if err != nil {
		return nil, domain.NewValidationErr(err.Error())
	}
	return idx, nil
}

// BuildStats reports what a build consumed.
type BuildStats struct {
	Chunks         int
	EmbeddingCalls int
	TotalTokens    int
}

// Build embeds every chunk with the encoder using at most parallelism concurrent
// calls and returns the resulting index. A failing embedding is retried once
// before the whole build fails with ErrEmbeddingFailure.
func Build(
	ctx context.Context,
	chunks []domain.Chunk,
	encoder domain.SemanticEncoder,
	model string,
	parallelism int,
) (*Index, BuildStats, error) {
	if parallelism < 1 {
		parallelism = 1
	}

	var (
		vectors = make([][]float64, len(chunks))
		calls   atomic.Int64
		tokens  atomic.Int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, chunk := range chunks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var (
				vec domain.EmbeddingVector
				err error
			)
			for attempt := 0; attempt < 2; attempt++ {
				calls.Add(1)
				vec, err = embedPassage(gctx, encoder, model, chunk)
				if err == nil || gctx.Err() != nil {
					break
				}
			}
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
					return err
				}
				return fmt.Errorf("%w: chunk %d: %v", domain.ErrEmbeddingFailure, chunk.ID, err)
			}
			vectors[i] = vec.Vector
			tokens.Add(int64(vec.TotalTokens))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, BuildStats{}, err
	}

	idx, err := New(model, chunks, vectors)
	if err != nil {
		return nil, BuildStats{}, err
	}
	return idx, BuildStats{
		Chunks:         len(chunks),
		EmbeddingCalls: int(calls.Load()),
		TotalTokens:    int(tokens.Load()),
	}, nil
}

func embedPassage(ctx context.Context, encoder domain.SemanticEncoder, model string, chunk domain.Chunk) (domain.EmbeddingVector, error) {
	vec, err := encoder.VectorizePassage(ctx, model, chunk)
	if err != nil {
		return domain.EmbeddingVector{}, err
	}
	if len(vec.Vector) == 0 {
		return domain.EmbeddingVector{}, errors.New("empty embedding vector")
	}
	return vec, nil
}

// Search ranks chunks accepted by filter by cosine similarity to query and returns
// at most k of them, best first. Equal scores are ordered by ascending chunk id.
// The filter is applied before truncation and results are never padded.
func (idx *Index) Search(query []float64, k int, filter domain.PassageFilter) ([]Match, error) {
	if idx == nil {
		return nil, domain.ErrIndexNotInitialized
	}
	if k < 1 {
		return nil, domain.NewValidationErr("k must be at least 1")
	}
	if len(idx.entries) == 0 {
		return []Match{}, nil
	}
	if len(query) != idx.dimension {
		return nil, domain.NewValidationErr(fmt.Sprintf(
			"query dimension %d does not match index dimension %d", len(query), idx.dimension,
		))
	}
	unit, ok := common.Normalize(query)
	if !ok {
		return []Match{}, nil
	}

	matches := make([]Match, 0, len(idx.entries))
	for _, e := range idx.entries {
		if !filter.Matches(e.chunk) {
			continue
		}
		matches = append(matches, Match{Chunk: e.chunk, Score: common.Dot(unit, e.vector)})
	}

	slices.SortFunc(matches, func(a, b Match) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Chunk.ID, b.Chunk.ID)
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches, nil
}

// Len returns the number of indexed chunks.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}

// Dimension returns the vector dimension, 0 for an empty index.
func (idx *Index) Dimension() int {
	if idx == nil {
		return 0
	}
	return idx.dimension
}

// Model returns the embedding model the vectors were produced with.
func (idx *Index) Model() string {
	if idx == nil {
		return ""
	}
	return idx.model
}

// Chunk returns the chunk with the given id.
func (idx *Index) Chunk(id int) (domain.Chunk, bool) {
	if idx == nil {
		return domain.Chunk{}, false
	}
	i, ok := idx.byID[id]
	if !ok {
		return domain.Chunk{}, false
	}
	return idx.entries[i].chunk, true
}
