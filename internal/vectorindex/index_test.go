package vectorindex

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixtureChunks() []domain.Chunk {
	return []domain.Chunk{
		{ID: 0, Text: "the Sphinx at dawn", SectionLabel: "LVIII", SectionTitle: "Egypt", SectionChunkCount: 2},
		{ID: 1, Text: "the streets of Paris", SectionLabel: "XII", SectionTitle: "France", SectionChunkCount: 1},
		{ID: 2, Text: "the pyramids", SectionLabel: "LVIII", SectionTitle: "Egypt", PositionInSection: 1, SectionChunkCount: 2},
		{ID: 3, Text: "Gibraltar", SectionLabel: "VI", SectionTitle: "Gibraltar", SectionChunkCount: 1},
	}
}

func fixtureIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := New("embed-model", fixtureChunks(), [][]float64{
		{1, 0},
		{0, 3},
		{2, 0},
		{1, 1},
	})
	require.NoError(t, err)
	return idx
}

func matchIDs(matches []Match) []int {
	ids := make([]int, len(matches))
	for i, m := range matches {
		ids[i] = m.Chunk.ID
	}
	return ids
}

func TestNew(t *testing.T) {
	tests := map[string]struct {
		chunks  []domain.Chunk
		vectors [][]float64
		wantErr bool
	}{
		"valid": {
			chunks:  fixtureChunks()[:2],
			vectors: [][]float64{{1, 2}, {3, 4}},
		},
		"empty": {},
		"count-mismatch": {
			chunks:  fixtureChunks()[:2],
			vectors: [][]float64{{1, 2}},
			wantErr: true,
		},
		"dimension-mismatch": {
			chunks:  fixtureChunks()[:2],
			vectors: [][]float64{{1, 2}, {3, 4, 5}},
			wantErr: true,
		},
		"zero-vector": {
			chunks:  fixtureChunks()[:1],
			vectors: [][]float64{{0, 0}},
			wantErr: true,
		},
		"duplicate-chunk-id": {
			chunks:  []domain.Chunk{{ID: 7}, {ID: 7}},
			vectors: [][]float64{{1, 0}, {0, 1}},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			idx, err := New("m", tt.chunks, tt.vectors)
			if tt.wantErr {
				var validationErr *domain.ValidationErr
				assert.ErrorAs(t, err, &validationErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.chunks), idx.Len())
		})
	}
}

func TestIndex_Search(t *testing.T) {
	idx := fixtureIndex(t)

	tests := map[string]struct {
		query   []float64
		k       int
		filter  domain.PassageFilter
		wantIDs []int
		wantErr error
	}{
		"ranks-by-score-and-breaks-ties-by-chunk-id": {
			query:   []float64{1, 0},
			k:       4,
			wantIDs: []int{0, 2, 3, 1},
		},
		"truncates-to-k": {
			query:   []float64{1, 0},
			k:       2,
			wantIDs: []int{0, 2},
		},
		"query-is-normalized": {
			query:   []float64{0, 10},
			k:       1,
			wantIDs: []int{1},
		},
		"filter-applies-before-truncation": {
			query:   []float64{0, 1},
			k:       1,
			filter:  domain.PassageFilter{SectionLabel: "LVIII"},
			wantIDs: []int{0},
		},
		"filter-never-pads": {
			query:   []float64{1, 0},
			k:       10,
			filter:  domain.PassageFilter{SectionLabel: "XII"},
			wantIDs: []int{1},
		},
		"filter-without-matches": {
			query:   []float64{1, 0},
			k:       3,
			filter:  domain.PassageFilter{SectionLabel: "XC"},
			wantIDs: []int{},
		},
		"zero-query": {
			query:   []float64{0, 0},
			k:       3,
			wantIDs: []int{},
		},
		"k-below-one": {
			query:   []float64{1, 0},
			k:       0,
			wantErr: &domain.ValidationErr{},
		},
		"dimension-mismatch": {
			query:   []float64{1, 0, 0},
			k:       1,
			wantErr: &domain.ValidationErr{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := idx.Search(tt.query, tt.k, tt.filter)
			if tt.wantErr != nil {
				var validationErr *domain.ValidationErr
				assert.ErrorAs(t, err, &validationErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, matchIDs(got))
		})
	}
}

func TestIndex_Search_Scores(t *testing.T) {
	idx := fixtureIndex(t)

	got, err := idx.Search([]float64{1, 0}, 4, domain.PassageFilter{})
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.InDelta(t, 1.0, got[0].Score, 1e-12)
	assert.InDelta(t, 1.0, got[1].Score, 1e-12)
	assert.InDelta(t, 0.7071067811865475, got[2].Score, 1e-12)
	assert.InDelta(t, 0.0, got[3].Score, 1e-12)
	assert.Equal(t, "the Sphinx at dawn", got[0].Chunk.Text)
}

func TestIndex_Search_KnownDistances(t *testing.T) {
	at := func(degrees float64) []float64 {
		rad := degrees * math.Pi / 180
		return []float64{math.Cos(rad), math.Sin(rad)}
	}
	chunks := append(fixtureChunks(), domain.Chunk{
		ID: 4, Text: "the Acropolis by moonlight", SectionLabel: "XXXII", SectionTitle: "Athens", SectionChunkCount: 1,
	})
	idx, err := New("embed-model", chunks, [][]float64{at(80), at(10), at(40), at(10), at(60)})
	require.NoError(t, err)

	first, err := idx.Search([]float64{1, 0}, 3, domain.PassageFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2}, matchIDs(first))
	assert.InDelta(t, math.Cos(10*math.Pi/180), first[0].Score, 1e-12)
	assert.InDelta(t, math.Cos(40*math.Pi/180), first[2].Score, 1e-12)

	for range 5 {
		again, err := idx.Search([]float64{1, 0}, 3, domain.PassageFilter{})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestIndex_NilIndex(t *testing.T) {
	var idx *Index

	_, err := idx.Search([]float64{1}, 1, domain.PassageFilter{})
	assert.ErrorIs(t, err, domain.ErrIndexNotInitialized)
	assert.Equal(t, 0, idx.Len())
	assert.Equal(t, 0, idx.Dimension())
	_, ok := idx.Chunk(0)
	assert.False(t, ok)
}

func TestIndex_EmptyIndexSearch(t *testing.T) {
	idx, err := New("m", nil, nil)
	require.NoError(t, err)

	got, err := idx.Search([]float64{1, 2, 3}, 5, domain.PassageFilter{})
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestIndex_Chunk(t *testing.T) {
	idx := fixtureIndex(t)

	c, ok := idx.Chunk(2)
	assert.True(t, ok)
	assert.Equal(t, "the pyramids", c.Text)

	_, ok = idx.Chunk(99)
	assert.False(t, ok)
}

func TestBuild(t *testing.T) {
	chunks := fixtureChunks()[:3]

	tests := map[string]struct {
		setExpectations func(enc *domain.MockSemanticEncoder)
		wantErr         error
		wantCalls       int
		wantTokens      int
	}{
		"embeds-every-chunk": {
			setExpectations: func(enc *domain.MockSemanticEncoder) {
				for i, c := range chunks {
					enc.EXPECT().VectorizePassage(mock.Anything, "embed-model", c).
						Return(domain.EmbeddingVector{Vector: []float64{float64(i + 1), 1}, TotalTokens: 5}, nil).
						Once()
				}
			},
			wantCalls:  3,
			wantTokens: 15,
		},
		"retries-a-failed-embedding-once": {
			setExpectations: func(enc *domain.MockSemanticEncoder) {
				enc.EXPECT().VectorizePassage(mock.Anything, "embed-model", chunks[0]).
					Return(domain.EmbeddingVector{}, errors.New("temporarily unavailable")).
					Once()
				for _, c := range chunks {
					enc.EXPECT().VectorizePassage(mock.Anything, "embed-model", c).
						Return(domain.EmbeddingVector{Vector: []float64{1, 1}, TotalTokens: 1}, nil).
						Once()
				}
			},
			wantCalls:  4,
			wantTokens: 3,
		},
		"fails-after-second-attempt": {
			setExpectations: func(enc *domain.MockSemanticEncoder) {
				enc.EXPECT().VectorizePassage(mock.Anything, "embed-model", mock.Anything).
					Return(domain.EmbeddingVector{}, errors.New("model offline")).
					Maybe()
			},
			wantErr: domain.ErrEmbeddingFailure,
		},
		"empty-vector-counts-as-failure": {
			setExpectations: func(enc *domain.MockSemanticEncoder) {
				enc.EXPECT().VectorizePassage(mock.Anything, "embed-model", mock.Anything).
					Return(domain.EmbeddingVector{}, nil).
					Maybe()
			},
			wantErr: domain.ErrEmbeddingFailure,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			enc := domain.NewMockSemanticEncoder(t)
			tt.setExpectations(enc)

			idx, stats, err := Build(context.Background(), chunks, enc, "embed-model", 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, idx)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 3, idx.Len())
			assert.Equal(t, 2, idx.Dimension())
			assert.Equal(t, "embed-model", idx.Model())
			assert.Equal(t, tt.wantCalls, stats.EmbeddingCalls)
			assert.Equal(t, tt.wantTokens, stats.TotalTokens)
		})
	}
}

func TestBuild_Parallel(t *testing.T) {
	chunks := make([]domain.Chunk, 50)
	for i := range chunks {
		chunks[i] = domain.Chunk{ID: i, Text: "passage"}
	}

	enc := domain.NewMockSemanticEncoder(t)
	enc.EXPECT().VectorizePassage(mock.Anything, "embed-model", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, c domain.Chunk) (domain.EmbeddingVector, error) {
			return domain.EmbeddingVector{Vector: []float64{float64(c.ID + 1), 1}}, nil
		}).
		Times(50)

	idx, _, err := Build(context.Background(), chunks, enc, "embed-model", 8)
	require.NoError(t, err)

	for i := range chunks {
		c, ok := idx.Chunk(i)
		assert.True(t, ok)
		assert.Equal(t, i, c.ID)
	}
	got, err := idx.Search([]float64{50, 1}, 1, domain.PassageFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int{49}, matchIDs(got))
}

func TestBuild_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	enc := domain.NewMockSemanticEncoder(t)
	enc.EXPECT().VectorizePassage(mock.Anything, "embed-model", mock.Anything).
		Return(domain.EmbeddingVector{}, context.Canceled).
		Maybe()

	_, _, err := Build(ctx, fixtureChunks(), enc, "embed-model", 2)
	assert.ErrorIs(t, err, context.Canceled)
}
