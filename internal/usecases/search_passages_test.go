package usecases

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSearchPassagesImpl_Query(t *testing.T) {
	vector := domain.EmbeddingVector{Vector: []float64{0.1, 0.2, 0.3}, TotalTokens: 7}
	passages := []domain.Passage{
		{ChunkID: 12, Text: "The Rock of Gibraltar", SectionLabel: "VII", SectionTitle: "Gibraltar", Score: 0.91},
		{ChunkID: 3, Text: "A pleasure excursion", SectionLabel: "I", SectionTitle: "Popular Talk", Score: 0.72},
	}
	chapterFilter := domain.PassageFilter{SectionLabel: "VII"}

	tests := map[string]struct {
		query            string
		k                int
		filter           domain.PassageFilter
		setExpectations  func(index *domain.MockPassageIndex, encoder *domain.MockSemanticEncoder)
		expectedPassages []domain.Passage
		expectedErr      error
	}{
		"success": {
			query: "Gibraltar",
			k:     3,
			setExpectations: func(index *domain.MockPassageIndex, encoder *domain.MockSemanticEncoder) {
				index.EXPECT().Len().Return(42).Once()
				encoder.EXPECT().VectorizeQuery(mock.Anything, "ai/embeddinggemma", "Gibraltar").Return(vector, nil).Once()
				index.EXPECT().Search(mock.Anything, vector.Vector, 3, domain.PassageFilter{}).Return(passages, nil).Once()
			},
			expectedPassages: passages,
		},
		"k-clamped-to-index-size": {
			query:  "Gibraltar",
			k:      10,
			filter: chapterFilter,
			setExpectations: func(index *domain.MockPassageIndex, encoder *domain.MockSemanticEncoder) {
				index.EXPECT().Len().Return(2).Once()
				encoder.EXPECT().VectorizeQuery(mock.Anything, "ai/embeddinggemma", "Gibraltar").Return(vector, nil).Once()
				index.EXPECT().Search(mock.Anything, vector.Vector, 2, chapterFilter).Return(passages[:1], nil).Once()
			},
			expectedPassages: passages[:1],
		},
		"no-matches-is-not-an-error": {
			query:  "Gibraltar",
			k:      3,
			filter: domain.PassageFilter{SectionLabel: "LX"},
			setExpectations: func(index *domain.MockPassageIndex, encoder *domain.MockSemanticEncoder) {
				index.EXPECT().Len().Return(42).Once()
				encoder.EXPECT().VectorizeQuery(mock.Anything, "ai/embeddinggemma", "Gibraltar").Return(vector, nil).Once()
				index.EXPECT().Search(mock.Anything, vector.Vector, 3, domain.PassageFilter{SectionLabel: "LX"}).Return(nil, nil).Once()
			},
			expectedPassages: []domain.Passage{},
		},
		"embedding-retried-once": {
			query: "Gibraltar",
			k:     3,
			setExpectations: func(index *domain.MockPassageIndex, encoder *domain.MockSemanticEncoder) {
				index.EXPECT().Len().Return(42).Once()
				encoder.EXPECT().VectorizeQuery(mock.Anything, "ai/embeddinggemma", "Gibraltar").Return(domain.EmbeddingVector{}, errors.New("timeout")).Once()
				encoder.EXPECT().VectorizeQuery(mock.Anything, "ai/embeddinggemma", "Gibraltar").Return(vector, nil).Once()
				index.EXPECT().Search(mock.Anything, vector.Vector, 3, domain.PassageFilter{}).Return(passages, nil).Once()
			},
			expectedPassages: passages,
		},
		"embedding-fails-twice": {
			query: "Gibraltar",
			k:     3,
			setExpectations: func(index *domain.MockPassageIndex, encoder *domain.MockSemanticEncoder) {
				index.EXPECT().Len().Return(42).Once()
				encoder.EXPECT().VectorizeQuery(mock.Anything, "ai/embeddinggemma", "Gibraltar").Return(domain.EmbeddingVector{}, errors.New("timeout")).Times(2)
			},
			expectedErr: domain.ErrEmbeddingFailure,
		},
		"index-not-initialized": {
			query: "Gibraltar",
			k:     3,
			setExpectations: func(index *domain.MockPassageIndex, encoder *domain.MockSemanticEncoder) {
				index.EXPECT().Len().Return(0).Once()
			},
			expectedErr: domain.ErrIndexNotInitialized,
		},
		"search-error": {
			query: "Gibraltar",
			k:     3,
			setExpectations: func(index *domain.MockPassageIndex, encoder *domain.MockSemanticEncoder) {
				index.EXPECT().Len().Return(42).Once()
				encoder.EXPECT().VectorizeQuery(mock.Anything, "ai/embeddinggemma", "Gibraltar").Return(vector, nil).Once()
				index.EXPECT().Search(mock.Anything, vector.Vector, 3, domain.PassageFilter{}).Return(nil, domain.ErrIndexNotInitialized).Once()
			},
			expectedErr: domain.ErrIndexNotInitialized,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			index := domain.NewMockPassageIndex(t)
			encoder := domain.NewMockSemanticEncoder(t)
			tt.setExpectations(index, encoder)

			uc := NewSearchPassagesImpl(index, encoder, "ai/embeddinggemma", log.New(io.Discard, "", 0))
			got, err := uc.Query(context.Background(), tt.query, tt.k, tt.filter)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedPassages, got)
		})
	}
}

func TestSearchPassagesImpl_Query_Validation(t *testing.T) {
	tests := map[string]struct {
		query       string
		k           int
		expectedErr error
	}{
		"blank-query": {
			query:       "  ",
			k:           3,
			expectedErr: domain.NewValidationErr("query cannot be empty"),
		},
		"k-below-one": {
			query:       "Venice",
			k:           0,
			expectedErr: domain.NewValidationErr("k must be at least 1"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			index := domain.NewMockPassageIndex(t)
			encoder := domain.NewMockSemanticEncoder(t)

			uc := NewSearchPassagesImpl(index, encoder, "ai/embeddinggemma", log.New(io.Discard, "", 0))
			_, err := uc.Query(context.Background(), tt.query, tt.k, domain.PassageFilter{})
			assert.Equal(t, tt.expectedErr, err)
		})
	}
}

func TestSearchPassagesImpl_Query_CancelledSkipsRetry(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	index := domain.NewMockPassageIndex(t)
	encoder := domain.NewMockSemanticEncoder(t)

	index.EXPECT().Len().Return(42).Once()
	encoder.EXPECT().
		VectorizeQuery(mock.Anything, "ai/embeddinggemma", "Venice").
		RunAndReturn(func(context.Context, string, string) (domain.EmbeddingVector, error) {
			cancel()
			return domain.EmbeddingVector{}, errors.New("request cancelled")
		}).
		Once()

	uc := NewSearchPassagesImpl(index, encoder, "ai/embeddinggemma", log.New(io.Discard, "", 0))
	_, err := uc.Query(ctx, "Venice", 3, domain.PassageFilter{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInitSearchPassages_Initialize(t *testing.T) {
	i := InitSearchPassages{
		Logger:         log.New(io.Discard, "", 0),
		EmbeddingModel: "ai/embeddinggemma",
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	uc, err := depend.Resolve[SearchPassages]()
	assert.NoError(t, err)
	assert.NotNil(t, uc)
}
