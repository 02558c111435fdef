package usecases

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBuildBookIndexImpl_Execute(t *testing.T) {
	sections := []domain.Section{
		{Label: "I", Title: "Popular Talk of the Excursion", Text: "For months the great Pleasure Excursion was talked about."},
		{Label: "II", Title: "Grand Preparations", Text: "Occasionally I dropped in."},
	}
	chunks := []domain.Chunk{
		{ID: 0, Text: sections[0].Text, SectionLabel: "I", SectionTitle: sections[0].Title, SectionChunkCount: 1},
		{ID: 1, Text: sections[1].Text, SectionLabel: "II", SectionTitle: sections[1].Title, SectionChunkCount: 1},
	}

	tests := map[string]struct {
		setExpectations func(*domain.MockBookSource, *domain.MockTextChunker, *domain.MockPassageIndexManager)
		expectedStats   BookIndexStats
		expectErr       bool
	}{
		"success": {
			setExpectations: func(source *domain.MockBookSource, chunker *domain.MockTextChunker, index *domain.MockPassageIndexManager) {
				source.EXPECT().LoadSections(mock.Anything).Return(sections, nil).Once()
				chunker.EXPECT().Chunk(sections).Return(chunks, nil).Once()
				index.EXPECT().Rebuild(mock.Anything, chunks).Return(nil).Once()
			},
			expectedStats: BookIndexStats{Sections: 2, Chunks: 2},
		},
		"source-error": {
			setExpectations: func(source *domain.MockBookSource, chunker *domain.MockTextChunker, index *domain.MockPassageIndexManager) {
				source.EXPECT().LoadSections(mock.Anything).Return(nil, errors.New("download failed")).Once()
			},
			expectErr: true,
		},
		"chunker-error": {
			setExpectations: func(source *domain.MockBookSource, chunker *domain.MockTextChunker, index *domain.MockPassageIndexManager) {
				source.EXPECT().LoadSections(mock.Anything).Return(sections, nil).Once()
				chunker.EXPECT().Chunk(sections).Return(nil, errors.New("bad options")).Once()
			},
			expectErr: true,
		},
		"no-chunks": {
			setExpectations: func(source *domain.MockBookSource, chunker *domain.MockTextChunker, index *domain.MockPassageIndexManager) {
				source.EXPECT().LoadSections(mock.Anything).Return(sections, nil).Once()
				chunker.EXPECT().Chunk(sections).Return([]domain.Chunk{}, nil).Once()
			},
			expectErr: true,
		},
		"rebuild-error": {
			setExpectations: func(source *domain.MockBookSource, chunker *domain.MockTextChunker, index *domain.MockPassageIndexManager) {
				source.EXPECT().LoadSections(mock.Anything).Return(sections, nil).Once()
				chunker.EXPECT().Chunk(sections).Return(chunks, nil).Once()
				index.EXPECT().Rebuild(mock.Anything, chunks).Return(domain.ErrEmbeddingFailure).Once()
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			source := domain.NewMockBookSource(t)
			chunker := domain.NewMockTextChunker(t)
			index := domain.NewMockPassageIndexManager(t)
			tt.setExpectations(source, chunker, index)

			uc := NewBuildBookIndexImpl(source, chunker, index, log.New(io.Discard, "", 0))
			stats, err := uc.Execute(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStats, stats)
		})
	}
}

func TestBuildBookIndexImpl_LoadOrBuild(t *testing.T) {
	sections := []domain.Section{{Label: "I", Title: "Popular Talk", Text: "Talk of the excursion."}}
	chunks := []domain.Chunk{{ID: 0, Text: "Talk of the excursion.", SectionLabel: "I", SectionTitle: "Popular Talk", SectionChunkCount: 1}}

	tests := map[string]struct {
		setExpectations func(*domain.MockBookSource, *domain.MockTextChunker, *domain.MockPassageIndexManager)
		expectedErr     error
	}{
		"loaded": {
			setExpectations: func(source *domain.MockBookSource, chunker *domain.MockTextChunker, index *domain.MockPassageIndexManager) {
				index.EXPECT().Load(mock.Anything).Return(nil).Once()
			},
		},
		"unavailable-builds": {
			setExpectations: func(source *domain.MockBookSource, chunker *domain.MockTextChunker, index *domain.MockPassageIndexManager) {
				index.EXPECT().Load(mock.Anything).Return(fmt.Errorf("%w: no such file", domain.ErrIndexUnavailable)).Once()
				source.EXPECT().LoadSections(mock.Anything).Return(sections, nil).Once()
				chunker.EXPECT().Chunk(sections).Return(chunks, nil).Once()
				index.EXPECT().Rebuild(mock.Anything, chunks).Return(nil).Once()
			},
		},
		"unavailable-build-fails": {
			setExpectations: func(source *domain.MockBookSource, chunker *domain.MockTextChunker, index *domain.MockPassageIndexManager) {
				index.EXPECT().Load(mock.Anything).Return(domain.ErrIndexUnavailable).Once()
				source.EXPECT().LoadSections(mock.Anything).Return(sections, nil).Once()
				chunker.EXPECT().Chunk(sections).Return(chunks, nil).Once()
				index.EXPECT().Rebuild(mock.Anything, chunks).Return(domain.ErrEmbeddingFailure).Once()
			},
			expectedErr: domain.ErrEmbeddingFailure,
		},
		"other-load-error": {
			setExpectations: func(source *domain.MockBookSource, chunker *domain.MockTextChunker, index *domain.MockPassageIndexManager) {
				index.EXPECT().Load(mock.Anything).Return(context.DeadlineExceeded).Once()
			},
			expectedErr: context.DeadlineExceeded,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			source := domain.NewMockBookSource(t)
			chunker := domain.NewMockTextChunker(t)
			index := domain.NewMockPassageIndexManager(t)
			tt.setExpectations(source, chunker, index)

			uc := NewBuildBookIndexImpl(source, chunker, index, log.New(io.Discard, "", 0))
			err := uc.LoadOrBuild(context.Background())
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestInitBuildBookIndex_Initialize(t *testing.T) {
	i := InitBuildBookIndex{Logger: log.New(io.Discard, "", 0)}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	uc, err := depend.Resolve[BuildBookIndex]()
	assert.NoError(t, err)
	assert.NotNil(t, uc)
}

func TestInitBookIndex_Initialize(t *testing.T) {
	tests := map[string]struct {
		loadErr   error
		expectErr bool
	}{
		"ready": {
			loadErr:   nil,
			expectErr: false,
		},
		"fails-startup": {
			loadErr:   domain.ErrEmbeddingFailure,
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			build := NewMockBuildBookIndex(t)
			build.EXPECT().LoadOrBuild(mock.Anything).Return(tt.loadErr).Once()

			_, err := InitBookIndex{BuildBookIndex: build}.Initialize(context.Background())
			if tt.expectErr {
				assert.ErrorIs(t, err, tt.loadErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
