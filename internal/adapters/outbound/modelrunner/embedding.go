package modelrunner

import (
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
)

// EmbeddingGenerator builds the model input for passages and search queries.
type EmbeddingGenerator interface {
	// GenerateIndexingPrompt creates the prompt used for embedding a book chunk.
	GenerateIndexingPrompt(chunk domain.Chunk) string
	// GenerateSearchPrompt creates the prompt used for embedding a search query.
	GenerateSearchPrompt(searchInput string) string
}

// EmbeddingFactory provides a method to get an EmbeddingGenerator based on the model name.
type EmbeddingFactory interface {
	// Get returns an EmbeddingGenerator for the specified model name.
	Get(model string) EmbeddingGenerator
}

type embeddingFactory struct{}

func (f embeddingFactory) Get(model string) EmbeddingGenerator {
	if strings.Contains(model, "embeddinggemma") {
		return gemmaEmbedding{}
	}
	return defaultEmbeddingGenerator{}
}

// gemmaEmbedding follows the task prefixes the Gemma embedding model was trained with.
type gemmaEmbedding struct{}

func (a gemmaEmbedding) GenerateIndexingPrompt(chunk domain.Chunk) string {
	title := strings.TrimSpace(chunk.SectionTitle)
	if title == "" {
		title = "none"
	}
	return fmt.Sprintf("title: %s | text: %s", title, chunk.Text)
}

func (a gemmaEmbedding) GenerateSearchPrompt(searchInput string) string {
	return fmt.Sprintf("task: search result | query: %s", searchInput)
}

// defaultEmbeddingGenerator sends the raw text without model-specific formatting.
type defaultEmbeddingGenerator struct{}

func (a defaultEmbeddingGenerator) GenerateIndexingPrompt(chunk domain.Chunk) string {
	return chunk.Text
}

func (a defaultEmbeddingGenerator) GenerateSearchPrompt(searchInput string) string {
	return searchInput
}
