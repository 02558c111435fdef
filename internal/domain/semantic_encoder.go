package domain

import "context"

// EmbeddingVector is a semantic vector plus token accounting.
type EmbeddingVector struct {
	Vector      []float64
	TotalTokens int
}

// SemanticEncoder defines embedding/vectorization behavior in domain terms.
type SemanticEncoder interface {
	// VectorizeQuery generates a semantic vector for one user query/search input.
	VectorizeQuery(ctx context.Context, model, query string) (EmbeddingVector, error)
	// VectorizePassage generates a semantic vector for one book chunk.
	VectorizePassage(ctx context.Context, model string, chunk Chunk) (EmbeddingVector, error)
}
