package chunker

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

const (
	LengthUnitCharacters = "characters"
	LengthUnitTokens     = "tokens"
)

// InitTextChunker registers a Splitter as domain.TextChunker.
type InitTextChunker struct {
	MaxLength  int    `config:"CHUNK_SIZE" default:"1000"`
	Overlap    int    `config:"CHUNK_OVERLAP" default:"200"`
	LengthUnit string `config:"CHUNK_LENGTH_UNIT" default:"characters"`
	// Only used with the tokens unit
	TokenEncoding string `config:"CHUNK_TOKEN_ENCODING" default:"cl100k_base"`
}

// Initialize validates the chunking options and registers the splitter.
func (i InitTextChunker) Initialize(ctx context.Context) (context.Context, error) {
	opts := []Option{WithMaxLength(i.MaxLength), WithOverlap(i.Overlap)}

	switch strings.ToLower(strings.TrimSpace(i.LengthUnit)) {
	case LengthUnitCharacters:
	case LengthUnitTokens:
		length, err := NewTokenLength(i.TokenEncoding)
		if err != nil {
			return ctx, err
		}
		opts = append(opts, WithLengthFunc(length))
	default:
		return ctx, fmt.Errorf("unsupported CHUNK_LENGTH_UNIT %q: expected %s or %s", i.LengthUnit, LengthUnitCharacters, LengthUnitTokens)
	}

	splitter, err := NewSplitter(opts...)
	if err != nil {
		return ctx, err
	}
	depend.Register[domain.TextChunker](splitter)
	return ctx, nil
}
