// Package chunker splits book sections into overlapping, contiguous chunks
// sized for embedding.
package chunker

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/pkoukk/tiktoken-go"
)

const (
	DefaultMaxLength = 1000
	DefaultOverlap   = 200
)

// defaultSeparators are tried in order; the empty separator cuts between runes.
var defaultSeparators = []string{"\n\n", "\n", " ", ""}

// LengthFunc measures a piece of text in the unit chunk sizes are expressed in.
type LengthFunc func(string) int

// Characters measures text in runes.
func Characters(text string) int {
	return utf8.RuneCountInString(text)
}

// NewTokenLength returns a LengthFunc counting tokens of the given tiktoken encoding,
// e.g. "cl100k_base".
func NewTokenLength(encoding string) (LengthFunc, error) {
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %q: %w", encoding, err)
	}
	return func(text string) int {
		return len(enc.Encode(text, nil, nil))
	}, nil
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithMaxLength sets the maximum chunk length.
func WithMaxLength(n int) Option {
	return func(s *Splitter) { s.maxLength = n }
}

// WithOverlap sets how much trailing text of a chunk is repeated at the start of the next one.
func WithOverlap(n int) Option {
	return func(s *Splitter) { s.overlap = n }
}

// WithLengthFunc sets the length measure. Defaults to Characters.
func WithLengthFunc(fn LengthFunc) Option {
	return func(s *Splitter) { s.length = fn }
}

// Splitter is a recursive separator-based text splitter. Paragraph breaks are
// preferred over line breaks, line breaks over spaces, and a hard cut is the
// last resort.
type Splitter struct {
	maxLength  int
	overlap    int
	length     LengthFunc
	separators []string
}

// NewSplitter creates a Splitter. It fails with a ValidationErr when maxLength is not
// positive, overlap is negative or overlap is not smaller than maxLength.
func NewSplitter(opts ...Option) (*Splitter, error) {
	s := &Splitter{
		maxLength:  DefaultMaxLength,
		overlap:    DefaultOverlap,
		length:     Characters,
		separators: defaultSeparators,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.maxLength <= 0 {
		return nil, domain.NewValidationErr("max chunk length must be greater than 0")
	}
	if s.overlap < 0 {
		return nil, domain.NewValidationErr("chunk overlap cannot be negative")
	}
	if s.overlap >= s.maxLength {
		return nil, domain.NewValidationErr(fmt.Sprintf(
			"chunk overlap (%d) must be smaller than max chunk length (%d)", s.overlap, s.maxLength,
		))
	}
	if s.length == nil {
		s.length = Characters
	}
	return s, nil
}

// Chunk splits every section and assigns chunk ids from a single counter, so ids
// are unique and continuous across the whole document.
func (s *Splitter) Chunk(sections []domain.Section) ([]domain.Chunk, error) {
	var (
		chunks []domain.Chunk
		nextID int
	)
	for _, section := range sections {
		pieces := s.Split(section.Text)
		for pos, text := range pieces {
			chunks = append(chunks, domain.Chunk{
				ID:                nextID,
				Text:              text,
				SectionLabel:      section.Label,
				SectionTitle:      section.Title,
				PositionInSection: pos,
				SectionChunkCount: len(pieces),
			})
			nextID++
		}
	}
	return chunks, nil
}

// Split splits one text. Blank text yields no chunks and text within the limit
// yields exactly one.
func (s *Splitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if s.length(text) <= s.maxLength {
		return []string{text}
	}
	return s.merge(s.atoms(text, s.separators))
}

// atoms breaks text into pieces no longer than maxLength, using the coarsest
// separator present and recursing with finer ones on pieces that are still too long.
func (s *Splitter) atoms(text string, separators []string) []string {
	sepIdx := len(separators) - 1
	for i, sep := range separators {
		if sep == "" || strings.Contains(text, sep) {
			sepIdx = i
			break
		}
	}
	finer := separators[sepIdx+1:]

	var out []string
	for _, piece := range splitKeepingSeparator(text, separators[sepIdx]) {
		if len(finer) == 0 || s.length(piece) <= s.maxLength {
			out = append(out, piece)
			continue
		}
		out = append(out, s.atoms(piece, finer)...)
	}
	return out
}

// merge packs consecutive pieces into chunks of at most maxLength. After a chunk
// is emitted, the longest run of trailing pieces not exceeding overlap is carried
// into the next chunk.
func (s *Splitter) merge(pieces []string) []string {
	var (
		chunks []string
		window []string
		total  int
	)
	for _, piece := range pieces {
		n := s.length(piece)
		if total+n > s.maxLength && len(window) > 0 {
			chunks = appendNonBlank(chunks, window)
			for len(window) > 0 && (total > s.overlap || total+n > s.maxLength) {
				total -= s.length(window[0])
				window = window[1:]
			}
		}
		window = append(window, piece)
		total += n
	}
	if len(window) > 0 {
		chunks = appendNonBlank(chunks, window)
	}
	return chunks
}

// appendNonBlank joins the window and appends it unless it holds only whitespace.
func appendNonBlank(chunks, window []string) []string {
	joined := strings.Join(window, "")
	if strings.TrimSpace(joined) == "" {
		return chunks
	}
	return append(chunks, joined)
}

// splitKeepingSeparator splits text after each separator so that concatenating
// the pieces restores the input. The empty separator yields single runes.
func splitKeepingSeparator(text, sep string) []string {
	if sep == "" {
		pieces := make([]string, 0, utf8.RuneCountInString(text))
		for _, r := range text {
			pieces = append(pieces, string(r))
		}
		return pieces
	}
	parts := strings.SplitAfter(text, sep)
	pieces := parts[:0]
	for _, p := range parts {
		if p != "" {
			pieces = append(pieces, p)
		}
	}
	return pieces
}
