// Package gutenberg provides the source book: it downloads the Project
// Gutenberg text once, caches it on disk and segments it into chapters.
package gutenberg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// BookSource implements domain.BookSource over a cached Gutenberg text file.
type BookSource struct {
	path   string
	url    string
	http   *http.Client
	logger *log.Logger
}

// NewBookSource creates a BookSource caching the book at path and downloading it from url when missing.
func NewBookSource(path, url string, httpClient *http.Client, logger *log.Logger) BookSource {
	return BookSource{
		path:   path,
		url:    url,
		http:   httpClient,
		logger: logger,
	}
}

// Path returns the cache file location.
func (s BookSource) Path() string {
	return s.path
}

// LoadSections implements domain.BookSource.
func (s BookSource) LoadSections(ctx context.Context) ([]domain.Section, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("book.path", s.path),
	))
	defer span.End()

	raw, err := s.readOrDownload(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	sections := SplitChapters(CleanText(raw))
	if len(sections) == 0 {
		err := fmt.Errorf("no chapters found in %s", s.path)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("book.sections", len(sections)))
	s.logger.Printf("BookSource: loaded %d chapters from %s", len(sections), s.path)
	return sections, nil
}

func (s BookSource) readOrDownload(ctx context.Context) (string, error) {
	b, err := os.ReadFile(s.path)
	if err == nil && len(b) > 0 {
		return string(b), nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("read book: %w", err)
	}

	s.logger.Printf("BookSource: downloading book from %s", s.url)
	b, err = s.download(ctx)
	if err != nil {
		return "", err
	}
	if err := writeFileAtomic(s.path, b); err != nil {
		return "", err
	}
	s.logger.Printf("BookSource: book cached at %s (%d bytes)", s.path, len(b))
	return string(b), nil
}

func (s BookSource) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download book: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download book: unexpected status %s", resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read book body: %w", err)
	}
	if len(b) == 0 {
		return nil, errors.New("download book: empty body")
	}
	return b, nil
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create book directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write book: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("move book into place: %w", err)
	}
	return nil
}

// InitBookSource registers the Gutenberg backed domain.BookSource.
type InitBookSource struct {
	HttpClient *http.Client `resolve:""`
	Logger     *log.Logger  `resolve:""`
	Path       string       `config:"BOOK_PATH" default:"data/innocents_abroad_raw.txt"`
	URL        string       `config:"BOOK_URL" default:"https://www.gutenberg.org/cache/epub/3176/pg3176.txt"`
}

// Initialize registers the book source in the dependency container.
func (i InitBookSource) Initialize(ctx context.Context) (context.Context, error) {
	source := NewBookSource(i.Path, i.URL, i.HttpClient, i.Logger)
	depend.Register[domain.BookSource](source)
	depend.Register(source)
	return ctx, nil
}
