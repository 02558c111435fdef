package vectorindex

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/common"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	_ "modernc.org/sqlite"
)

const (
	formatVersion = "1"
	insertBatch   = 200

	// unitTolerance bounds how far a stored vector norm may drift from 1.
	unitTolerance = 1e-6
)

var schema = []string{
	`CREATE TABLE index_meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE TABLE index_entries (
		chunk_id            INTEGER PRIMARY KEY,
		section_label       TEXT    NOT NULL,
		section_title       TEXT    NOT NULL,
		position_in_section INTEGER NOT NULL,
		section_chunk_count INTEGER NOT NULL,
		text                TEXT    NOT NULL,
		vector              BLOB    NOT NULL
	)`,
}

var entryFields = []string{
	"chunk_id",
	"section_label",
	"section_title",
	"position_in_section",
	"section_chunk_count",
	"text",
	"vector",
}

// Save writes the index to path as a SQLite database. The file is written next to
// the destination and renamed into place, so readers never observe a partial file.
func Save(ctx context.Context, idx *Index, path string) (err error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("path", path),
		attribute.Int("entries", idx.Len()),
	))
	defer span.End()
	defer func() { telemetry.RecordErrorAndStatus(span, err) }()

	if idx == nil {
		return domain.ErrIndexNotInitialized
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create index directory: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.Remove(tmp); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove stale temp index: %w", err)
	}

	if err := writeIndex(spanCtx, idx, tmp); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("move index into place: %w", err)
	}
	return nil
}

func writeIndex(ctx context.Context, idx *Index, path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open index file: %w", err)
	}
	defer db.Close() //nolint:errcheck

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin index write: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create index schema: %w", err)
		}
	}

	sb := squirrel.StatementBuilder.RunWith(tx)

	meta := sb.Insert("index_meta").Columns("key", "value").
		Values("format_version", formatVersion).
		Values("dimension", strconv.Itoa(idx.Dimension())).
		Values("entry_count", strconv.Itoa(idx.Len())).
		Values("embedding_model", idx.Model())
	if _, err := meta.ExecContext(ctx); err != nil {
		return fmt.Errorf("write index metadata: %w", err)
	}

	for start := 0; start < len(idx.entries); start += insertBatch {
		end := min(start+insertBatch, len(idx.entries))
		insert := sb.Insert("index_entries").Columns(entryFields...)
		for _, e := range idx.entries[start:end] {
			insert = insert.Values(
				e.chunk.ID,
				e.chunk.SectionLabel,
				e.chunk.SectionTitle,
				e.chunk.PositionInSection,
				e.chunk.SectionChunkCount,
				e.chunk.Text,
				encodeVector(e.vector),
			)
		}
		if _, err := insert.ExecContext(ctx); err != nil {
			return fmt.Errorf("write index entries: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit index write: %w", err)
	}
	return nil
}

// Load reads an index written by Save. A missing, unreadable or inconsistent file
// yields an error wrapping ErrIndexUnavailable.
func Load(ctx context.Context, path string) (idx *Index, err error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("path", path),
	))
	defer span.End()
	defer func() { telemetry.RecordErrorAndStatus(span, err) }()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexUnavailable, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrIndexUnavailable, path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexUnavailable, err)
	}
	defer db.Close() //nolint:errcheck

	idx, err = readIndex(spanCtx, db)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexUnavailable, err)
	}
	return idx, nil
}

func readIndex(ctx context.Context, db *sql.DB) (*Index, error) {
	sb := squirrel.StatementBuilder.RunWith(db)

	rows, err := sb.Select("key", "value").From("index_meta").QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("read index metadata: %w", err)
	}
	meta := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			rows.Close() //nolint:errcheck
			return nil, fmt.Errorf("scan index metadata: %w", err)
		}
		meta[key] = value
	}
	if err := rows.Err(); err != nil {
		rows.Close() //nolint:errcheck
		return nil, fmt.Errorf("read index metadata: %w", err)
	}
	rows.Close() //nolint:errcheck

	if v := meta["format_version"]; v != formatVersion {
		return nil, fmt.Errorf("unsupported index format version %q", v)
	}
	dimension, err := strconv.Atoi(meta["dimension"])
	if err != nil || dimension < 0 {
		return nil, fmt.Errorf("invalid index dimension %q", meta["dimension"])
	}
	count, err := strconv.Atoi(meta["entry_count"])
	if err != nil || count < 0 {
		return nil, fmt.Errorf("invalid index entry count %q", meta["entry_count"])
	}
	if count > 0 && dimension == 0 {
		return nil, fmt.Errorf("index declares %d entries with dimension 0", count)
	}

	rows, err = sb.Select(entryFields...).From("index_entries").OrderBy("chunk_id").QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("read index entries: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	entries := make([]entry, 0, count)
	for rows.Next() {
		var (
			e    entry
			blob []byte
		)
		if err := rows.Scan(
			&e.chunk.ID,
			&e.chunk.SectionLabel,
			&e.chunk.SectionTitle,
			&e.chunk.PositionInSection,
			&e.chunk.SectionChunkCount,
			&e.chunk.Text,
			&blob,
		); err != nil {
			return nil, fmt.Errorf("scan index entry: %w", err)
		}
		if e.vector, err = decodeVector(blob, dimension); err != nil {
			return nil, fmt.Errorf("chunk %d: %w", e.chunk.ID, err)
		}
		if norm := math.Sqrt(common.Dot(e.vector, e.vector)); math.Abs(norm-1) > unitTolerance {
			return nil, fmt.Errorf("chunk %d: stored vector norm %g is not unit length", e.chunk.ID, norm)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read index entries: %w", err)
	}
	if len(entries) != count {
		return nil, fmt.Errorf("index holds %d entries, metadata declares %d", len(entries), count)
	}

	return newIndex(meta["embedding_model"], entries)
}
