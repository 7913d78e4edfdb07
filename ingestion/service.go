package ingestion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/philobase/corpus-ingest/database"
)

const (
	defaultChunkSize    = 1000
	defaultChunkOverlap = 100
)

// Service runs one ingest pass over a directory. It owns no connection
// lifecycle: the pool is shared across files, the transaction is per file.
type Service struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewService(pool *pgxpool.Pool, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}

	return &Service{
		pool:   pool,
		logger: logger,
	}
}

// IngestDirectory processes every underscore-named file in dir, sequentially.
// A failure in one file rolls back that file's transaction and leaves the
// file on disk; the batch continues. A file is deleted only after its
// transaction committed.
func (s *Service) IngestDirectory(ctx context.Context, dir string) error {
	if _, err := os.Stat(dir); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("ingest directory: %w", err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create ingest directory: %w", err)
		}
		s.logger.Printf("created ingest folder %s, drop files there and run again", dir)
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("list ingest directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.Contains(entry.Name(), "_") {
			continue
		}
		names = append(names, entry.Name())
	}

	if len(names) == 0 {
		s.logger.Printf("no files found in %s", dir)
		return nil
	}

	s.logger.Printf("found %d file(s) to process", len(names))

	if err := database.EnsureCorpusSchema(ctx, s.pool); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	for _, name := range names {
		inserted, err := s.ingestFile(ctx, dir, name)
		if err != nil {
			s.logger.Printf("ingest failed for %s: %v", name, err)
			continue
		}
		s.logger.Printf("ingested %s (%d records)", name, inserted)
	}

	return nil
}

func (s *Service) ingestFile(ctx context.Context, dir, name string) (inserted int, err error) {
	path := filepath.Join(dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read file: %w", err)
	}

	class, err := Classify(name)
	if err != nil {
		return 0, err
	}
	s.logger.Printf("processing %s as %s (thinker %s)", name, class.Type, class.Thinker)

	text, err := DecodePayload(name, data)
	if err != nil {
		return 0, err
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			s.logger.Printf("rollback error: %v", rbErr)
		}
	}()

	switch class.Type {
	case TypePositions:
		entries := ExtractPipeDelimited(text)
		for _, entry := range entries {
			rec := PositionRecord{Thinker: entry.Thinker, Text: entry.Content, Topic: entry.Topic}
			if rec.Thinker == "" {
				rec.Thinker = class.Thinker
			}
			if err = insertPosition(ctx, tx, rec); err != nil {
				return 0, err
			}
		}
		inserted = len(entries)

	case TypeQuotes:
		entries := ExtractPipeDelimited(text)
		for _, entry := range entries {
			rec := QuoteRecord{Thinker: entry.Thinker, Text: entry.Content, Topic: entry.Topic}
			if rec.Thinker == "" {
				rec.Thinker = class.Thinker
			}
			if err = insertQuote(ctx, tx, rec); err != nil {
				return 0, err
			}
		}
		inserted = len(entries)

	case TypeWorks:
		work := ExtractWork(class.Thinker, name, text)
		if err = insertWork(ctx, tx, work); err != nil {
			return 0, err
		}
		inserted = 1

	case TypeArguments:
		records := ExtractArguments(text)
		for _, rec := range records {
			if err = insertArgument(ctx, tx, rec); err != nil {
				return 0, err
			}
		}
		inserted = len(records)

	default:
		source := ChunkSourceName(name)
		chunks := ChunkText(text, defaultChunkSize, defaultChunkOverlap)
		for idx, chunk := range chunks {
			rec := TextChunk{Thinker: class.Thinker, SourceFile: source, Text: chunk, Index: idx}
			if err = insertChunk(ctx, tx, rec); err != nil {
				return 0, err
			}
		}
		inserted = len(chunks)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	committed = true

	if err = os.Remove(path); err != nil {
		return inserted, fmt.Errorf("delete source file: %w", err)
	}

	return inserted, nil
}

func insertPosition(ctx context.Context, tx pgx.Tx, rec PositionRecord) error {
	if _, err := tx.Exec(ctx, `
		INSERT INTO positions (id, thinker, position_text, topic, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.New(), rec.Thinker, rec.Text, rec.Topic, time.Now()); err != nil {
		return fmt.Errorf("insert position: %w", err)
	}
	return nil
}

func insertQuote(ctx context.Context, tx pgx.Tx, rec QuoteRecord) error {
	if _, err := tx.Exec(ctx, `
		INSERT INTO quotes (id, thinker, quote_text, topic, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.New(), rec.Thinker, rec.Text, rec.Topic, time.Now()); err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

func insertArgument(ctx context.Context, tx pgx.Tx, rec ArgumentRecord) error {
	premises, err := json.Marshal(rec.Premises)
	if err != nil {
		return fmt.Errorf("serialize premises: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO arguments (id, thinker, argument_type, premises, conclusion, topic, importance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, uuid.New(), rec.Thinker, rec.ArgumentType, string(premises), rec.Conclusion, rec.Topic, rec.Importance, time.Now()); err != nil {
		return fmt.Errorf("insert argument: %w", err)
	}
	return nil
}

func insertChunk(ctx context.Context, tx pgx.Tx, rec TextChunk) error {
	if _, err := tx.Exec(ctx, `
		INSERT INTO text_chunks (id, thinker, source_file, chunk_text, chunk_index, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.New(), rec.Thinker, rec.SourceFile, rec.Text, rec.Index, time.Now()); err != nil {
		return fmt.Errorf("insert chunk %d: %w", rec.Index, err)
	}
	return nil
}

func insertWork(ctx context.Context, tx pgx.Tx, rec WorkRecord) error {
	if _, err := tx.Exec(ctx, `
		INSERT INTO texts (id, thinker, title, source_file, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.New(), rec.Thinker, rec.Title, rec.SourceFile, rec.Content, time.Now()); err != nil {
		return fmt.Errorf("insert work: %w", err)
	}
	return nil
}
