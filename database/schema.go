package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureCorpusSchema creates the five corpus tables when they do not exist.
// The thinker column on arguments is nullable: an argument block without an
// author line is stored with a NULL thinker.
func EnsureCorpusSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS positions (
			id UUID PRIMARY KEY,
			thinker TEXT NOT NULL,
			position_text TEXT NOT NULL,
			topic TEXT,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS quotes (
			id UUID PRIMARY KEY,
			thinker TEXT NOT NULL,
			quote_text TEXT NOT NULL,
			topic TEXT,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS arguments (
			id UUID PRIMARY KEY,
			thinker TEXT,
			argument_type TEXT NOT NULL,
			premises TEXT NOT NULL,
			conclusion TEXT NOT NULL,
			topic TEXT,
			importance INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS text_chunks (
			id UUID PRIMARY KEY,
			thinker TEXT NOT NULL,
			source_file TEXT NOT NULL,
			chunk_text TEXT NOT NULL,
			chunk_index INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS texts (
			id UUID PRIMARY KEY,
			thinker TEXT NOT NULL,
			title TEXT NOT NULL,
			source_file TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		"CREATE INDEX IF NOT EXISTS idx_positions_thinker ON positions(thinker)",
		"CREATE INDEX IF NOT EXISTS idx_quotes_thinker ON quotes(thinker)",
		"CREATE INDEX IF NOT EXISTS idx_arguments_thinker ON arguments(thinker)",
		"CREATE INDEX IF NOT EXISTS idx_text_chunks_source ON text_chunks(source_file, chunk_index)",
		"CREATE INDEX IF NOT EXISTS idx_texts_thinker ON texts(thinker)",
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("execute schema statement: %w", err)
		}
	}

	return nil
}

// CorpusTables lists every table EnsureCorpusSchema manages, in truncation order.
var CorpusTables = []string{"positions", "quotes", "arguments", "text_chunks", "texts"}
