package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaultIngestDir(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/corpus?sslmode=disable")
	t.Setenv("INGEST_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/corpus?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "data/ingest", cfg.IngestDir)
}

func TestLoadIngestDirOverride(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/corpus?sslmode=disable")
	t.Setenv("INGEST_DIR", "/srv/drop")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/drop", cfg.IngestDir)
}
