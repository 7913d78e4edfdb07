package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const defaultIngestDir = "data/ingest"

type Config struct {
	DatabaseURL string
	IngestDir   string
}

// Load reads configuration from the environment, honoring a local .env file
// when present. A missing DATABASE_URL aborts the run before any file is touched.
func Load() (Config, error) {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return Config{}, fmt.Errorf("DATABASE_URL not found in environment variables")
	}

	return Config{
		DatabaseURL: dsn,
		IngestDir:   getEnv("INGEST_DIR", defaultIngestDir),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
