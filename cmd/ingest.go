package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/philobase/corpus-ingest/config"
	"github.com/philobase/corpus-ingest/database"
	"github.com/philobase/corpus-ingest/ingestion"
)

var flagIngestDir string

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Scan the ingest folder once and persist every recognized file",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.New(os.Stdout, "", log.LstdFlags)

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		dir := cfg.IngestDir
		if flagIngestDir != "" {
			dir = flagIngestDir
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		pool, err := database.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()

		svc := ingestion.NewService(pool, logger)
		if err := svc.IngestDirectory(ctx, dir); err != nil {
			return err
		}

		logger.Println("Done.")
		return nil
	},
}

func init() {
	ingestCmd.Flags().StringVar(&flagIngestDir, "dir", "", "ingest folder (default $INGEST_DIR or data/ingest)")
	rootCmd.AddCommand(ingestCmd)
}
