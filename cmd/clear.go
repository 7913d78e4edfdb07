package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/philobase/corpus-ingest/config"
	"github.com/philobase/corpus-ingest/database"
)

var flagClearConfirmed bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all ingested corpus data from Postgres",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.New(os.Stdout, "", log.LstdFlags)

		if !flagClearConfirmed {
			fmt.Print("This will permanently delete all ingested corpus data. Continue? [y/N]: ")
			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("read confirmation: %w", err)
				}
				logger.Println("clear aborted")
				return nil
			}
			answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
			if answer != "y" && answer != "yes" {
				logger.Println("clear aborted")
				return nil
			}
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		pool, err := database.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()

		stmt := "TRUNCATE " + strings.Join(database.CorpusTables, ", ")
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("truncate corpus tables: %w", err)
		}

		logger.Println("corpus data removed")
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVar(&flagClearConfirmed, "confirm", false, "skip confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}
