package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "corpus-ingest",
	Short: "Batch ETL for the philosophical corpus database",
	Long: "corpus-ingest scans the ingest folder once, parses each file by its\n" +
		"naming convention (author_positions_N.txt, author_quotes_N.txt,\n" +
		"author_works_N.txt, author_arguments_N.md, anything else is chunked),\n" +
		"stores the extracted records in Postgres and deletes ingested files.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
