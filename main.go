package main

import "github.com/philobase/corpus-ingest/cmd"

func main() {
	cmd.Execute()
}
