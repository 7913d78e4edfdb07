package ingestion

// Typed record variants produced by the extractors. Optional fields are
// pointers so a missing topic (or author, for arguments) persists as NULL
// rather than an empty string.

type PositionRecord struct {
	Thinker string
	Text    string
	Topic   *string
}

type QuoteRecord struct {
	Thinker string
	Text    string
	Topic   *string
}

// ArgumentRecord keeps a nullable thinker: blocks without an author line are
// stored as-is, never backfilled from the filename.
type ArgumentRecord struct {
	Thinker      *string
	ArgumentType string
	Premises     []string
	Conclusion   string
	Topic        *string
	Importance   int
}

type TextChunk struct {
	Thinker    string
	SourceFile string
	Text       string
	Index      int
}

type WorkRecord struct {
	Thinker    string
	Title      string
	SourceFile string
	Content    string
}
