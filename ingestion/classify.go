package ingestion

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// RecordType identifies which extractor and table a file routes to.
type RecordType string

const (
	TypePositions RecordType = "positions"
	TypeQuotes    RecordType = "quotes"
	TypeWorks     RecordType = "works"
	TypeArguments RecordType = "arguments"
	TypeChunks    RecordType = "chunks"
)

// ErrInvalidFilename marks a filename without the AUTHOR_ prefix convention.
var ErrInvalidFilename = errors.New("invalid filename format")

// Classification carries what the filename alone tells us about a file.
type Classification struct {
	Thinker string
	Type    RecordType
}

// Classify derives the thinker and record type from a filename following the
// AUTHOR_marker convention (e.g. kant_positions_1.txt). The thinker is the
// lowercased segment before the first underscore. Marker matching is a
// case-insensitive substring check against the whole filename, in priority
// order; anything unrecognized falls back to generic chunking.
func Classify(filename string) (Classification, error) {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	idx := strings.Index(name, "_")
	if idx < 0 {
		return Classification{}, fmt.Errorf("%w: %s (expected AUTHOR_Title.txt)", ErrInvalidFilename, filename)
	}

	lower := strings.ToLower(filename)
	recordType := TypeChunks
	switch {
	case strings.Contains(lower, "_positions_"):
		recordType = TypePositions
	case strings.Contains(lower, "_quotes_"):
		recordType = TypeQuotes
	case strings.Contains(lower, "_works_"):
		recordType = TypeWorks
	case strings.Contains(lower, "_arguments_"):
		recordType = TypeArguments
	}

	return Classification{
		Thinker: strings.ToLower(name[:idx]),
		Type:    recordType,
	}, nil
}
