package ingestion

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const (
	// pipeDelimiter is the exact field separator for positions/quotes files.
	// A bare "|" without surrounding spaces does not qualify.
	pipeDelimiter = " | "

	defaultImportance = 5
)

// PipeEntry is one raw line of a pipe-delimited file: thinker | content | topic.
// Thinker may be empty when the line omits it; the dispatcher falls back to
// the filename-derived author in that case. Topic is nil when the line has
// only two fields.
type PipeEntry struct {
	Thinker string
	Content string
	Topic   *string
}

// ExtractPipeDelimited walks the text line by line and keeps every trimmed,
// non-empty line containing the " | " delimiter. Output order matches line
// order. Fields beyond the third are dropped.
func ExtractPipeDelimited(text string) []PipeEntry {
	var entries []PipeEntry
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, pipeDelimiter) {
			continue
		}

		parts := strings.Split(line, pipeDelimiter)
		if len(parts) < 2 {
			continue
		}

		entry := PipeEntry{
			Thinker: strings.TrimSpace(parts[0]),
			Content: strings.TrimSpace(parts[1]),
		}
		if len(parts) >= 3 {
			topic := strings.TrimSpace(parts[2])
			entry.Topic = &topic
		}
		entries = append(entries, entry)
	}
	return entries
}

// Argument files are markdown documents of the form:
//
//	### Argument N (type)
//	**Author:** name
//	**Premises:**
//	- premise 1
//	- premise 2
//	**→ Conclusion:** conclusion text
//	*Source: topic | Importance: N/10*
var (
	argHeaderRe     = regexp.MustCompile(`###\s*Argument\s+\d+\s*\(([^)]+)\)`)
	argAuthorRe     = regexp.MustCompile(`\*\*Author:\*\*\s*([\p{L}\p{N}_]+)`)
	argPremisesRe   = regexp.MustCompile(`(?s)\*\*Premises:\*\*(.*?)(?:\*\*→|$)`)
	premiseLineRe   = regexp.MustCompile(`(?m)^-\s*(.+)$`)
	argConclusionRe = regexp.MustCompile(`(?s)\*\*→\s*Conclusion:\*\*\s*(.+?)(?:\n\n|\*Source|$)`)
	argSourceRe     = regexp.MustCompile(`\*Source:\s*([^|]+)`)
	argImportanceRe = regexp.MustCompile(`Importance:\s*(\d+)/10`)
)

// ExtractArguments splits the document on "### Argument N (type)" headers and
// parses each block independently; text before the first header is discarded.
// Blocks missing premises or a conclusion are skipped, not errors. All field
// searches are local to the block, and a missing terminator lets a span run
// to the end of the block.
func ExtractArguments(text string) []ArgumentRecord {
	headers := argHeaderRe.FindAllStringSubmatchIndex(text, -1)
	var records []ArgumentRecord

	for i, header := range headers {
		argType := strings.ToLower(strings.TrimSpace(text[header[2]:header[3]]))
		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		block := text[header[1]:end]

		var thinker *string
		if m := argAuthorRe.FindStringSubmatch(block); m != nil {
			author := strings.ToLower(m[1])
			thinker = &author
		}

		var premises []string
		if m := argPremisesRe.FindStringSubmatch(block); m != nil {
			for _, line := range premiseLineRe.FindAllStringSubmatch(m[1], -1) {
				if p := strings.TrimSpace(line[1]); p != "" {
					premises = append(premises, p)
				}
			}
		}

		conclusion := ""
		if m := argConclusionRe.FindStringSubmatch(block); m != nil {
			conclusion = strings.TrimSpace(m[1])
		}

		var topic *string
		if m := argSourceRe.FindStringSubmatch(block); m != nil {
			t := strings.TrimSpace(m[1])
			topic = &t
		}

		importance := defaultImportance
		if m := argImportanceRe.FindStringSubmatch(block); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil {
				importance = v
			}
		}

		if len(premises) == 0 || conclusion == "" {
			continue
		}

		records = append(records, ArgumentRecord{
			Thinker:      thinker,
			ArgumentType: argType,
			Premises:     premises,
			Conclusion:   conclusion,
			Topic:        topic,
			Importance:   importance,
		})
	}

	return records
}

// ChunkText slices the text into overlapping fixed-size windows: window i
// starts at rune offset i*(size-overlap) and spans up to size runes. Windows
// are trimmed and empty ones dropped.
func ChunkText(text string, size, overlap int) []string {
	if overlap >= size {
		panic("chunk overlap must be smaller than chunk size")
	}

	runes := []rune(text)
	step := size - overlap
	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		if chunk := strings.TrimSpace(string(runes[start:end])); chunk != "" {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}

// ExtractWork wraps the whole file content in a single record. The title
// comes from the filename tokens after the author and type marker, with
// purely numeric tokens removed; when nothing remains the filename sans
// extension is used.
func ExtractWork(thinker, filename, content string) WorkRecord {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	parts := strings.Split(name, "_")

	var titleParts []string
	if len(parts) > 2 {
		for _, p := range parts[2:] {
			if !isNumeric(p) {
				titleParts = append(titleParts, p)
			}
		}
	}

	title := name
	if len(titleParts) > 0 {
		title = strings.Join(titleParts, " ")
	}

	return WorkRecord{
		Thinker:    thinker,
		Title:      title,
		SourceFile: filename,
		Content:    content,
	}
}

// ChunkSourceName derives the source_file value stored with text chunks: the
// filename sans extension with the author segment stripped.
func ChunkSourceName(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	if _, rest, ok := strings.Cut(name, "_"); ok {
		return rest
	}
	return name
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
