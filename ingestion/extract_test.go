package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPipeDelimited(t *testing.T) {
	text := "immanuel | duty is categorical | ethics\n" +
		"\n" +
		"   \n" +
		"hume | causation is habit\n" +
		"no delimiter on this line\n" +
		"almost|but|not|spaced\n"

	entries := ExtractPipeDelimited(text)
	require.Len(t, entries, 2)

	assert.Equal(t, "immanuel", entries[0].Thinker)
	assert.Equal(t, "duty is categorical", entries[0].Content)
	require.NotNil(t, entries[0].Topic)
	assert.Equal(t, "ethics", *entries[0].Topic)

	assert.Equal(t, "hume", entries[1].Thinker)
	assert.Equal(t, "causation is habit", entries[1].Content)
	assert.Nil(t, entries[1].Topic)
}

func TestExtractPipeDelimitedDropsExtraFields(t *testing.T) {
	entries := ExtractPipeDelimited("hume | the self is a bundle | metaphysics | ignored")
	require.Len(t, entries, 1)
	assert.Equal(t, "hume", entries[0].Thinker)
	assert.Equal(t, "the self is a bundle", entries[0].Content)
	require.NotNil(t, entries[0].Topic)
	assert.Equal(t, "metaphysics", *entries[0].Topic)
}

const wellFormedArgument = `# Collected arguments

Preamble text that should be discarded.

### Argument 1 (deductive)
**Author:** Kant
**Premises:**
- All men are mortal
- Socrates is a man
**→ Conclusion:** Socrates is mortal
*Source: logic | Importance: 7/10*
`

func TestExtractArgumentsWellFormed(t *testing.T) {
	records := ExtractArguments(wellFormedArgument)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "deductive", rec.ArgumentType)
	require.NotNil(t, rec.Thinker)
	assert.Equal(t, "kant", *rec.Thinker)
	require.Len(t, rec.Premises, 2)
	assert.Equal(t, "All men are mortal", rec.Premises[0])
	assert.Equal(t, "Socrates is a man", rec.Premises[1])
	assert.Equal(t, "Socrates is mortal", rec.Conclusion)
	require.NotNil(t, rec.Topic)
	assert.Equal(t, "logic", *rec.Topic)
	assert.Equal(t, 7, rec.Importance)
}

func TestExtractArgumentsDefaults(t *testing.T) {
	text := `### Argument 2 (inductive)
**Premises:**
- The sun rose every day so far
**→ Conclusion:** The sun will rise tomorrow
`

	records := ExtractArguments(text)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Nil(t, rec.Thinker)
	assert.Nil(t, rec.Topic)
	assert.Equal(t, 5, rec.Importance)
}

func TestExtractArgumentsUnicodeAuthor(t *testing.T) {
	text := `### Argument 1 (deductive)
**Author:** Gödel
**Premises:**
- Any consistent formal system is incomplete
**→ Conclusion:** Arithmetic truth outruns provability
`

	records := ExtractArguments(text)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].Thinker)
	assert.Equal(t, "gödel", *records[0].Thinker)
}

func TestExtractArgumentsDropsIncompleteBlocks(t *testing.T) {
	text := `### Argument 1 (deductive)
**Author:** Hume
**Premises:**
**→ Conclusion:** conclusion without premises

### Argument 2 (abductive)
**Author:** Peirce
**Premises:**
- The lawn is wet

### Argument 3 (deductive)
**Premises:**
- Valid premise
**→ Conclusion:** Valid conclusion
`

	records := ExtractArguments(text)
	require.Len(t, records, 1)
	assert.Equal(t, "Valid conclusion", records[0].Conclusion)
}

func TestExtractArgumentsIgnoresHeaderlessText(t *testing.T) {
	assert.Empty(t, ExtractArguments("No argument headers here.\n- just a list\n"))
}

func TestChunkTextWindows(t *testing.T) {
	text := strings.Repeat("0123456789", 250) // 2500 characters
	chunks := ChunkText(text, 1000, 100)
	require.Len(t, chunks, 3)

	assert.Equal(t, text[0:1000], chunks[0])
	assert.Equal(t, text[900:1900], chunks[1])
	assert.Equal(t, text[1800:2500], chunks[2])

	// Consecutive windows overlap by exactly 100 characters.
	assert.Equal(t, chunks[0][900:], chunks[1][:100])
}

func TestChunkTextDropsWhitespaceWindows(t *testing.T) {
	assert.Empty(t, ChunkText(strings.Repeat(" ", 50), 20, 5))
}

func TestChunkTextGuardsOverlap(t *testing.T) {
	assert.Panics(t, func() { ChunkText("abc", 100, 100) })
}

func TestExtractWorkTitle(t *testing.T) {
	work := ExtractWork("kant", "kant_works_3_critique_of_pure_reason.txt", "full text")
	assert.Equal(t, "kant", work.Thinker)
	assert.Equal(t, "critique of pure reason", work.Title)
	assert.Equal(t, "kant_works_3_critique_of_pure_reason.txt", work.SourceFile)
	assert.Equal(t, "full text", work.Content)
}

func TestExtractWorkTitleFallback(t *testing.T) {
	work := ExtractWork("kant", "kant_works_2.txt", "body")
	assert.Equal(t, "kant_works_2", work.Title)
}

func TestChunkSourceName(t *testing.T) {
	assert.Equal(t, "lectures_on_history", ChunkSourceName("hegel_lectures_on_history.txt"))
}
