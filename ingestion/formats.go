// Package ingestion turns files dropped in the ingest folder into typed
// corpus records and persists them, one transaction per file.
package ingestion

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// PayloadFormat enumerates supported source payload formats.
type PayloadFormat string

const (
	// FormatText represents plain text payloads, stored verbatim.
	FormatText PayloadFormat = "text"
	// FormatPDF represents PDF payloads, decoded to plain text before extraction.
	FormatPDF PayloadFormat = "pdf"
)

// DetectFormat infers the payload format from the path's extension.
func DetectFormat(path string) PayloadFormat {
	if strings.ToLower(filepath.Ext(path)) == ".pdf" {
		return FormatPDF
	}
	return FormatText
}

// DecodePayload converts raw file bytes into the text the extractors run on.
// Text files pass through untouched; PDFs are reduced to normalized plain text.
func DecodePayload(path string, data []byte) (string, error) {
	if DetectFormat(path) != FormatPDF {
		return string(data), nil
	}

	reader := bytes.NewReader(data)
	doc, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	plain, err := doc.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	buf := &bytes.Buffer{}
	if _, err := io.Copy(buf, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	return normalizePlainText(buf.String()), nil
}

func normalizePlainText(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
