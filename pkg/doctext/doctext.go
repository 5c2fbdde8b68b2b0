// Package doctext extracts plain text from uploaded documents. Binary
// formats (PDF, images) are out of scope here; uploads are expected to be
// text documents.
package doctext

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	contractx "github.com/viliokaized/prime-intake/agent/contract"
)

var supportedExtensions = map[string]bool{
	".txt": true,
	".md":  true,
	".csv": true,
}

// Extractor implements contract.TextExtractor for plain-text documents.
type Extractor struct{}

var _ contractx.TextExtractor = Extractor{}

func (Extractor) ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !supportedExtensions[ext] {
		return "", fmt.Errorf("unsupported document type %q", ext)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("document %q is not valid text", filename)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("document %q contains no text", filename)
	}
	return text, nil
}
