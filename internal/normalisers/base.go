package normalisers

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/distil/internal/core/domain"
)

// NewDocument builds a document from raw with a fresh ID. The raw
// metadata is copied and extended with the MIME type and format.
func NewDocument(raw *domain.RawDocument, title, content, format string) domain.Document {
	metadata := CopyMetadata(raw.Metadata)
	if metadata == nil {
		metadata = make(map[string]any)
	}
	metadata["mime_type"] = raw.MIMEType
	if format != "" {
		metadata["format"] = format
	}

	return domain.Document{
		ID:       uuid.New().String(),
		SourceID: raw.SourceID,
		URI:      raw.URI,
		Title:    title,
		Content:  content,
		Metadata: metadata,
		LoadedAt: time.Now(),
	}
}

// TitleFromURI derives a human-readable title from a file name.
func TitleFromURI(uri string) string {
	filename := filepath.Base(uri)
	if filename == "." || filename == string(filepath.Separator) {
		return ""
	}
	filename = strings.TrimSuffix(filename, filepath.Ext(filename))
	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")
	return filename
}

// CopyMetadata creates a shallow copy of metadata.
func CopyMetadata(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// Terminate trims line and appends a full stop unless it already ends
// with a sentence terminator. Headings and list items go through here so
// the segmenter sees them as separate sentences.
func Terminate(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	switch line[len(line)-1] {
	case '.', '!', '?':
		return line
	}
	return line + "."
}
