package domain

import "time"

// Document is normalised text ready for analysis.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// SourceID identifies the source that produced this document.
	SourceID string

	// URI is the original location.
	URI string

	// Title is the human-readable title.
	Title string

	// Content is the plain text after normalisation.
	Content string

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// LoadedAt is when the document was read.
	LoadedAt time.Time
}
