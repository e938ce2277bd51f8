package domain

// Report bundles every analysis of one text.
type Report struct {
	// DocumentID is set when the text came from a document.
	DocumentID string `json:"document_id,omitempty"`

	// URI is the document location, if any.
	URI string `json:"uri,omitempty"`

	Keywords []ScoredTerm `json:"keywords"`
	Summary  Summary      `json:"summary"`
	Stats    TextStats    `json:"stats"`
}

// WatchEvent reports one document change seen by watch mode.
type WatchEvent struct {
	Type ChangeType
	URI  string

	// Report is nil for deletions and failures.
	Report *Report

	// Err is set when the document could not be read or analysed.
	Err error
}
