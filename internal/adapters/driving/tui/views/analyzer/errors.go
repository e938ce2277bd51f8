package analyzer

import "errors"

// Error definitions for the analyzer view.
var (
	// ErrNoAnalysisService indicates that no analysis service was provided.
	ErrNoAnalysisService = errors.New("analysis service is required")
)
