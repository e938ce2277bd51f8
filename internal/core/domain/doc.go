// Package domain defines the core business entities for distil.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ScoredTerm: A ranked keyword
//   - Sentence: A segment of a document with its position
//   - Summary: An extractive summary and its word counts
//   - TextStats: Word, sentence and timing counts
//   - Document / RawDocument: Text before and after normalisation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
