package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInputType indicates the analysed value is not text.
	// Binary content and non-string JSON values map to this error.
	ErrInvalidInputType = errors.New("invalid input type")

	// ErrInvalidParameter indicates a count outside its documented range.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedType indicates no normaliser handles a MIME type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrSourceClosed indicates the document source has been closed.
	ErrSourceClosed = errors.New("source closed")

	// ErrConfigNotFound indicates a settings key has no value.
	ErrConfigNotFound = errors.New("config key not found")
)
