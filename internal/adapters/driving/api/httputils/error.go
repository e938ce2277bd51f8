// Package httputils holds JSON request and response helpers shared by
// the HTTP handlers.
package httputils

import (
	"errors"
	"net/http"

	"github.com/custodia-labs/distil/internal/core/domain"
)

// HTTPError is an error with a status code for the client.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// StatusFor maps domain errors to HTTP status codes.
func StatusFor(err error) int {
	var httpErr *HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, domain.ErrInvalidInputType), errors.Is(err, domain.ErrUnsupportedType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, domain.ErrInvalidParameter), errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// HandleError writes err as a JSON error body. Unexpected errors are
// reported without detail.
func HandleError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}
	_ = JSONError(w, status, message)
}
