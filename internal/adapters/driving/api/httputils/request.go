package httputils

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/custodia-labs/distil/internal/core/domain"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 10 << 20

// DecodeJSON decodes the request body into v. The request must declare
// an application/json content type.
func DecodeJSON(r *http.Request, v any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return &HTTPError{
			Code:    http.StatusUnsupportedMediaType,
			Message: "Content-Type must be application/json",
		}
	}

	if err := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxBodyBytes)).Decode(v); err != nil {
		return &HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid JSON payload: " + err.Error(),
		}
	}
	return nil
}

// TextField extracts a JSON string from raw. Any other JSON type,
// including null or a missing field, returns ErrInvalidInputType.
func TextField(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || raw[0] != '"' {
		return "", fmt.Errorf("text must be a string: %w", domain.ErrInvalidInputType)
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return "", fmt.Errorf("text must be a string: %w", domain.ErrInvalidInputType)
	}
	return text, nil
}
