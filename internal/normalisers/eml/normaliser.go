package eml

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"

	"github.com/custodia-labs/distil/internal/core/domain"
	"github.com/custodia-labs/distil/internal/core/ports/driven"
	"github.com/custodia-labs/distil/internal/normalisers"
	"github.com/custodia-labs/distil/internal/normalisers/html"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles EML (email) documents.
type Normaliser struct{}

// New creates a new EML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"message/rfc822"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser
}

// Normalise extracts the subject and body of an email. Address headers
// go to metadata only so they do not surface as keywords.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	msg, err := mail.ReadMessage(bytes.NewReader(raw.Content))
	if err != nil {
		return nil, fmt.Errorf("parse email: %w", domain.ErrInvalidInput)
	}

	subject := decodeHeader(msg.Header.Get("Subject"))
	body, err := extractBody(msg.Header.Get("Content-Type"), msg.Body)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(body)
	if subject != "" {
		content = strings.TrimSpace(normalisers.Terminate(subject) + "\n\n" + content)
	}

	title := subject
	if title == "" {
		title = normalisers.TitleFromURI(raw.URI)
	}

	doc := normalisers.NewDocument(raw, title, content, "eml")
	for _, h := range []string{"From", "To", "Date"} {
		if v := decodeHeader(msg.Header.Get(h)); v != "" {
			doc.Metadata[strings.ToLower(h)] = v
		}
	}

	return &driven.NormaliseResult{Document: doc}, nil
}

// decodeHeader decodes RFC 2047 encoded headers.
func decodeHeader(header string) string {
	if header == "" {
		return ""
	}
	decoded, err := new(mime.WordDecoder).DecodeHeader(header)
	if err != nil {
		return header
	}
	return decoded
}

// extractBody returns the text of a message body with the given
// Content-Type. Plain text parts are preferred over HTML parts.
func extractBody(contentType string, body io.Reader) (string, error) {
	if contentType == "" {
		contentType = "text/plain"
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = "text/plain"
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		return extractMultipartBody(body, params["boundary"])
	}

	content, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read email body: %w", domain.ErrInvalidInput)
	}
	if mediaType == "text/html" {
		return html.Text(string(content)), nil
	}
	return string(content), nil
}

func extractMultipartBody(r io.Reader, boundary string) (string, error) {
	if boundary == "" {
		return "", nil
	}

	mr := multipart.NewReader(r, boundary)
	var textParts, htmlParts []string

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			break
		}

		mediaType, params, parseErr := mime.ParseMediaType(part.Header.Get("Content-Type"))
		if parseErr != nil {
			mediaType = "application/octet-stream"
		}

		content, readErr := io.ReadAll(part)
		part.Close()
		if readErr != nil {
			continue
		}

		switch {
		case mediaType == "text/plain":
			textParts = append(textParts, string(content))
		case mediaType == "text/html":
			htmlParts = append(htmlParts, html.Text(string(content)))
		case strings.HasPrefix(mediaType, "multipart/"):
			nested, nestedErr := extractMultipartBody(bytes.NewReader(content), params["boundary"])
			if nestedErr == nil && nested != "" {
				textParts = append(textParts, nested)
			}
		}
	}

	if len(textParts) > 0 {
		return strings.Join(textParts, "\n"), nil
	}
	return strings.Join(htmlParts, "\n"), nil
}
