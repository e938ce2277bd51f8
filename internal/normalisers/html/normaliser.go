package html

import (
	"context"
	"html"
	"regexp"
	"strings"

	"github.com/custodia-labs/distil/internal/core/domain"
	"github.com/custodia-labs/distil/internal/core/ports/driven"
	"github.com/custodia-labs/distil/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles HTML documents.
type Normaliser struct{}

// New creates a new HTML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser, higher than plaintext
}

// Normalise converts an HTML document to prose.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	rawContent := string(raw.Content)
	title := extractHTMLTitle(rawContent, raw.URI)

	return &driven.NormaliseResult{
		Document: normalisers.NewDocument(raw, title, Text(rawContent), "html"),
	}, nil
}

// Pre-compiled regular expressions for HTML parsing performance.
var (
	titleTag      = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	dropElements  = regexp.MustCompile(`(?is)<(script|style|noscript|head|svg|template)\b[^>]*>.*?</(script|style|noscript|head|svg|template)>`)
	htmlComments  = regexp.MustCompile(`(?s)<!--.*?-->`)
	sentenceBlock = regexp.MustCompile(`(?is)<(h[1-6]|li|dt|th|td|caption|figcaption)\b[^>]*>(.*?)</(h[1-6]|li|dt|th|td|caption|figcaption)>`)
	blockElements = regexp.MustCompile(`(?i)</?(p|div|br|hr|ul|ol|dl|dd|tr|table|blockquote|pre|section|article|header|footer|nav|main|aside)\b[^>]*/?>`)
	allTags       = regexp.MustCompile(`<[^>]+>`)
	multiSpaces   = regexp.MustCompile(`[ \t\r\f\v]+`)
)

// extractHTMLTitle returns the <title> text or a title derived from the
// file name.
func extractHTMLTitle(content, uri string) string {
	if matches := titleTag.FindStringSubmatch(content); len(matches) > 1 {
		title := strings.TrimSpace(html.UnescapeString(matches[1]))
		if title != "" {
			return title
		}
	}
	return normalisers.TitleFromURI(uri)
}

// Text removes markup from content and returns one block of prose per
// line. Headings, list items and table cells become sentences of their
// own.
func Text(content string) string {
	content = dropElements.ReplaceAllString(content, "")
	content = htmlComments.ReplaceAllString(content, "")

	content = sentenceBlock.ReplaceAllStringFunc(content, func(m string) string {
		inner := sentenceBlock.FindStringSubmatch(m)[2]
		inner = allTags.ReplaceAllString(inner, "")
		return "\n" + normalisers.Terminate(html.UnescapeString(inner)) + "\n"
	})

	content = blockElements.ReplaceAllString(content, "\n")
	content = allTags.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	content = multiSpaces.ReplaceAllString(content, " ")

	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}
