package markdown

import (
	"context"
	"regexp"
	"strings"

	"github.com/custodia-labs/distil/internal/core/domain"
	"github.com/custodia-labs/distil/internal/core/ports/driven"
	"github.com/custodia-labs/distil/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles Markdown documents.
type Normaliser struct{}

// New creates a new Markdown normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/markdown", "text/x-markdown"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser, higher than plaintext
}

// Normalise converts a markdown document to prose.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	rawContent := strings.ReplaceAll(string(raw.Content), "\r\n", "\n")
	title := extractMarkdownTitle(rawContent, raw.URI)

	return &driven.NormaliseResult{
		Document: normalisers.NewDocument(raw, title, stripMarkdown(rawContent), "markdown"),
	}, nil
}

var (
	frontMatter   = regexp.MustCompile(`(?s)\A---\n.*?\n---\n`)
	codeBlock     = regexp.MustCompile("(?s)```[^`]*```")
	inlineCode    = regexp.MustCompile("`[^`]+`")
	images        = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	links         = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	headings      = regexp.MustCompile(`(?m)^#{1,6}[ \t]+(.*?)[ \t]*#*$`)
	blockquote    = regexp.MustCompile(`(?m)^>[ \t]?`)
	hr            = regexp.MustCompile(`(?m)^[-*_]{3,}[ \t]*$`)
	listItems     = regexp.MustCompile(`(?m)^[ \t]*(?:[-*+]|\d+\.)[ \t]+(.*)$`)
	strong        = regexp.MustCompile(`(\*\*|__)([^*_\n]+?)(\*\*|__)`)
	starEmphasis  = regexp.MustCompile(`\*([^*\n]+)\*`)
	underscoreEm  = regexp.MustCompile(`(^|[\s(])_([^_\n]+)_`)
	multiNewlines = regexp.MustCompile(`\n{3,}`)
)

// extractMarkdownTitle returns the first H1 heading or a title derived
// from the file name.
func extractMarkdownTitle(content, uri string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "#"))
		}
	}
	return normalisers.TitleFromURI(uri)
}

// stripMarkdown removes markdown syntax. Headings and list items become
// sentences of their own so they do not run into the following text.
func stripMarkdown(content string) string {
	content = frontMatter.ReplaceAllString(content, "")
	content = codeBlock.ReplaceAllString(content, "")
	content = inlineCode.ReplaceAllString(content, "")
	content = images.ReplaceAllString(content, "")
	content = links.ReplaceAllString(content, "$1")
	content = hr.ReplaceAllString(content, "")

	content = headings.ReplaceAllStringFunc(content, func(m string) string {
		return normalisers.Terminate(headings.FindStringSubmatch(m)[1])
	})
	content = listItems.ReplaceAllStringFunc(content, func(m string) string {
		return normalisers.Terminate(listItems.FindStringSubmatch(m)[1])
	})

	content = strong.ReplaceAllString(content, "$2")
	content = starEmphasis.ReplaceAllString(content, "$1")
	content = underscoreEm.ReplaceAllString(content, "$1$2")
	content = blockquote.ReplaceAllString(content, "")
	content = multiNewlines.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}
