package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/distil/internal/core/domain"
	"github.com/custodia-labs/distil/internal/core/ports/driven"
	"github.com/custodia-labs/distil/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// MIMEType is the Office Open XML word processing type.
const MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// maxPartSize caps the uncompressed size of a single archive part.
const maxPartSize = 32 << 20

// Normaliser handles DOCX documents.
type Normaliser struct{}

// New creates a new DOCX normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{MIMEType}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser
}

// Normalise extracts paragraph text from a DOCX archive. Heading
// paragraphs are closed as sentences.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	reader, err := zip.NewReader(bytes.NewReader(raw.Content), int64(len(raw.Content)))
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", domain.ErrInvalidInput)
	}

	body, err := readPart(reader, "word/document.xml")
	if err != nil {
		return nil, err
	}

	title := normalisers.TitleFromURI(raw.URI)
	if core, err := readPart(reader, "docProps/core.xml"); err == nil && core != nil {
		if t := parseCoreTitle(core); t != "" {
			title = t
		}
	}

	return &driven.NormaliseResult{
		Document: normalisers.NewDocument(raw, title, parseDocumentXML(body), "docx"),
	}, nil
}

// readPart returns the contents of the named archive part, or nil when
// the part is absent.
func readPart(reader *zip.Reader, name string) ([]byte, error) {
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, domain.ErrInvalidInput)
		}
		defer rc.Close()

		content, err := io.ReadAll(io.LimitReader(rc, maxPartSize))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, domain.ErrInvalidInput)
		}
		return content, nil
	}
	return nil, nil
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Properties struct {
		Style struct {
			Val string `xml:"val,attr"`
		} `xml:"pStyle"`
	} `xml:"pPr"`
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML joins paragraph text with newlines.
func parseDocumentXML(content []byte) string {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return ""
	}

	lines := make([]string, 0, len(doc.Body.Paragraphs))
	for _, para := range doc.Body.Paragraphs {
		var line strings.Builder
		for _, r := range para.Runs {
			for _, text := range r.Text {
				line.WriteString(text.Content)
			}
		}
		text := strings.TrimSpace(line.String())
		if text == "" {
			continue
		}
		if isHeadingStyle(para.Properties.Style.Val) {
			text = normalisers.Terminate(text)
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n")
}

func isHeadingStyle(style string) bool {
	style = strings.ToLower(style)
	return style == "title" || strings.HasPrefix(style, "heading")
}

// coreXML represents the structure of docProps/core.xml.
type coreXML struct {
	Title string `xml:"title"`
}

func parseCoreTitle(content []byte) string {
	var core coreXML
	if err := xml.Unmarshal(content, &core); err != nil {
		return ""
	}
	return strings.TrimSpace(core.Title)
}
