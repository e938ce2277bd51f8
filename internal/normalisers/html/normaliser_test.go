package html

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/distil/internal/core/domain"
)

func TestNew(t *testing.T) {
	n := New()
	require.NotNil(t, n)
	assert.Equal(t, 50, n.Priority())
	assert.Equal(t, []string{"text/html", "application/xhtml+xml"}, n.SupportedMIMETypes())
}

func TestNormalise(t *testing.T) {
	page := `<html><head><title>Release Notes</title><style>p{color:red}</style></head>
<body><h1>Welcome</h1><p>First paragraph &amp; more.</p>
<ul><li>One</li><li>Two</li></ul><script>var x = 1;</script></body></html>`

	raw := &domain.RawDocument{
		SourceID: "src",
		URI:      "/site/index.html",
		MIMEType: "text/html",
		Content:  []byte(page),
	}

	result, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)

	doc := result.Document
	assert.Equal(t, "Release Notes", doc.Title)
	assert.Equal(t, "Welcome.\nFirst paragraph & more.\nOne.\nTwo.", doc.Content)
	assert.Equal(t, "html", doc.Metadata["format"])
}

func TestNormalise_NilDocument(t *testing.T) {
	_, err := New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtractHTMLTitle(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		uri      string
		expected string
	}{
		{"title tag", "<title>My Page</title>", "/a.html", "My Page"},
		{"escaped", "<TITLE>Q&amp;A</TITLE>", "/a.html", "Q&A"},
		{"empty title", "<title>  </title>", "/docs/user-guide.html", "user guide"},
		{"missing", "<p>No title</p>", "/docs/faq.html", "faq"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractHTMLTitle(tt.content, tt.uri))
		})
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Just text.", "Just text."},
		{"paragraphs", "<p>One.</p><p>Two.</p>", "One.\nTwo."},
		{"line break", "First line<br/>Second line", "First line\nSecond line"},
		{"heading", "<h2 class=\"x\">Overview</h2><p>Body.</p>", "Overview.\nBody."},
		{"heading keeps terminator", "<h3>Ready?</h3>", "Ready?"},
		{"nested inline tags", "<p>Some <b>bold</b> and <em>emphasis</em>.</p>", "Some bold and emphasis."},
		{"table cells", "<table><tr><td>Alpha</td><td>Beta</td></tr></table>", "Alpha.\nBeta."},
		{"comments", "<p>Kept.</p><!-- hidden -->", "Kept."},
		{"script", "<script>alert('x')</script><p>Shown.</p>", "Shown."},
		{"link is not a list item", "<link rel=\"a\"><p>Body.</p>", "Body."},
		{"header is not head", "<header>Top</header><p>Body.</p>", "Top\nBody."},
		{"entities", "<p>&lt;tag&gt; &quot;quoted&quot;</p>", "<tag> \"quoted\""},
		{"collapse spaces", "<p>a   \t  b</p>", "a b"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Text(tt.input))
		})
	}
}
