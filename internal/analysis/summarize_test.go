package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		n        int
		expected string
	}{
		{
			name:     "ties keep document order",
			text:     "Cats are great pets. Dogs are loyal friends. Birds can sing songs. Fish live quietly.",
			n:        2,
			expected: "Cats are great pets. Dogs are loyal friends.",
		},
		{
			name:     "fewer sentences than requested returns trimmed input",
			text:     "  First sentence here. Second one!  ",
			n:        3,
			expected: "First sentence here. Second one!",
		},
		{
			name:     "equal count returns input",
			text:     "One fish. Two fish.",
			n:        2,
			expected: "One fish. Two fish.",
		},
		{
			name:     "weighted by document frequency",
			text:     "Rust rust rust rocks. Go is fun. Rust is fast. Tea.",
			n:        2,
			expected: "Rust rust rust rocks. Rust is fast.",
		},
		{
			name:     "selected sentences restored to document order",
			text:     "Alpha beta. Gamma gamma gamma delta. Epsilon.",
			n:        2,
			expected: "Alpha beta. Gamma gamma gamma delta.",
		},
		{
			name:     "single sentence summary",
			text:     "Short one. Another longer sentence sentence. Tiny.",
			n:        1,
			expected: "Another longer sentence sentence.",
		},
		{
			name:     "stop words still score",
			text:     "People people people. Zebra here. Tiny.",
			n:        1,
			expected: "People people people.",
		},
		{
			name:     "empty input",
			text:     "",
			n:        3,
			expected: "",
		},
		{
			name:     "whitespace input",
			text:     " \n\t ",
			n:        3,
			expected: "",
		},
		{
			name:     "non positive count",
			text:     "One. Two.",
			n:        0,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Summarize(tt.text, tt.n))
		})
	}
}

func TestSummarize_FiltersDifferFromKeywords(t *testing.T) {
	text := "People people people. Zebra here. Tiny."
	assert.True(t, EnglishStopWords().Contains("people"))

	words := make([]string, 0)
	for _, term := range ExtractKeywords(text, 10) {
		words = append(words, term.Word)
	}
	assert.NotContains(t, words, "people")
	assert.Equal(t, []string{"zebra", "here", "tiny"}, words)

	assert.Equal(t, "People people people.", Summarize(text, 1))
}

func TestSummarize_Deterministic(t *testing.T) {
	text := strings.Repeat("Words matter here. Other words differ. ", 10)
	first := Summarize(text, 3)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Summarize(text, 3))
	}
}

func TestSummarizeWithStats(t *testing.T) {
	text := "Cats are great pets. Dogs are loyal friends. Birds can sing songs. Fish live quietly."

	got := SummarizeWithStats(text, 2)

	assert.Equal(t, "Cats are great pets. Dogs are loyal friends.", got.Text)
	assert.Equal(t, 4, got.OriginalSentences)
	assert.Equal(t, 2, got.SummarySentences)
	assert.Equal(t, 15, got.OriginalWords)
	assert.Equal(t, 8, got.SummaryWords)
	assert.InDelta(t, 46.7, got.Reduction, 1e-9)
	assert.False(t, got.Unchanged())
}

func TestSummarizeWithStats_Unchanged(t *testing.T) {
	got := SummarizeWithStats("One two. Three four.", 3)

	assert.Equal(t, "One two. Three four.", got.Text)
	assert.Equal(t, 2, got.OriginalSentences)
	assert.Equal(t, 2, got.SummarySentences)
	assert.InDelta(t, 0.0, got.Reduction, 1e-9)
	assert.True(t, got.Unchanged())
}

func TestSummarizeWithStats_Empty(t *testing.T) {
	got := SummarizeWithStats("", 3)

	assert.Empty(t, got.Text)
	assert.Zero(t, got.OriginalWords)
	assert.Zero(t, got.Reduction)
}
