package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/distil/internal/core/domain"
)

func TestStats(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected domain.TextStats
	}{
		{
			name:     "empty",
			text:     "",
			expected: domain.TextStats{},
		},
		{
			name: "two paragraphs",
			text: "Hello world. This is a test!\n\nSecond paragraph here.",
			expected: domain.TextStats{
				Words:               9,
				Characters:          52,
				CharactersNoSpaces:  43,
				Sentences:           3,
				Paragraphs:          2,
				ReadingTimeMinutes:  1,
				SpeakingTimeMinutes: 1,
			},
		},
		{
			name: "counts runes not bytes",
			text: "café au lait",
			expected: domain.TextStats{
				Words:               3,
				Characters:          12,
				CharactersNoSpaces:  10,
				Sentences:           1,
				Paragraphs:          1,
				ReadingTimeMinutes:  1,
				SpeakingTimeMinutes: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Stats(tt.text))
		})
	}
}

func TestStats_TimeEstimates(t *testing.T) {
	got := Stats(strings.Repeat("word ", 401))

	assert.Equal(t, 401, got.Words)
	assert.Equal(t, 3, got.ReadingTimeMinutes)
	assert.Equal(t, 4, got.SpeakingTimeMinutes)
}

func TestStats_BlankLinesAreNotParagraphs(t *testing.T) {
	got := Stats("first\n   \n\n second \n")
	assert.Equal(t, 2, got.Paragraphs)
}
