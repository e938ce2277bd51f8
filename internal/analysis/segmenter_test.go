package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/distil/internal/core/domain"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []domain.Sentence
	}{
		{
			name: "three sentences",
			text: "One. Two! Three?",
			expected: []domain.Sentence{
				{Text: "One", Index: 0},
				{Text: "Two", Index: 1},
				{Text: "Three", Index: 2},
			},
		},
		{
			name: "terminator runs are one boundary",
			text: "Wait... What?! Yes.",
			expected: []domain.Sentence{
				{Text: "Wait", Index: 0},
				{Text: "What", Index: 1},
				{Text: "Yes", Index: 2},
			},
		},
		{
			name:     "no terminator is one trimmed sentence",
			text:     "  just words here \n",
			expected: []domain.Sentence{{Text: "just words here", Index: 0}},
		},
		{
			name: "empty pieces do not consume indexes",
			text: ". . First.  . Second",
			expected: []domain.Sentence{
				{Text: "First", Index: 0},
				{Text: "Second", Index: 1},
			},
		},
		{
			name: "decimals are not special",
			text: "Pi is 3.14",
			expected: []domain.Sentence{
				{Text: "Pi is 3", Index: 0},
				{Text: "14", Index: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Segment(tt.text))
		})
	}
}

func TestSegment_Empty(t *testing.T) {
	assert.Empty(t, Segment(""))
	assert.Empty(t, Segment("   "))
	assert.Empty(t, Segment("...!?"))
}
