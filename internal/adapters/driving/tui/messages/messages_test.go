package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeKeywords, "Keywords"},
		{ModeSummary, "Summary"},
		{ModeStats, "Stats"},
		{Mode(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mode.String())
		})
	}
}

func TestMode_Next(t *testing.T) {
	assert.Equal(t, ModeSummary, ModeKeywords.Next())
	assert.Equal(t, ModeStats, ModeSummary.Next())
	assert.Equal(t, ModeKeywords, ModeStats.Next())
}

func TestMode_Prev(t *testing.T) {
	assert.Equal(t, ModeStats, ModeKeywords.Prev())
	assert.Equal(t, ModeKeywords, ModeSummary.Prev())
	assert.Equal(t, ModeSummary, ModeStats.Prev())
}

func TestModes_Order(t *testing.T) {
	assert.Equal(t, []Mode{ModeKeywords, ModeSummary, ModeStats}, Modes)
}
