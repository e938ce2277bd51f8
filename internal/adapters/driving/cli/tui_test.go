package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
	assert.Equal(t, "Launch the interactive analyzer", tuiCmd.Short)
}

func TestTUICmd_LongListsControls(t *testing.T) {
	assert.Contains(t, tuiCmd.Long, "ctrl+s")
	assert.Contains(t, tuiCmd.Long, "shift+tab")
	assert.Contains(t, tuiCmd.Long, "ctrl+l")
}
