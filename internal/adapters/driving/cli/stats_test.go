package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/distil/internal/core/domain"
)

func TestStatsCmd_Table(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("stats", sampleText)

	require.NoError(t, err)
	assert.Contains(t, out, "Metric")
	assert.Contains(t, out, "Sentences")
	assert.Contains(t, out, "Paragraphs")
	assert.Contains(t, out, "Reading time (min)")
}

func TestStatsCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("stats", "--json", sampleText)

	require.NoError(t, err)
	var stats domain.TextStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 4, stats.Sentences)
	assert.Equal(t, 1, stats.Paragraphs)
	assert.Equal(t, 1, stats.ReadingTimeMinutes)
	assert.Positive(t, stats.Words)
}

func TestStatsCmd_NoService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	analysisService = nil

	_, err := execute("stats", sampleText)

	assert.Error(t, err)
}
