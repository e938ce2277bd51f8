package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/distil/internal/core/domain"
)

func TestWatchCmd_RequiresDir(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("watch")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestWatchCmd_PrintsEvents(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	fake := &fakeWatchService{events: []domain.WatchEvent{
		{
			Type: domain.ChangeCreated,
			URI:  "notes.md",
			Report: &domain.Report{
				Keywords: []domain.ScoredTerm{{Word: "garden"}, {Word: "mice"}},
				Summary:  domain.Summary{Text: "Cats chase mice in the garden."},
				Stats:    domain.TextStats{Words: 6},
			},
		},
		{Type: domain.ChangeDeleted, URI: "old.txt"},
		{Type: domain.ChangeUpdated, URI: "broken.txt", Err: errors.New("read failed")},
	}}
	watchService = fake

	out, err := execute("watch", "-n", "6", "/tmp/notes")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/notes", fake.root)
	assert.Equal(t, 6, fake.opts.KeywordCount)
	assert.Equal(t, domain.DefaultSummarySentences, fake.opts.SummarySentences)
	assert.Contains(t, out, "Watching /tmp/notes")
	assert.Contains(t, out, "[created] notes.md")
	assert.Contains(t, out, "garden, mice")
	assert.Contains(t, out, "Cats chase mice in the garden.")
	assert.Contains(t, out, "[deleted] old.txt")
	assert.NotContains(t, out, "read failed")
}

func TestWatchCmd_WatchError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	watchService = &fakeWatchService{err: domain.ErrNotFound}

	_, err := execute("watch", "/missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWatchCmd_NoService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	watchService = nil

	_, err := execute("watch", "/tmp")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch service not configured")
}
