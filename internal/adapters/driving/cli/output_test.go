package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/distil/internal/core/domain"
)

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"Keyword", "Score"},
		[][]string{{"garden", "1.39"}, {"mice"}},
		[]columnAlignment{alignLeft, alignRight},
		0,
	)

	assert.Contains(t, out, "Keyword")
	assert.Contains(t, out, "garden")
	assert.Contains(t, out, "1.39")
	assert.Contains(t, out, "mice")
	assert.Contains(t, out, "╭")
}

func TestRenderTable_NoColumns(t *testing.T) {
	assert.Empty(t, renderTable(nil, [][]string{{"x"}}, nil, 0))
}

func TestKeywordRows(t *testing.T) {
	rows := keywordRows([]domain.ScoredTerm{
		{Word: "garden", Score: 1.386, Frequency: 2},
		{Word: "mice", Score: 0.5, Frequency: 1},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "garden", "1.39", "2"}, rows[0])
	assert.Equal(t, []string{"2", "mice", "0.50", "1"}, rows[1])
}

func TestPrinter_NoColourOffTerminal(t *testing.T) {
	var buf strings.Builder
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	p := newPrinter(cmd, domain.DefaultSettings())
	p.Heading("Keywords")
	p.Field("Words", 12)

	assert.Equal(t, "Keywords\n  Words: 12\n", buf.String())
	assert.Zero(t, p.width)
}

func TestPrinter_Keywords_Empty(t *testing.T) {
	var buf strings.Builder
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	newPrinter(cmd, domain.DefaultSettings()).Keywords(nil)

	assert.Equal(t, "No keywords found.\n", buf.String())
}

func TestPrinter_SummaryStats(t *testing.T) {
	var buf strings.Builder
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	newPrinter(cmd, domain.DefaultSettings()).SummaryStats(domain.Summary{
		OriginalWords:     40,
		OriginalSentences: 4,
		SummaryWords:      10,
		SummarySentences:  1,
		Reduction:         75,
	})

	out := buf.String()
	assert.Contains(t, out, "Original: 40 words, 4 sentences")
	assert.Contains(t, out, "Summary: 10 words, 1 sentences")
	assert.Contains(t, out, "Reduction: 75.0%")
	assert.NotContains(t, out, "unchanged")
}
