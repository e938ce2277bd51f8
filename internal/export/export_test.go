package export

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/distil/internal/core/domain"
)

var terms = []domain.ScoredTerm{
	{Word: "cats", Score: 2.1972, Frequency: 2},
	{Word: "dogs", Score: 1.1, Frequency: 1},
	{Word: "quote,comma", Score: 0, Frequency: 1},
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, CSV(&buf, terms))

	expected := "word,score,frequency\n" +
		"cats,2.20,2\n" +
		"dogs,1.10,1\n" +
		"\"quote,comma\",0.00,1\n"
	assert.Equal(t, expected, buf.String())
}

func TestCSV_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, CSV(&buf, nil))
	assert.Equal(t, "word,score,frequency\n", buf.String())
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "cats, dogs, quote,comma", Plain(terms))
	assert.Equal(t, "", Plain(nil))
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, JSON(&buf, terms[:1]))
	assert.JSONEq(t, `[{"word":"cats","score":2.1972,"frequency":2}]`, buf.String())

	buf.Reset()
	require.NoError(t, JSON(&buf, []domain.ScoredTerm(nil)))
	assert.Equal(t, "[]\n", buf.String())
}

func TestJSON_Unsupported(t *testing.T) {
	err := JSON(&bytes.Buffer{}, make(chan int))
	assert.Error(t, err)
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		format   domain.OutputFormat
		contains string
	}{
		{domain.OutputCSV, "word,score,frequency"},
		{domain.OutputJSON, `"word": "cats"`},
		{domain.OutputPlain, "cats, dogs"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Keywords(&buf, tt.format, terms))
			assert.Contains(t, buf.String(), tt.contains)
		})
	}

	err := Keywords(&bytes.Buffer{}, domain.OutputTable, terms)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedType))
}
