package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormat_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		format   OutputFormat
		expected bool
	}{
		{name: "table is valid", format: OutputTable, expected: true},
		{name: "json is valid", format: OutputJSON, expected: true},
		{name: "csv is valid", format: OutputCSV, expected: true},
		{name: "plain is valid", format: OutputPlain, expected: true},
		{name: "empty string is invalid", format: OutputFormat(""), expected: false},
		{name: "yaml is invalid", format: OutputFormat("yaml"), expected: false},
		{name: "case sensitive", format: OutputFormat("JSON"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.IsValid())
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	f, err := ParseOutputFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, OutputCSV, f)
	assert.Equal(t, "csv", f.String())

	_, err = ParseOutputFormat("xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, 10, s.KeywordCount)
	assert.Equal(t, 3, s.SummarySentences)
	assert.Equal(t, OutputTable, s.OutputFormat)
	assert.True(t, s.Color)
	assert.Equal(t, "127.0.0.1:8080", s.ServerAddr)
	assert.InDelta(t, 10.0, s.RateLimit, 1e-9)
	require.NoError(t, s.Validate())
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{name: "keyword count too small", modify: func(s *Settings) { s.KeywordCount = 4 }},
		{name: "keyword count too large", modify: func(s *Settings) { s.KeywordCount = 31 }},
		{name: "zero summary sentences", modify: func(s *Settings) { s.SummarySentences = 0 }},
		{name: "summary sentences too large", modify: func(s *Settings) { s.SummarySentences = 11 }},
		{name: "unknown format", modify: func(s *Settings) { s.OutputFormat = "xml" }},
		{name: "empty addr", modify: func(s *Settings) { s.ServerAddr = "" }},
		{name: "zero rate", modify: func(s *Settings) { s.RateLimit = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}
