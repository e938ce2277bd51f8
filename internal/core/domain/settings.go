package domain

import "fmt"

// OutputFormat selects how CLI results are rendered.
type OutputFormat string

// Available output formats.
const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputCSV   OutputFormat = "csv"
	OutputPlain OutputFormat = "plain"
)

// IsValid returns true if the format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputTable, OutputJSON, OutputCSV, OutputPlain:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// ParseOutputFormat converts a string to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	f := OutputFormat(s)
	if !f.IsValid() {
		return "", fmt.Errorf("output format %q: %w", s, ErrInvalidParameter)
	}
	return f, nil
}

// Defaults for server settings.
const (
	DefaultServerAddr = "127.0.0.1:8080"
	DefaultRateLimit  = 10.0
)

// Settings holds user configuration.
type Settings struct {
	// KeywordCount is the default number of keywords to extract.
	KeywordCount int

	// SummarySentences is the default summary length.
	SummarySentences int

	// OutputFormat is the default CLI rendering.
	OutputFormat OutputFormat

	// Color enables coloured CLI output.
	Color bool

	// ServerAddr is the HTTP listen address.
	ServerAddr string

	// RateLimit is the HTTP API request rate in requests per second.
	RateLimit float64
}

// DefaultSettings returns settings with default values.
func DefaultSettings() Settings {
	return Settings{
		KeywordCount:     DefaultKeywordCount,
		SummarySentences: DefaultSummarySentences,
		OutputFormat:     OutputTable,
		Color:            true,
		ServerAddr:       DefaultServerAddr,
		RateLimit:        DefaultRateLimit,
	}
}

// Validate checks every field against its accepted range.
func (s Settings) Validate() error {
	if err := ValidateKeywordCount(s.KeywordCount); err != nil {
		return err
	}
	if err := ValidateSummarySentences(s.SummarySentences); err != nil {
		return err
	}
	if !s.OutputFormat.IsValid() {
		return fmt.Errorf("output format %q: %w", s.OutputFormat, ErrInvalidParameter)
	}
	if s.ServerAddr == "" {
		return fmt.Errorf("server address empty: %w", ErrInvalidParameter)
	}
	if s.RateLimit <= 0 {
		return fmt.Errorf("rate limit %v: %w", s.RateLimit, ErrInvalidParameter)
	}
	return nil
}
