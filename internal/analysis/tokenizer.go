package analysis

import (
	"regexp"
	"strings"
)

// Minimum token lengths for the two pipelines.
const (
	KeywordMinLength = 3
	SummaryMinLength = 4
)

// wordPattern matches whole ASCII letter runs. \b is ASCII-only in RE2,
// so a run glued to a digit or underscore is not a word.
var wordPattern = regexp.MustCompile(`\b[a-z]+\b`)

// Tokenize lower-cases text and returns the letter runs of at least
// minLength characters in document order.
func Tokenize(text string, minLength int) []string {
	matches := wordPattern.FindAllString(strings.ToLower(text), -1)
	tokens := matches[:0]
	for _, m := range matches {
		if len(m) >= minLength {
			tokens = append(tokens, m)
		}
	}
	return tokens
}
