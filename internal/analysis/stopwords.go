package analysis

import (
	"slices"
	"strings"
)

// StopWords is a set of words excluded from keyword candidacy.
// A nil set excludes nothing.
type StopWords map[string]struct{}

// Contains reports whether word is in the set.
func (s StopWords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Words returns the set's members sorted alphabetically.
func (s StopWords) Words() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

// NewStopWords builds a set from the given words, lower-cased.
func NewStopWords(words ...string) StopWords {
	s := make(StopWords, len(words))
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}

var englishStopWords = NewStopWords(
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "i",
	"it", "for", "not", "on", "with", "he", "as", "you", "do", "at",
	"this", "but", "his", "by", "from", "they", "we", "say", "her", "she",
	"or", "an", "will", "my", "one", "all", "would", "there", "their", "what",
	"so", "up", "out", "if", "about", "who", "get", "which", "go", "me",
	"when", "make", "can", "like", "time", "no", "just", "him", "know", "take",
	"people", "into", "year", "your", "good", "some", "could", "them", "see", "other",
	"than", "then", "now", "look", "only", "come", "its", "over", "think", "also",
	"back", "after", "use", "two", "how", "our", "work", "first", "well", "way",
	"even", "new", "want", "because", "any", "these", "give", "day", "most", "us",
)

// EnglishStopWords returns the fixed English stop word set. The returned
// set is shared and must not be modified.
func EnglishStopWords() StopWords {
	return englishStopWords
}
