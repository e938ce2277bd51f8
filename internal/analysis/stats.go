package analysis

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/distil/internal/core/domain"
)

// Words per minute used for time estimates.
const (
	ReadingWordsPerMinute  = 200
	SpeakingWordsPerMinute = 130
)

// Stats counts words, characters, sentences and paragraphs of text and
// estimates reading and speaking time in whole minutes.
func Stats(text string) domain.TextStats {
	words := len(strings.Fields(text))

	noSpace := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			noSpace++
		}
	}

	paragraphs := 0
	for _, p := range strings.Split(text, "\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}

	return domain.TextStats{
		Words:               words,
		Characters:          utf8.RuneCountInString(text),
		CharactersNoSpaces:  noSpace,
		Sentences:           len(Segment(text)),
		Paragraphs:          paragraphs,
		ReadingTimeMinutes:  minutes(words, ReadingWordsPerMinute),
		SpeakingTimeMinutes: minutes(words, SpeakingWordsPerMinute),
	}
}

func minutes(words, perMinute int) int {
	return int(math.Ceil(float64(words) / float64(perMinute)))
}
