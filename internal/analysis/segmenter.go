package analysis

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/distil/internal/core/domain"
)

var terminatorPattern = regexp.MustCompile(`[.!?]+`)

// Segment splits text on runs of '.', '!' and '?'. Each piece is trimmed
// and empty pieces are dropped. Indexes follow the surviving order.
func Segment(text string) []domain.Sentence {
	parts := terminatorPattern.Split(text, -1)
	sentences := make([]domain.Sentence, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		sentences = append(sentences, domain.Sentence{Text: p, Index: len(sentences)})
	}
	return sentences
}
