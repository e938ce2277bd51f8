// Package export writes keyword lists as CSV, JSON or plain text.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/custodia-labs/distil/internal/core/domain"
)

// CSVHeader is the first row written by CSV.
var CSVHeader = []string{"word", "score", "frequency"}

// CSV writes terms with a header row. Scores have two decimals.
func CSV(w io.Writer, terms []domain.ScoredTerm) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range terms {
		row := []string{
			t.Word,
			strconv.FormatFloat(t.Score, 'f', 2, 64),
			strconv.Itoa(t.Frequency),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Plain joins the words of terms with ", ".
func Plain(terms []domain.ScoredTerm) string {
	words := make([]string, len(terms))
	for i, t := range terms {
		words[i] = t.Word
	}
	return strings.Join(words, ", ")
}

// JSON writes v as indented JSON followed by a newline. A nil term
// slice is written as an empty array.
func JSON(w io.Writer, v any) error {
	if terms, ok := v.([]domain.ScoredTerm); ok && terms == nil {
		v = []domain.ScoredTerm{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// Keywords writes terms in format. Table output is rendered by the
// caller, so OutputTable returns ErrUnsupportedType.
func Keywords(w io.Writer, format domain.OutputFormat, terms []domain.ScoredTerm) error {
	switch format {
	case domain.OutputCSV:
		return CSV(w, terms)
	case domain.OutputJSON:
		return JSON(w, terms)
	case domain.OutputPlain:
		_, err := fmt.Fprintln(w, Plain(terms))
		return err
	default:
		return fmt.Errorf("export %q: %w", format, domain.ErrUnsupportedType)
	}
}
