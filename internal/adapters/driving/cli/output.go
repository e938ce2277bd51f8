package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/distil/internal/core/domain"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// printer writes command output, colouring headings when the output is a
// terminal and colour is enabled in settings.
type printer struct {
	out     io.Writer
	heading *color.Color
	accent  *color.Color
	width   int
}

func newPrinter(cmd *cobra.Command, settings domain.Settings) *printer {
	out := cmd.OutOrStdout()
	p := &printer{
		out:     out,
		heading: color.New(color.FgCyan, color.Bold),
		accent:  color.New(color.FgGreen),
	}

	if settings.Color && isTerminal(out) {
		p.heading.EnableColor()
		p.accent.EnableColor()
	} else {
		p.heading.DisableColor()
		p.accent.DisableColor()
	}

	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil {
			p.width = w
		}
	}
	return p
}

func (p *printer) Heading(title string) {
	fmt.Fprintln(p.out, p.heading.Sprint(title))
}

func (p *printer) Line(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Field prints a label with a highlighted value.
func (p *printer) Field(label string, value any) {
	fmt.Fprintf(p.out, "  %s %s\n", label+":", p.accent.Sprint(value))
}

func (p *printer) Table(headers []string, rows [][]string, aligns []columnAlignment) {
	fmt.Fprintln(p.out, renderTable(headers, rows, aligns, p.width))
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment, width int) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if width > 0 {
		tw.SetAllowedRowLength(width)
	}

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func keywordRows(terms []domain.ScoredTerm) [][]string {
	rows := make([][]string, len(terms))
	for i, t := range terms {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			t.Word,
			strconv.FormatFloat(t.Score, 'f', 2, 64),
			strconv.Itoa(t.Frequency),
		}
	}
	return rows
}

func (p *printer) Keywords(terms []domain.ScoredTerm) {
	if len(terms) == 0 {
		p.Line("No keywords found.")
		return
	}
	p.Table(
		[]string{"#", "Keyword", "Score", "Frequency"},
		keywordRows(terms),
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight},
	)
}

func (p *printer) Stats(stats domain.TextStats) {
	rows := [][]string{
		{"Words", strconv.Itoa(stats.Words)},
		{"Characters", strconv.Itoa(stats.Characters)},
		{"Characters (no spaces)", strconv.Itoa(stats.CharactersNoSpaces)},
		{"Sentences", strconv.Itoa(stats.Sentences)},
		{"Paragraphs", strconv.Itoa(stats.Paragraphs)},
		{"Reading time (min)", strconv.Itoa(stats.ReadingTimeMinutes)},
		{"Speaking time (min)", strconv.Itoa(stats.SpeakingTimeMinutes)},
	}
	p.Table([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight})
}

func (p *printer) SummaryStats(s domain.Summary) {
	p.Field("Original", fmt.Sprintf("%d words, %d sentences", s.OriginalWords, s.OriginalSentences))
	p.Field("Summary", fmt.Sprintf("%d words, %d sentences", s.SummaryWords, s.SummarySentences))
	p.Field("Reduction", fmt.Sprintf("%.1f%%", s.Reduction))
	if s.Unchanged() {
		p.Line("  Text is already short enough; returned unchanged.")
	}
}
