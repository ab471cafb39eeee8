package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/shapereport/internal/i18n"
)

// MarkdownWriter outputs reports as a GitHub Flavored Markdown table,
// one row per shape kind present plus a totals row.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, lang i18n.Language) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output, lang),
	}
}

// Write outputs the summary in Markdown format.
func (w *MarkdownWriter) Write(summary *Summary) (int, error) {
	l, err := loadLabels(w.lang)
	if err != nil {
		return 0, err
	}

	if summary.Empty() {
		md := markdown.NewMarkdown(w.output)
		md.H1(l.empty)
		return len(md.String()), md.Build()
	}

	table, err := w.table(summary, l)
	if err != nil {
		return 0, err
	}

	md := markdown.NewMarkdown(w.output)
	md.H1(l.heading)
	md.PlainText("")
	md.Table(table)

	return len(md.String()), md.Build()
}

// table builds the per-kind table including the totals row.
func (w *MarkdownWriter) table(summary *Summary, l labels) (markdown.TableSet, error) {
	shapeColumn, err := w.text(i18n.ConceptShapeColumn)
	if err != nil {
		return markdown.TableSet{}, err
	}
	countColumn, err := w.text(i18n.ConceptCountColumn)
	if err != nil {
		return markdown.TableSet{}, err
	}

	occupied := summary.Occupied()
	rows := make([][]string, 0, len(occupied)+1)
	for _, b := range occupied {
		name, err := i18n.KindName(b.Kind, b.Count, w.lang)
		if err != nil {
			return markdown.TableSet{}, err
		}
		rows = append(rows, []string{
			name,
			strconv.Itoa(b.Count),
			FormatTotal(b.Area),
			FormatTotal(b.Perimeter),
		})
	}
	rows = append(rows, []string{
		"**" + l.total + "**",
		"**" + strconv.Itoa(summary.Count) + "**",
		"**" + FormatTotal(summary.Area) + "**",
		"**" + FormatTotal(summary.Perimeter) + "**",
	})

	return markdown.TableSet{
		Header: []string{shapeColumn, countColumn, l.area, l.perimeter},
		Rows:   rows,
	}, nil
}
