package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/shapereport/internal/i18n"
	"github.com/nao1215/shapereport/internal/shape"
)

// Render aggregates shapes and returns the report markup in the given
// language. It fails with i18n.ErrUnsupportedLanguage or
// shape.ErrUnknownShapeKind without producing any output.
func Render(shapes []shape.Shape, lang i18n.Language) (string, error) {
	if !lang.Valid() {
		return "", fmt.Errorf("%w: %d", i18n.ErrUnsupportedLanguage, int(lang))
	}

	summary, err := Aggregate(shapes)
	if err != nil {
		return "", err
	}

	return renderHTML(summary, lang)
}

// HTMLWriter outputs reports in the canonical markup produced by Render.
type HTMLWriter struct {
	baseWriter
}

// NewHTMLWriter creates an HTMLWriter that outputs to the given writer.
func NewHTMLWriter(output io.Writer, lang i18n.Language) *HTMLWriter {
	return &HTMLWriter{
		baseWriter: newBaseWriter(output, lang),
	}
}

// Write outputs the summary as report markup.
func (w *HTMLWriter) Write(summary *Summary) (int, error) {
	s, err := renderHTML(summary, w.lang)
	if err != nil {
		return 0, err
	}
	return io.WriteString(w.output, s)
}

// labels holds the localized strings of one render.
type labels struct {
	heading   string
	empty     string
	area      string
	perimeter string
	shapes    string
	total     string
}

// loadLabels looks up every label up front so a render either has all of
// its text or fails before writing anything.
func loadLabels(lang i18n.Language) (labels, error) {
	var l labels
	lookups := []struct {
		concept i18n.Concept
		dst     *string
	}{
		{i18n.ConceptHeading, &l.heading},
		{i18n.ConceptEmptyList, &l.empty},
		{i18n.ConceptArea, &l.area},
		{i18n.ConceptPerimeter, &l.perimeter},
		{i18n.ConceptShapes, &l.shapes},
		{i18n.ConceptTotal, &l.total},
	}
	for _, lk := range lookups {
		s, err := i18n.Text(lk.concept, lang)
		if err != nil {
			return labels{}, err
		}
		*lk.dst = s
	}
	return l, nil
}

// renderHTML builds the whole report in memory.
func renderHTML(summary *Summary, lang i18n.Language) (string, error) {
	l, err := loadLabels(lang)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	if summary.Empty() {
		sb.WriteString("<h1>" + l.empty + "</h1>")
		return sb.String(), nil
	}

	sb.WriteString("<h1>" + l.heading + "</h1>")

	for _, b := range summary.Occupied() {
		name, err := i18n.KindName(b.Kind, b.Count, lang)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "%d %s | %s %s | %s %s <br/>",
			b.Count, name,
			l.area, FormatDecimal(b.Area),
			l.perimeter, FormatDecimal(b.Perimeter),
		)
	}

	sb.WriteString(l.total + ":<br/>")
	fmt.Fprintf(&sb, "%d %s %s %s %s %s",
		summary.Count, l.shapes,
		l.perimeter, FormatDecimal(summary.Perimeter),
		l.area, FormatDecimal(summary.Area),
	)

	return sb.String(), nil
}
