package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/shapereport/internal/i18n"
	"github.com/shopspring/decimal"
)

// JSONWriter outputs reports in JSON format for tool integration.
// Decimal values are encoded as strings rounded to two places.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, lang i18n.Language, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output, lang),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONReport is the JSON document written by JSONWriter.
type JSONReport struct {
	// Language is the BCP 47 code of the report language.
	Language string `json:"language"`

	// Title is the localized heading, or the empty-list message.
	Title string `json:"title"`

	// Shapes lists kinds with at least one shape, in canonical order.
	Shapes []JSONShapeTotal `json:"shapes"`

	// Total covers every shape.
	Total JSONTotal `json:"total"`
}

// JSONShapeTotal holds the totals of one kind.
type JSONShapeTotal struct {
	Kind      string          `json:"kind"`
	Name      string          `json:"name"`
	Count     int             `json:"count"`
	Area      decimal.Decimal `json:"area"`
	Perimeter decimal.Decimal `json:"perimeter"`
}

// JSONTotal holds the grand totals.
type JSONTotal struct {
	Count     int             `json:"count"`
	Area      decimal.Decimal `json:"area"`
	Perimeter decimal.Decimal `json:"perimeter"`
}

// NewJSONReport converts a summary to its JSON document.
func NewJSONReport(summary *Summary, lang i18n.Language) (*JSONReport, error) {
	l, err := loadLabels(lang)
	if err != nil {
		return nil, err
	}

	r := &JSONReport{
		Language: lang.String(),
		Title:    l.heading,
		Shapes:   make([]JSONShapeTotal, 0, len(summary.Buckets)),
		Total: JSONTotal{
			Count:     summary.Count,
			Area:      summary.Area.Round(displayPlaces),
			Perimeter: summary.Perimeter.Round(displayPlaces),
		},
	}
	if summary.Empty() {
		r.Title = l.empty
	}

	for _, b := range summary.Occupied() {
		name, err := i18n.KindName(b.Kind, b.Count, lang)
		if err != nil {
			return nil, err
		}
		r.Shapes = append(r.Shapes, JSONShapeTotal{
			Kind:      b.Kind.String(),
			Name:      name,
			Count:     b.Count,
			Area:      b.Area.Round(displayPlaces),
			Perimeter: b.Perimeter.Round(displayPlaces),
		})
	}

	return r, nil
}

// Write outputs the summary in JSON format.
func (w *JSONWriter) Write(summary *Summary) (int, error) {
	r, err := NewJSONReport(summary, w.lang)
	if err != nil {
		return 0, err
	}

	var data []byte
	if w.indent {
		data, err = json.MarshalIndent(r, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(r)
	}
	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
