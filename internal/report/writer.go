package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/shapereport/internal/i18n"
)

// ErrUnknownFormat is returned when an output format name is not recognized.
var ErrUnknownFormat = errors.New("unknown report format")

// Writer defines the interface for report output.
// Implementations are bound to a language and an io.Writer when created.
type Writer interface {
	// Write outputs the summary to the configured destination.
	// Returns the number of bytes written and any error encountered.
	// Nothing is written when an error is returned before output starts.
	Write(summary *Summary) (int, error)
}

// Format names an output format.
type Format string

// Supported output formats.
const (
	FormatHTML     Format = "html"
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatHTML, FormatText, FormatMarkdown, FormatJSON}
}

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html", "":
		return FormatHTML, nil
	case "text", "txt", "plain":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// NewWriter creates the Writer for a format.
func NewWriter(format Format, output io.Writer, lang i18n.Language) (Writer, error) {
	switch format {
	case FormatHTML:
		return NewHTMLWriter(output, lang), nil
	case FormatText:
		return NewTextWriter(output, lang), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output, lang), nil
	case FormatJSON:
		return NewJSONWriter(output, lang, WithPrettyPrint()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// MultiWriter writes to multiple Writers in sequence.
// This is useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the summary to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(summary *Summary) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(summary)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
	lang   i18n.Language
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer, lang i18n.Language) baseWriter {
	return baseWriter{output: output, lang: lang}
}

// text looks up a concept in the writer's language.
func (b baseWriter) text(c i18n.Concept) (string, error) {
	return i18n.Text(c, b.lang)
}
