package report

import (
	"errors"
	"io"
	"strings"

	"github.com/nao1215/shapereport/internal/i18n"
	"golang.org/x/net/html"
)

// TextWriter outputs the canonical report as plain text for terminals.
// Headings and line breaks in the markup become newlines; every other tag
// is dropped.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, lang i18n.Language) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output, lang),
	}
}

// Write outputs the summary as plain text.
func (w *TextWriter) Write(summary *Summary) (int, error) {
	markup, err := renderHTML(summary, w.lang)
	if err != nil {
		return 0, err
	}

	text, err := StripMarkup(markup)
	if err != nil {
		return 0, err
	}
	return io.WriteString(w.output, text)
}

// StripMarkup converts report markup to plain text, one line per heading
// or <br/>-terminated line, with trailing spaces removed and a final
// newline.
func StripMarkup(markup string) (string, error) {
	var sb strings.Builder

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}
			return joinLines(sb.String()), nil
		case html.TextToken:
			sb.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			if name, _ := z.TagName(); string(name) == "br" {
				sb.WriteByte('\n')
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); isBlock(string(name)) {
				sb.WriteByte('\n')
			}
		}
	}
}

// isBlock reports whether closing the tag ends a line.
func isBlock(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "p", "div", "li":
		return true
	default:
		return false
	}
}

// joinLines trims each line and drops blank ones.
func joinLines(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, " \t")
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
