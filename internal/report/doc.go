// Package report aggregates shapes by kind and renders localized reports.
//
// Render produces the canonical report markup:
//
//	<h1>Shapes report</h1>2 Squares | Area 13 | Perimeter 20 <br/>TOTAL:<br/>2 shapes Perimeter 20 Area 13
//
// The same aggregated Summary can also be written by the other Writer
// implementations:
//   - HTMLWriter: the canonical markup above
//   - TextWriter: the canonical markup reduced to plain text lines
//   - MarkdownWriter: a Markdown table
//   - JSONWriter: structured JSON for tool integration
//
// Rendering is pure: a failed render produces no output at all.
package report
