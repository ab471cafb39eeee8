package log

import (
	"context"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"
)

// DefaultPlaces is the number of decimal places kept in logged decimals.
// It matches the precision of rendered reports.
const DefaultPlaces = 2

// PrecisionHandler wraps an slog.Handler to round decimal.Decimal and
// decimal.NullDecimal attribute values before they reach the underlying
// handler. Values are passed on as strings.
type PrecisionHandler struct {
	// handler is the underlying slog handler that receives rounded records.
	handler slog.Handler

	// places is the number of decimal places kept.
	places int32
}

// NewPrecisionHandler creates a new PrecisionHandler wrapping the given handler.
// If handler is nil, the returned PrecisionHandler will use slog.Default().Handler().
func NewPrecisionHandler(handler slog.Handler, places int32) *PrecisionHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &PrecisionHandler{handler: handler, places: places}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *PrecisionHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle rounds the record's decimal attributes and passes it to the underlying handler.
func (h *PrecisionHandler) Handle(ctx context.Context, r slog.Record) error {
	rounded := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		rounded.AddAttrs(h.roundAttr(a))
		return true
	})

	return h.handler.Handle(ctx, rounded)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are rounded before being added.
func (h *PrecisionHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	roundedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		roundedAttrs[i] = h.roundAttr(a)
	}
	return &PrecisionHandler{handler: h.handler.WithAttrs(roundedAttrs), places: h.places}
}

// WithGroup returns a new handler with the given group name.
func (h *PrecisionHandler) WithGroup(name string) slog.Handler {
	return &PrecisionHandler{handler: h.handler.WithGroup(name), places: h.places}
}

// roundAttr rounds a single attribute, recursively handling groups.
// LogValuer values are resolved first so that values they produce are
// rounded too.
func (h *PrecisionHandler) roundAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		roundedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			roundedAttrs[i] = h.roundAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(roundedAttrs...)}
	}

	if a.Value.Kind() != slog.KindAny {
		return a
	}

	switch v := a.Value.Any().(type) {
	case decimal.Decimal:
		return slog.String(a.Key, v.Round(h.places).String())
	case *decimal.Decimal:
		if v == nil {
			return a
		}
		return slog.String(a.Key, v.Round(h.places).String())
	case decimal.NullDecimal:
		if !v.Valid {
			return slog.String(a.Key, "null")
		}
		return slog.String(a.Key, v.Decimal.Round(h.places).String())
	default:
		return a
	}
}

// NewLogger creates a new slog.Logger writing text records.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	textHandler := slog.NewTextHandler(w, handlerOptions(verbose))
	return slog.New(NewPrecisionHandler(textHandler, DefaultPlaces))
}

// NewJSONLogger creates a new slog.Logger writing JSON records.
// Useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	jsonHandler := slog.NewJSONHandler(w, handlerOptions(verbose))
	return slog.New(NewPrecisionHandler(jsonHandler, DefaultPlaces))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// handlerOptions maps the verbose flag to a level.
func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
