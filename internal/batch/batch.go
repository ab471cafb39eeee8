package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nao1215/shapereport/internal/i18n"
	"github.com/nao1215/shapereport/internal/report"
	"github.com/nao1215/shapereport/internal/shape"
	"golang.org/x/sync/errgroup"
)

// ErrNilSummary is returned by RenderSummary when no summary is given.
var ErrNilSummary = errors.New("nil summary")

// DefaultConcurrency is the number of reports rendered at the same time
// when WithConcurrency is not given.
const DefaultConcurrency = 3

// Result is one rendered report.
type Result struct {
	// Language is the language the report was rendered in.
	Language i18n.Language

	// Output is the rendered report.
	Output string
}

// Renderer renders the same shape list in several languages concurrently.
// Every individual render runs on a single goroutine; only independent
// renders run in parallel.
type Renderer struct {
	// format selects the report writer used for each language.
	format report.Format

	// concurrency is the maximum number of concurrent renders.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFormat sets the output format. Default is HTML.
func WithFormat(format report.Format) Option {
	return func(r *Renderer) {
		r.format = format
	}
}

// WithConcurrency sets the maximum number of concurrent renders.
func WithConcurrency(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// NewRenderer creates a new Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		format:      report.FormatHTML,
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r
}

// RenderAll aggregates shapes and renders one report per language.
//
// The shapes are aggregated once before any goroutine starts, so invalid
// shapes fail the whole batch up front. See RenderSummary.
func (r *Renderer) RenderAll(ctx context.Context, shapes []shape.Shape, langs []i18n.Language) ([]Result, error) {
	if err := validateLanguages(langs); err != nil {
		return nil, err
	}

	summary, err := report.Aggregate(shapes)
	if err != nil {
		return nil, err
	}
	return r.RenderSummary(ctx, summary, langs)
}

// RenderSummary renders one report per language from an aggregated
// summary. Results are returned in the order of langs. The first failing
// render cancels the remaining ones and its error is returned.
func (r *Renderer) RenderSummary(ctx context.Context, summary *report.Summary, langs []i18n.Language) ([]Result, error) {
	if summary == nil {
		return nil, ErrNilSummary
	}
	if err := validateLanguages(langs); err != nil {
		return nil, err
	}

	r.logger.Debug("starting batch render",
		"languages", len(langs),
		"shapes", summary.Count,
		"format", string(r.format),
		"concurrency", r.concurrency,
	)
	startTime := time.Now()

	// Each goroutine owns exactly one slot.
	results := make([]Result, len(langs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, lang := range langs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			output, err := r.render(summary, lang)
			if err != nil {
				return fmt.Errorf("render %s report: %w", lang, err)
			}
			results[i] = Result{Language: lang, Output: output}

			r.logger.Debug("rendered report", "language", lang.String(), "bytes", len(output))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.logger.Debug("batch render complete",
		"languages", len(langs),
		"elapsed", time.Since(startTime),
	)

	return results, nil
}

func validateLanguages(langs []i18n.Language) error {
	for _, lang := range langs {
		if !lang.Valid() {
			return fmt.Errorf("%w: %s", i18n.ErrUnsupportedLanguage, lang)
		}
	}
	return nil
}

// render writes a single report into memory.
func (r *Renderer) render(summary *report.Summary, lang i18n.Language) (string, error) {
	var buf bytes.Buffer
	w, err := report.NewWriter(r.format, &buf, lang)
	if err != nil {
		return "", err
	}
	if _, err := w.Write(summary); err != nil {
		return "", err
	}
	return buf.String(), nil
}
