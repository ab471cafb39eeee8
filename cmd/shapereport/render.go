package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/nao1215/shapereport/internal/batch"
	"github.com/nao1215/shapereport/internal/config"
	"github.com/nao1215/shapereport/internal/database"
	"github.com/nao1215/shapereport/internal/log"
	"github.com/nao1215/shapereport/internal/report"
	"github.com/nao1215/shapereport/internal/shape"
	"github.com/spf13/cobra"
)

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [kind:dimensions ...]",
		Short: "Render an area and perimeter report",
		Long: `Render prints a report of the given shapes: the number of shapes of each
kind with their summed areas and perimeters, followed by the totals.

Shapes are read from a YAML shape file and from the command line. Command
line shapes use the form kind:dimensions, with comma separated dimensions:

  square:side              circle:diameter       triangle:side
  rectangle:base,height    trapezoid:base,minorBase,height

When no shapes are given on the command line and no file is named with -f,
shapes.yaml is searched in the current directory and then in the XDG
config directory (~/.config/shapereport).

Examples:
  # Report two squares and a circle in Spanish
  shapereport render square:3 square:2 circle:4 --lang es

  # Render a shape file in every language as Markdown
  shapereport render -f shapes.yaml --all-languages --format markdown

  # Write the report to a file and keep it in the history database
  shapereport render -f shapes.yaml -o out/report.html --save`,
		Args: cobra.ArbitraryArgs,
		RunE: runRenderCmd,
	}

	// Input flags
	cmd.Flags().StringP("file", "f", "",
		"Shape file path (default: shapes.yaml in current or XDG config directory)")

	// Report flags
	cmd.Flags().StringP("lang", "l", config.DefaultLanguage,
		"Report language: es, en, pt or any BCP 47 tag")
	cmd.Flags().String("format", config.DefaultFormat,
		"Output format: html, text, markdown or json")
	cmd.Flags().Bool("all-languages", false,
		"Render the report once per supported language")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// History flags
	cmd.Flags().BoolP("save", "s", false,
		"Save rendered reports to the history database")
	cmd.Flags().String("db-dir", "",
		"History database directory (default: XDG data directory)")

	return cmd
}

// runRenderCmd executes the render command.
func runRenderCmd(cmd *cobra.Command, args []string) error {
	cfg, file, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	shapes, err := collectShapes(file, cfg.ShapeArgs)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runRender(ctx, cfg, shapes, cmd.OutOrStdout(), logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the shape file.
// The shape file is returned as well so its shapes can be rendered.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, *config.File, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error

	cfg.InputFile, err = flags.GetString("file")
	if err != nil {
		return nil, nil, err
	}

	cfg.Language, err = flags.GetString("lang")
	if err != nil {
		return nil, nil, err
	}

	cfg.Format, err = flags.GetString("format")
	if err != nil {
		return nil, nil, err
	}

	cfg.AllLanguages, err = flags.GetBool("all-languages")
	if err != nil {
		return nil, nil, err
	}

	cfg.ReportFile, err = flags.GetString("output")
	if err != nil {
		return nil, nil, err
	}

	cfg.SaveToDB, err = flags.GetBool("save")
	if err != nil {
		return nil, nil, err
	}

	dbDir, err := flags.GetString("db-dir")
	if err != nil {
		return nil, nil, err
	}
	if dbDir != "" {
		cfg.DBDir = dbDir
	}

	cfg.Verbose = getVerboseFlag(cmd)
	cfg.ShapeArgs = args

	// An explicitly named file must exist. The default locations are only
	// searched when the command line holds no shapes.
	explicitFile := cfg.InputFile != ""
	var file *config.File
	if explicitFile || len(args) == 0 {
		if path := config.FindShapeFile(cfg.InputFile); path != "" {
			file, err = config.LoadShapeFile(path)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to load shape file %s: %w", path, err)
			}
		} else if explicitFile {
			return nil, nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.InputFile)
		}
	}

	cfg.ApplyFile(file, flags.Changed("lang"), flags.Changed("format"))

	return cfg, file, nil
}

// collectShapes returns the shapes of the file followed by the command
// line shapes.
func collectShapes(file *config.File, args []string) ([]shape.Shape, error) {
	var shapes []shape.Shape
	if file != nil {
		fromFile, err := file.ShapeList()
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, fromFile...)
	}

	fromArgs, err := config.ParseShapeArgs(args)
	if err != nil {
		return nil, err
	}
	return append(shapes, fromArgs...), nil
}

// runRender renders, outputs and optionally saves the reports.
func runRender(ctx context.Context, cfg *config.Config, shapes []shape.Shape, stdout io.Writer, logger *slog.Logger) error {
	format, err := cfg.ReportFormat()
	if err != nil {
		return err
	}
	langs, err := cfg.ReportLanguages()
	if err != nil {
		return err
	}

	summary, err := report.Aggregate(shapes)
	if err != nil {
		return err
	}

	logger.Debug("rendering report",
		"shapes", summary.Count,
		"area", summary.Area,
		"perimeter", summary.Perimeter,
		"languages", len(langs),
		"format", string(format),
	)

	renderer := batch.NewRenderer(
		batch.WithFormat(format),
		batch.WithLogger(logger),
	)
	results, err := renderer.RenderSummary(ctx, summary, langs)
	if err != nil {
		return err
	}

	if err := outputReports(cfg, stdout, results); err != nil {
		return err
	}

	if cfg.SaveToDB {
		return saveReports(ctx, cfg, shapes, summary, format, results, logger)
	}
	return nil
}

// outputReports writes every rendered report to the report file or stdout.
// Each report ends with a newline.
func outputReports(cfg *config.Config, stdout io.Writer, results []batch.Result) error {
	output := stdout
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	for _, res := range results {
		text := res.Output
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		if _, err := io.WriteString(output, text); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

// saveReports stores every rendered report in the history database.
func saveReports(
	ctx context.Context,
	cfg *config.Config,
	shapes []shape.Shape,
	summary *report.Summary,
	format report.Format,
	results []batch.Result,
	logger *slog.Logger,
) error {
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	specs := make([]config.ShapeSpec, len(shapes))
	for i, s := range shapes {
		specs[i] = config.SpecFromShape(s)
	}
	shapesJSON, err := json.Marshal(specs)
	if err != nil {
		return fmt.Errorf("failed to encode shapes: %w", err)
	}

	for _, res := range results {
		id, err := db.SaveReport(ctx, &database.ReportRecord{
			Language:       res.Language.String(),
			Format:         string(format),
			ShapeCount:     summary.Count,
			TotalArea:      summary.Area,
			TotalPerimeter: summary.Perimeter,
			Shapes:         shapesJSON,
			Output:         res.Output,
		})
		if err != nil {
			return err
		}
		logger.Info("report saved to database",
			"id", id,
			"language", res.Language.String(),
			"db", db.Path(),
		)
	}
	return nil
}
