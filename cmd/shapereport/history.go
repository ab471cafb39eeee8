package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nao1215/shapereport/internal/config"
	"github.com/nao1215/shapereport/internal/database"
	"github.com/nao1215/shapereport/internal/report"
	"github.com/spf13/cobra"
)

// errNoHistory is returned by openHistory when no database exists yet.
var errNoHistory = errors.New("no saved reports")

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List or reprint saved reports",
		Long: `History shows reports saved with "shapereport render --save".

Without --id, the most recent reports are listed. With --id, the stored
report is printed exactly as it was rendered.

Examples:
  # List the 20 most recent reports
  shapereport history

  # Reprint report 3
  shapereport history --id 3

  # List every saved report as JSON
  shapereport history --limit 0 --json`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().Int64P("id", "i", 0,
		"Show the saved report with this ID")
	cmd.Flags().IntP("limit", "n", config.DefaultHistoryLimit,
		"Maximum number of reports to list (0 lists all)")
	cmd.Flags().BoolP("json", "j", false,
		"Output as JSON")
	cmd.Flags().String("db-dir", "",
		"History database directory (default: XDG data directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	id, err := cmd.Flags().GetInt64("id")
	if err != nil {
		return err
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}
	if dbDir == "" {
		dbDir = config.XDGDataDir()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	db, err := openHistory(dbDir)
	if errors.Is(err, errNoHistory) {
		fmt.Fprintln(out, "No saved reports found.")
		return nil
	}
	if err != nil {
		return err
	}
	defer db.Close()

	if id > 0 {
		return showReport(ctx, db, id, out, jsonOutput)
	}
	return listReports(ctx, db, limit, out, jsonOutput)
}

// openHistory opens an existing history database without creating one.
func openHistory(dbDir string) (*database.ReportDB, error) {
	if _, err := os.Stat(filepath.Join(dbDir, database.FileName)); os.IsNotExist(err) {
		return nil, errNoHistory
	}

	db, err := database.Open(dbDir, database.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// historyEntry is the JSON form of a saved report.
type historyEntry struct {
	ID             int64           `json:"id"`
	CreatedAt      time.Time       `json:"createdAt"`
	Language       string          `json:"language"`
	Format         string          `json:"format"`
	ShapeCount     int             `json:"shapeCount"`
	TotalArea      string          `json:"totalArea"`
	TotalPerimeter string          `json:"totalPerimeter"`
	Digest         string          `json:"digest"`
	Shapes         json.RawMessage `json:"shapes"`
	Output         string          `json:"output,omitempty"`
}

func newHistoryEntry(r *database.ReportRecord, withOutput bool) historyEntry {
	e := historyEntry{
		ID:             r.ID,
		CreatedAt:      r.CreatedAt,
		Language:       r.Language,
		Format:         r.Format,
		ShapeCount:     r.ShapeCount,
		TotalArea:      report.FormatTotal(r.TotalArea),
		TotalPerimeter: report.FormatTotal(r.TotalPerimeter),
		Digest:         r.Digest,
		Shapes:         r.Shapes,
	}
	if withOutput {
		e.Output = r.Output
	}
	return e
}

// writeJSON writes v as indented JSON.
func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// showReport prints one saved report.
func showReport(ctx context.Context, db *database.ReportDB, id int64, out io.Writer, jsonOutput bool) error {
	record, err := db.GetReport(ctx, id)
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(out, newHistoryEntry(record, true))
	}

	text := record.Output
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err = io.WriteString(out, text)
	return err
}

// listReports prints a table of the most recent saved reports.
func listReports(ctx context.Context, db *database.ReportDB, limit int, out io.Writer, jsonOutput bool) error {
	records, err := db.ListReports(ctx, limit)
	if err != nil {
		return err
	}

	if jsonOutput {
		entries := make([]historyEntry, 0, len(records))
		for _, r := range records {
			entries = append(entries, newHistoryEntry(r, false))
		}
		return writeJSON(out, entries)
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No saved reports found.")
		return nil
	}

	total, err := db.CountReports(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Saved reports (%d of %d):\n\n", len(records), total)
	fmt.Fprintf(out, "  %-6s  %-20s  %-4s  %-8s  %6s  %12s  %12s\n",
		"ID", "Date", "Lang", "Format", "Shapes", "Area", "Perimeter")
	for _, r := range records {
		fmt.Fprintf(out, "  %-6d  %-20s  %-4s  %-8s  %6d  %12s  %12s\n",
			r.ID,
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			r.Language,
			r.Format,
			r.ShapeCount,
			report.FormatTotal(r.TotalArea),
			report.FormatTotal(r.TotalPerimeter),
		)
	}
	return nil
}
