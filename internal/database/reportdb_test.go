package database

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

// setupTestDB creates a temporary database for testing.
func setupTestDB(t *testing.T) (*ReportDB, func()) {
	t.Helper()

	tmpDir := t.TempDir()
	db, err := Open(tmpDir, DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	cleanup := func() {
		_ = db.Close()
	}

	return db, cleanup
}

func newRecord(language, output string) *ReportRecord {
	return &ReportRecord{
		Language:       language,
		Format:         "html",
		ShapeCount:     3,
		TotalArea:      decimal.RequireFromString("25.566370614359172"),
		TotalPerimeter: decimal.RequireFromString("32.566370614359172"),
		Shapes:         json.RawMessage(`[{"kind":"square","base":3}]`),
		Output:         output,
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates directory and file", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "data")
		db, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer db.Close()

		if _, err := os.Stat(filepath.Join(dir, FileName)); err != nil {
			t.Errorf("expected database file to exist: %v", err)
		}
		if db.Path() != filepath.Join(dir, FileName) {
			t.Errorf("Path() = %q", db.Path())
		}
	})

	t.Run("missing database without create", func(t *testing.T) {
		t.Parallel()

		_, err := Open(t.TempDir(), Options{CreateIfNotExists: false})
		if err == nil {
			t.Fatal("expected error for missing database")
		}
	})

	t.Run("reopen existing database", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		db, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if _, err := db.SaveReport(t.Context(), newRecord("en", "<h1>x</h1>")); err != nil {
			t.Fatalf("SaveReport() error = %v", err)
		}
		_ = db.Close()

		db, err = Open(dir, Options{CreateIfNotExists: false})
		if err != nil {
			t.Fatalf("reopen error = %v", err)
		}
		defer db.Close()

		count, err := db.CountReports(t.Context())
		if err != nil {
			t.Fatalf("CountReports() error = %v", err)
		}
		if count != 1 {
			t.Errorf("CountReports() = %d, want 1", count)
		}
	})
}

func TestSaveAndGetReport(t *testing.T) {
	t.Parallel()

	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()
	record := newRecord("en", "<h1>Shapes report</h1>")

	id, err := db.SaveReport(ctx, record)
	if err != nil {
		t.Fatalf("SaveReport() error = %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero ID")
	}
	if record.Digest != Digest(record.Output) {
		t.Errorf("expected digest to be filled in, got %q", record.Digest)
	}

	got, err := db.GetReport(ctx, id)
	if err != nil {
		t.Fatalf("GetReport() error = %v", err)
	}

	if got.Language != "en" || got.Format != "html" {
		t.Errorf("unexpected language/format: %s/%s", got.Language, got.Format)
	}
	if got.ShapeCount != 3 {
		t.Errorf("ShapeCount = %d, want 3", got.ShapeCount)
	}
	if !got.TotalArea.Equal(record.TotalArea) {
		t.Errorf("TotalArea = %s, want %s", got.TotalArea, record.TotalArea)
	}
	if !got.TotalPerimeter.Equal(record.TotalPerimeter) {
		t.Errorf("TotalPerimeter = %s, want %s", got.TotalPerimeter, record.TotalPerimeter)
	}
	if string(got.Shapes) != string(record.Shapes) {
		t.Errorf("Shapes = %s, want %s", got.Shapes, record.Shapes)
	}
	if got.Output != record.Output {
		t.Errorf("Output = %q, want %q", got.Output, record.Output)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestSaveReport_Deduplicates(t *testing.T) {
	t.Parallel()

	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()

	first, err := db.SaveReport(ctx, newRecord("en", "<h1>same</h1>"))
	if err != nil {
		t.Fatalf("SaveReport() error = %v", err)
	}
	second, err := db.SaveReport(ctx, newRecord("en", "<h1>same</h1>"))
	if err != nil {
		t.Fatalf("SaveReport() error = %v", err)
	}
	if first != second {
		t.Errorf("expected identical report to reuse ID %d, got %d", first, second)
	}

	// Same output in another language is a different report.
	third, err := db.SaveReport(ctx, newRecord("es", "<h1>same</h1>"))
	if err != nil {
		t.Fatalf("SaveReport() error = %v", err)
	}
	if third == first {
		t.Error("expected a new ID for a different language")
	}

	count, err := db.CountReports(ctx)
	if err != nil {
		t.Fatalf("CountReports() error = %v", err)
	}
	if count != 2 {
		t.Errorf("CountReports() = %d, want 2", count)
	}
}

func TestSaveReport_EmptyShapes(t *testing.T) {
	t.Parallel()

	db, cleanup := setupTestDB(t)
	defer cleanup()

	record := newRecord("pt", "<h1>Lista vazia de formas!</h1>")
	record.Shapes = nil
	record.ShapeCount = 0

	id, err := db.SaveReport(t.Context(), record)
	if err != nil {
		t.Fatalf("SaveReport() error = %v", err)
	}

	got, err := db.GetReport(t.Context(), id)
	if err != nil {
		t.Fatalf("GetReport() error = %v", err)
	}
	if string(got.Shapes) != "[]" {
		t.Errorf("Shapes = %s, want []", got.Shapes)
	}
}

func TestGetReport_NotFound(t *testing.T) {
	t.Parallel()

	db, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := db.GetReport(t.Context(), 42)
	if !errors.Is(err, ErrReportNotFound) {
		t.Errorf("expected ErrReportNotFound, got %v", err)
	}
}

func TestListReports(t *testing.T) {
	t.Parallel()

	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()
	outputs := []string{"<h1>a</h1>", "<h1>b</h1>", "<h1>c</h1>"}
	for _, out := range outputs {
		if _, err := db.SaveReport(ctx, newRecord("en", out)); err != nil {
			t.Fatalf("SaveReport() error = %v", err)
		}
	}

	t.Run("all newest first", func(t *testing.T) {
		records, err := db.ListReports(ctx, 0)
		if err != nil {
			t.Fatalf("ListReports() error = %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("expected 3 records, got %d", len(records))
		}
		if records[0].Output != "<h1>c</h1>" || records[2].Output != "<h1>a</h1>" {
			t.Errorf("unexpected order: %q, %q", records[0].Output, records[2].Output)
		}
	})

	t.Run("limited", func(t *testing.T) {
		records, err := db.ListReports(ctx, 2)
		if err != nil {
			t.Fatalf("ListReports() error = %v", err)
		}
		if len(records) != 2 {
			t.Errorf("expected 2 records, got %d", len(records))
		}
	})
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		zero  bool
	}{
		{"rfc3339 nano", "2026-01-02T15:04:05.123456789Z", false},
		{"rfc3339", "2026-01-02T15:04:05Z", false},
		{"sqlite datetime", "2026-01-02 15:04:05", false},
		{"garbage", "not a time", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseTimestamp(tt.input)
			if got.IsZero() != tt.zero {
				t.Errorf("parseTimestamp(%q) = %v", tt.input, got)
			}
			if !tt.zero && got.Year() != 2026 {
				t.Errorf("unexpected year: %v", got)
			}
		})
	}
}
