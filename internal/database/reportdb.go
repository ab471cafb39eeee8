package database

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/sha3"
	_ "modernc.org/sqlite" // SQLite driver
)

// FileName is the name of the database file inside the database directory.
const FileName = "shapereport.db"

// ErrReportNotFound is returned when no report has the requested ID.
var ErrReportNotFound = errors.New("report not found")

// ReportDB provides SQLite-based storage for rendered reports.
type ReportDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures ReportDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a ReportDB in the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*ReportDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a missing file; mode=rwc allows it.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	rdb := &ReportDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := rdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return rdb, nil
}

// Close closes the database connection.
func (rdb *ReportDB) Close() error {
	return rdb.db.Close()
}

// Path returns the path of the database file.
func (rdb *ReportDB) Path() string {
	return rdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (rdb *ReportDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		language TEXT NOT NULL,
		format TEXT NOT NULL,
		shape_count INTEGER NOT NULL,
		total_area TEXT NOT NULL,
		total_perimeter TEXT NOT NULL,
		shapes_json TEXT NOT NULL,
		output TEXT NOT NULL,
		digest TEXT NOT NULL,
		UNIQUE(digest, language, format)
	);

	CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports(created_at);
	CREATE INDEX IF NOT EXISTS idx_reports_language ON reports(language);
	`

	_, err := rdb.db.ExecContext(context.Background(), schema)
	return err
}

// ReportRecord represents a stored report.
type ReportRecord struct {
	ID             int64
	CreatedAt      time.Time
	Language       string
	Format         string
	ShapeCount     int
	TotalArea      decimal.Decimal
	TotalPerimeter decimal.Decimal

	// Shapes is the JSON encoding of the input shapes.
	Shapes json.RawMessage

	// Output is the rendered report exactly as it was written.
	Output string

	// Digest is the hex SHA3-256 of Output, filled in by SaveReport.
	Digest string
}

// Digest returns the hex encoded SHA3-256 of a rendered report.
func Digest(output string) string {
	sum := sha3.Sum256([]byte(output))
	return hex.EncodeToString(sum[:])
}

// SaveReport stores a report and returns its ID.
// Saving the same output again in the same language and format returns
// the ID of the existing record instead of adding a duplicate.
func (rdb *ReportDB) SaveReport(ctx context.Context, record *ReportRecord) (int64, error) {
	record.Digest = Digest(record.Output)
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	shapes := record.Shapes
	if len(shapes) == 0 {
		shapes = json.RawMessage("[]")
	}

	query := `
	INSERT INTO reports (created_at, language, format, shape_count, total_area, total_perimeter, shapes_json, output, digest)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(digest, language, format) DO NOTHING
	`

	result, err := rdb.db.ExecContext(ctx, query,
		record.CreatedAt.Format(time.RFC3339Nano),
		record.Language,
		record.Format,
		record.ShapeCount,
		record.TotalArea.String(),
		record.TotalPerimeter.String(),
		string(shapes),
		record.Output,
		record.Digest,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save report: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to save report: %w", err)
	}
	if affected == 0 {
		return rdb.findByDigest(ctx, record.Digest, record.Language, record.Format)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to save report: %w", err)
	}
	record.ID = id
	return id, nil
}

// findByDigest returns the ID of an existing report.
func (rdb *ReportDB) findByDigest(ctx context.Context, digest, language, format string) (int64, error) {
	query := `SELECT id FROM reports WHERE digest = ? AND language = ? AND format = ?`

	var id int64
	if err := rdb.db.QueryRowContext(ctx, query, digest, language, format).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to find existing report: %w", err)
	}
	return id, nil
}

// reportColumns lists the columns scanned by scanReport, in order.
const reportColumns = `id, created_at, language, format, shape_count, total_area, total_perimeter, shapes_json, output, digest`

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanReport reads one report row.
func scanReport(row rowScanner) (*ReportRecord, error) {
	var (
		record    ReportRecord
		createdAt string
		shapes    string
	)

	err := row.Scan(
		&record.ID,
		&createdAt,
		&record.Language,
		&record.Format,
		&record.ShapeCount,
		&record.TotalArea,
		&record.TotalPerimeter,
		&shapes,
		&record.Output,
		&record.Digest,
	)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = parseTimestamp(createdAt)
	record.Shapes = json.RawMessage(shapes)
	return &record, nil
}

// GetReport retrieves a report by ID.
// Returns ErrReportNotFound when the ID does not exist.
func (rdb *ReportDB) GetReport(ctx context.Context, id int64) (*ReportRecord, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = ?`

	record, err := scanReport(rdb.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrReportNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return record, nil
}

// ListReports returns the most recent reports, newest first.
// A limit of zero or less returns every report.
func (rdb *ReportDB) ListReports(ctx context.Context, limit int) ([]*ReportRecord, error) {
	query := `SELECT ` + reportColumns + ` FROM reports ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := rdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var records []*ReportRecord
	for rows.Next() {
		record, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// CountReports returns the number of stored reports.
func (rdb *ReportDB) CountReports(ctx context.Context) (int, error) {
	var count int
	if err := rdb.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reports`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return count, nil
}

// timestampFormats lists formats SQLite timestamps may be stored in.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999",
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
