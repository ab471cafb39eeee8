package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/nao1215/shapereport/internal/i18n"
	"github.com/nao1215/shapereport/internal/report"
)

// Default configuration values.
const (
	// DefaultLanguage is used when neither a flag nor the shape file names one.
	DefaultLanguage = "en"

	// DefaultFormat is the canonical report markup.
	DefaultFormat = string(report.FormatHTML)

	// DefaultHistoryLimit is the number of saved reports listed by default.
	DefaultHistoryLimit = 20

	// AppName is the application name used for XDG directory paths.
	AppName = "shapereport"
)

// Config holds all configuration options for shapereport.
// It is populated from CLI flags and the optional shape file, then passed
// explicitly to the components that need it.
type Config struct {
	// Language is a language name or BCP 47 tag, e.g. "es", "pt-BR", "english".
	Language string

	// Format is the output format name: html, text, markdown or json.
	Format string

	// InputFile is the YAML shape file to read. Empty means search the
	// default locations when no shapes are given on the command line.
	InputFile string

	// ShapeArgs are shapes given on the command line, e.g. "square:2".
	// They are appended after the shapes of InputFile.
	ShapeArgs []string

	// ReportFile is the output file path for the report.
	// When empty, the report is written to stdout.
	ReportFile string

	// AllLanguages renders the report once per supported language.
	// Language is ignored when set.
	AllLanguages bool

	// SaveToDB stores every rendered report in the history database.
	SaveToDB bool

	// DBDir is the directory holding the history database.
	// Defaults to the XDG data directory.
	DBDir string

	// Verbose enables detailed log output using slog.LevelDebug.
	Verbose bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Language: DefaultLanguage,
		Format:   DefaultFormat,
		DBDir:    XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for shapereport.
// On Linux: ~/.local/share/shapereport
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for shapereport.
// On Linux: ~/.config/shapereport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as a wrapped sentinel error.
func (c *Config) Validate() error {
	if _, err := c.ReportFormat(); err != nil {
		return err
	}

	if !c.AllLanguages {
		if _, err := c.ReportLanguage(); err != nil {
			return err
		}
	}

	if c.SaveToDB && c.DBDir == "" {
		return ErrMissingDBDir
	}

	return nil
}

// ReportFormat parses Format.
func (c *Config) ReportFormat() (report.Format, error) {
	f, err := report.ParseFormat(c.Format)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
	return f, nil
}

// ReportLanguage parses Language.
func (c *Config) ReportLanguage() (i18n.Language, error) {
	l, err := i18n.ParseLanguage(c.Language)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidLanguage, err)
	}
	return l, nil
}

// ReportLanguages returns the languages to render: every supported
// language when AllLanguages is set, otherwise the parsed Language.
func (c *Config) ReportLanguages() ([]i18n.Language, error) {
	if c.AllLanguages {
		return i18n.Languages(), nil
	}

	l, err := c.ReportLanguage()
	if err != nil {
		return nil, err
	}
	return []i18n.Language{l}, nil
}

// ApplyFile fills Language and Format from a shape file when they were
// not set explicitly. explicitLanguage and explicitFormat report whether
// the corresponding flags were given.
func (c *Config) ApplyFile(f *File, explicitLanguage, explicitFormat bool) {
	if f == nil {
		return
	}
	if !explicitLanguage && f.Language != "" {
		c.Language = f.Language
	}
	if !explicitFormat && f.Format != "" {
		c.Format = f.Format
	}
}
