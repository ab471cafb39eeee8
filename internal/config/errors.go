package config

import "errors"

// Configuration errors.
// These are returned wrapped with the offending value; use errors.Is to
// check for them.
var (
	// ErrInvalidFormat is returned when the output format is not one of
	// html, text, markdown or json.
	ErrInvalidFormat = errors.New("invalid report format: use html, text, markdown or json")

	// ErrInvalidLanguage is returned when the report language cannot be
	// matched to Spanish, English or Portuguese. It always wraps
	// i18n.ErrUnsupportedLanguage.
	ErrInvalidLanguage = errors.New("invalid report language")

	// ErrMissingDBDir is returned when saving is requested without a
	// database directory.
	ErrMissingDBDir = errors.New("database directory is required to save reports")

	// ErrInvalidShapeArg is returned when a command line shape cannot be parsed.
	// Expected format is "kind:dim[,dim...]".
	ErrInvalidShapeArg = errors.New("invalid shape argument: expected kind:dimensions (e.g. square:2, trapezoid:6,4,3)")

	// ErrInvalidShapeSpec is returned when a shape in a shape file is invalid.
	ErrInvalidShapeSpec = errors.New("invalid shape")
)
