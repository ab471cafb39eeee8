// Package log provides logging for shapereport, built on top of the
// standard slog package.
//
// This package extends slog to provide:
//   - Decimal attributes rounded to report precision, so logged areas and
//     perimeters read the same as the values in a rendered report
//   - Configurable log levels with verbose mode support
//   - Text or JSON output
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	logger.Debug("aggregated",
//	    "area", summary.Area, // logged as area=25.57
//	)
//
//	slog.SetDefault(logger)
package log
