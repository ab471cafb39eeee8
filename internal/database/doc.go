// Package database provides SQLite-based storage of rendered reports.
//
// Every saved report keeps its language, output format, totals, the shapes
// it was rendered from (as JSON) and the rendered output itself, so that
// the history command can list and reprint past reports.
//
// The store uses modernc.org/sqlite, a CGO-free driver, and lives in a
// single file under the XDG data directory by default.
package database
