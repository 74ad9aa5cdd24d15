// Package sqlite mirrors built registries into a SQLite database.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. Every build is kept: the builds table records when and
// where a registry was scraped, and the elements table holds its rows.
// LoadRegistry returns the most recent build, which makes the database an
// alternative to the JSON file for the query commands.
//
// # Schema
//
// The schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files.
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
