// Package sqlite provides a SQLite-based implementation of driven.StringStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// Derived properties are stored as plain columns so predicates compile to a
// WHERE clause; the character frequency map is stored as an ordered JSON object.
//
// # Data Location
//
// By default, the database is stored at ~/.strindex/data/strindex.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
