// Package sqlite provides SQLite-backed persistence for site content.
//
// A single Store owns the database connection and hands out typed views
// implementing the store interfaces in ports/driven. Schema changes are
// applied through embedded, numbered migration files.
package sqlite
