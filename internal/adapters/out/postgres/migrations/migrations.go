// Package migrations applies the forward-only SQL schema migrations at
// process startup. Migration files are embedded in the binary and executed
// through sql-migrate, which records applied migrations in a
// gorp_migrations table.
package migrations

import (
	"database/sql"
	"embed"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

// Apply runs all pending migrations against db and returns how many were
// applied. db must speak PostgreSQL.
func Apply(db *sql.DB) (int, error) {
	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "sql",
	}

	return migrate.Exec(db, "postgres", source, migrate.Up)
}

// Rollback undoes up to max applied migrations (0 means all) and returns how
// many were rolled back. Used by the test harness to reset schema between
// suites.
func Rollback(db *sql.DB, max int) (int, error) {
	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "sql",
	}

	return migrate.ExecMax(db, "postgres", source, migrate.Down, max)
}
