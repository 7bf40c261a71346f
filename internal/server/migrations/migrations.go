// Package migrations embeds the goose SQL migrations for the SQL storage
// backends. Each dialect lives in its own directory.
package migrations

import "embed"

// Dialect directories inside Migrations.
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS
