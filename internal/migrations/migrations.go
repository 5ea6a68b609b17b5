// Package migrations embeds the SQL migrations for the Postgres storage
// driver, applied via goose at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
