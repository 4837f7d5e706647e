// Package migrations embeds the goose migration set for the client's local
// SQLite database. The client schema is maintained independently from the
// server schema so the two sides can deploy and evolve separately.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
