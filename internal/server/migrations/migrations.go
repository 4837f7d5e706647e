// Package migrations embeds the goose migration set for the server's
// PostgreSQL replica. Deliberately independent from the client migration set:
// the two sides deploy and evolve separately and only share the JSON wire
// contract.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
