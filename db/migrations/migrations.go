// Package migrations embeds the schema migration files so the
// migration CLI and tests run the same SQL from the binary.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
