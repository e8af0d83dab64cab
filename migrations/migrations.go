// Package migrations embeds the SQL migration files so the migrate
// binary ships self-contained.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
