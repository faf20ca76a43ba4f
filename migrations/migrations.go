// Package migrations embeds the sql-migrate schema files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
