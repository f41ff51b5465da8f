// Package migrations embeds the SQL schema applied when MIGRATIONS=1.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
