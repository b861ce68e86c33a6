// Package migrations embeds the SQL schema files applied at server start.
package migrations

import "embed"

// FS holds every *.sql file in this directory.
//
//go:embed *.sql
var FS embed.FS
