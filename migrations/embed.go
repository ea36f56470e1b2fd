// Package migrations embeds the PostgreSQL schema migrations so the binaries
// can migrate without a checkout of this directory.
package migrations

import "embed"

// FS holds every *.sql migration in this directory
//
//go:embed *.sql
var FS embed.FS
