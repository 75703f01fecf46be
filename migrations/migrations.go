// File: migrations/migrations.go

// Package migrations embeds the goose SQL migrations for the profiles, creator_pages and
// causes collections.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
