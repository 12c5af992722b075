// Package mca embeds the SQL migrations shipped with the binary.
package mca

import "embed"

// Migrations holds the goose migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
