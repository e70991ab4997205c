// Package db embeds the SQL migrations so the server binary can bring the
// schema up to date at startup without shipping loose files.
package db

import "embed"

// Migrations holds the goose migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
