package pgstore

import "embed"

// Migrations holds the goose migrations under MigrationsDir.
//
//go:embed migrations/*.sql
var Migrations embed.FS

const MigrationsDir = "migrations"
