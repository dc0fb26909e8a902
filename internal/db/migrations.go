package db

import "embed"

// Migrations holds the goose SQL migrations, applied by app.Migrator.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations holding the files.
const MigrationsDir = "migrations"
