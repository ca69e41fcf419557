package repository

import "embed"

// migrationFS embeds SQL migration files from internal/repository/migrations.
//
//go:embed migrations/*.sql
var migrationFS embed.FS
