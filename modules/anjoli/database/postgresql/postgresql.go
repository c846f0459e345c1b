package postgresql

import "embed"

// Migrations holds the anjoli schema migrations, so the binary can migrate without the source tree.
//
//go:embed migrations/*.sql
var Migrations embed.FS

const MigrationsDir = "migrations"
