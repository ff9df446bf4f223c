package migration

import "embed"

//go:embed scripts/mysql/*.sql scripts/sqlite/*.sql
var scripts embed.FS
