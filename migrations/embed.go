// Package migrations embeds the SQL migration files applied by the init-db
// command before the service is started.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
