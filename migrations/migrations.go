// Package migrations embeds the SQL schema so init-db works from any
// working directory.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
