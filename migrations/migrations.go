// Package migrations embeds the versioned SQL schema for the blog database.
package migrations

import "embed"

// FS holds every *.sql migration, named <version>_<title>.<up|down>.sql.
//
//go:embed *.sql
var FS embed.FS
