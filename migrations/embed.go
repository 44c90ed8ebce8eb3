// Package migrations embeds the SQL migration files so the server binary
// can run them at startup without a separate migration step.
package migrations

import "embed"

//go:embed *.sql
var Embed embed.FS
