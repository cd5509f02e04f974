package migrations

import "embed"

// FS holds the goose migrations for the tables the invoice query reads.
//
//go:embed *.sql
var FS embed.FS
