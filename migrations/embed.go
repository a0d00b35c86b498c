// Package migrations встраивает SQL-миграции в бинарь, чтобы сервер
// мог применять их сам при старте.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
