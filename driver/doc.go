// Package driver provides a database/sql driver that opens a tab separated
// file as an in-memory SQLite database.
//
// The file is parsed by a Loader, which returns the CREATE TABLE and
// INSERT INTO statements for it; the statements are executed on a fresh
// in-memory database for every connection. The root tsvsql package
// registers the driver under the name "tsvsql":
//
//	import "github.com/nao1215/tsvsql"
//	db, err := tsvsql.Open(ctx, "users.tsv")
package driver
