package tsvsql

import (
	"context"
	"database/sql"

	tsvsqldriver "github.com/nao1215/tsvsql/driver"
)

const (
	// DriverName is the database/sql name of the tsvsql driver
	DriverName = "tsvsql"
)

// Register registers the tsvsql driver with database/sql
func Register() {
	sql.Register(DriverName, tsvsqldriver.NewDriver(loadStatements))
}

func init() {
	// Auto-register the driver on import
	Register()
}

// loadStatements parses path with the default settings and returns its SQL
func loadStatements(ctx context.Context, path string) ([]string, error) {
	table, err := ParseFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return table.Statements(), nil
}

// Open parses the file at path and loads it into an in-memory SQLite
// database. The table is named after the file, as ParseFile does.
//
// Example usage:
//
//	db, err := tsvsql.Open(ctx, "data/users.tsv")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer db.Close()
//
//	rows, err := db.QueryContext(ctx, "SELECT name FROM users WHERE age > 30")
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close() // Ignore close error since we're already returning an error
		return nil, err
	}
	return db, nil
}
