package tsvsql

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// sqliteDriverName is the database/sql name of the modernc SQLite driver
const sqliteDriverName = "sqlite"

// OpenSQLite opens (creating if needed) the SQLite database at path
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, NewErrorContext("open sqlite", path).Error(err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close() // Ignore close error since we're already returning an error
		return nil, NewErrorContext("open sqlite", path).Error(err)
	}
	return db, nil
}

// LoadSQLite runs the CREATE TABLE and INSERT INTO statements of table in
// a single transaction
func LoadSQLite(ctx context.Context, db *sql.DB, table *Table) (err error) {
	ec := NewErrorContext("load sqlite", "").WithTable(table.Name())

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return ec.Error(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback() // Ignore rollback error; the original error is reported
		}
	}()

	for _, stmt := range table.Statements() {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return ec.WithDetails(fmt.Sprintf("executing %.40q", stmt)).Error(err)
		}
	}
	if err := tx.Commit(); err != nil {
		return ec.Error(err)
	}
	return nil
}
