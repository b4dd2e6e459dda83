package sqlite

import (
	"context"
	"database/sql"
)

// TableName is the single table holding tasks
const TableName = "todos"

const createTodosTable = `
	CREATE TABLE IF NOT EXISTS todos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		task TEXT NOT NULL
	)`

// EnsureSchema creates the todos table if it is absent. Safe to call on every start.
func (r *SQLiteRepository) EnsureSchema(ctx context.Context) error {
	return r.withTx(ctx, "ensure schema", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, createTodosTable); err != nil {
			return HandleDatabaseError("create todos table", err)
		}
		return nil
	})
}

// TableExists reports whether the todos table is present without creating it
func (r *SQLiteRepository) TableExists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.withConn(ctx, "check table", func(conn *sql.Conn) error {
		var err error
		exists, err = QueryExists(ctx, conn, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, TableName)
		return err
	})
	return exists, err
}
