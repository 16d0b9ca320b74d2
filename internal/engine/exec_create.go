package engine

import "localdb/internal/sql"

// executeCreate registers the schema and an empty row sequence in the store.
func (e *Engine) executeCreate(stmt *sql.CreateTableStmt) error {
	return e.store.CreateTable(stmt.Table, stmt.Columns)
}
