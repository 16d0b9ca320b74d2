package engine

import "localdb/internal/sql"

// executeSelect returns the full row sequence of a table as a snapshot, in
// insertion order. There is no filtering or projection.
func (e *Engine) executeSelect(stmt *sql.SelectStmt) ([]sql.Column, []sql.Row, error) {
	return e.store.Scan(stmt.Table)
}
