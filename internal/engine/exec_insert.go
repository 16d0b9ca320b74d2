package engine

import (
	"fmt"

	"localdb/internal/sql"
)

// executeInsert checks the statement's literals against the table's schema
// and appends the resulting row. The parser left the literals untyped, so
// this is where count and type checking happen.
func (e *Engine) executeInsert(stmt *sql.InsertStmt) error {
	cols, err := e.store.Schema(stmt.Table)
	if err != nil {
		return fmt.Errorf("INSERT into %s: %w", stmt.Table, err)
	}

	if len(stmt.Values) != len(cols) {
		return fmt.Errorf("INSERT into %s: %w: %d values for %d columns",
			stmt.Table, ErrColumnCountMismatch, len(stmt.Values), len(cols))
	}

	row := make(sql.Row, 0, len(cols))
	for i, col := range cols {
		v, err := stmt.Values[i].Resolve(col.Type)
		if err != nil {
			return fmt.Errorf("INSERT into %s: column %q: %w", stmt.Table, col.Name, err)
		}
		row = append(row, v)
	}

	return e.store.Append(stmt.Table, row)
}
