// Package engine applies parsed statements to a table store and owns the
// register-then-execute batch machinery.
package engine

import (
	"errors"
	"fmt"

	"localdb/internal/sql"
	"localdb/internal/storage"
)

var (
	// ErrColumnCountMismatch means an INSERT supplied a different number of
	// values than the table has columns.
	ErrColumnCountMismatch = errors.New("column count mismatch")

	// ErrNotAQuery means Query was given a statement that is not a SELECT.
	ErrNotAQuery = errors.New("not a query")
)

// Engine executes statements against a Store. It holds no state of its own
// beyond the batch registry; schemas and rows live in the store.
type Engine struct {
	store   storage.Store
	batches map[string][]sql.Statement
}

// New creates an engine over the given store.
func New(store storage.Store) *Engine {
	return &Engine{
		store:   store,
		batches: make(map[string][]sql.Statement),
	}
}

// Execute applies a single parsed statement to the store. A SELECT is legal
// here but its rows are discarded; use Query to get them back.
func (e *Engine) Execute(stmt sql.Statement) error {
	switch s := stmt.(type) {
	case *sql.CreateTableStmt:
		return e.executeCreate(s)
	case *sql.InsertStmt:
		return e.executeInsert(s)
	case *sql.SelectStmt:
		_, _, err := e.executeSelect(s)
		return err
	default:
		return fmt.Errorf("unsupported statement type %T", stmt)
	}
}

// Query parses a single line and, if it is a SELECT, executes it directly,
// bypassing batch registration. Any other statement kind is rejected.
func (e *Engine) Query(line string) ([]sql.Column, []sql.Row, error) {
	stmt, err := sql.Parse(line)
	if err != nil {
		return nil, nil, err
	}

	sel, ok := stmt.(*sql.SelectStmt)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %T", ErrNotAQuery, stmt)
	}
	return e.executeSelect(sel)
}
