package storage

import (
	"errors"

	"localdb/internal/sql"
)

var (
	// ErrTableNotFound means a statement referenced a table that was never
	// created under this handle.
	ErrTableNotFound = errors.New("table not found")

	// ErrTableAlreadyExists means CREATE TABLE used a name that is taken.
	// There is no implicit redefinition.
	ErrTableAlreadyExists = errors.New("table already exists")
)

// Store is a table store: per-table schemas plus append-only row sequences.
//
// Different implementations are possible; the in-memory one in memstore is
// the only one today, with persistence handled by snapshotting the whole
// store to a Document.
type Store interface {
	// CreateTable registers a schema under name and creates an empty row
	// sequence for it. Fails with ErrTableAlreadyExists if the name is taken.
	CreateTable(name string, cols []sql.Column) error

	// Schema returns the column definitions for a table, in declared order.
	Schema(name string) ([]sql.Column, error)

	// Append adds one row to a table. The row must already be checked
	// against the schema; Append only requires the table to exist.
	Append(name string, row sql.Row) error

	// Scan returns the table's columns and a copy of all its rows in
	// insertion order. The copy is independent of later mutation.
	Scan(name string) (cols []sql.Column, rows []sql.Row, err error)

	// Snapshot captures the whole store as a persistable Document.
	Snapshot() Document

	// Restore replaces the store's contents with the Document's.
	Restore(doc Document) error
}
