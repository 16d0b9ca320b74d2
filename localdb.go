// Package localdb is an embedded, file-backed data store with a small
// SQL-like command surface: table creation, row insertion and wildcard
// selection over a single JSON document on disk.
//
// Statements are registered as batches and executed later by an opaque
// code, or run directly through Query for SELECTs:
//
//	db, err := localdb.Create("app.db")
//	if err != nil { ... }
//	code, err := db.AddLines([]string{
//		"CREATE TABLE users (id UUID, name TEXT);",
//		"INSERT INTO users VALUES ('11111111-1111-1111-1111-111111111111', 'kk');",
//	})
//	if err != nil { ... }
//	if err := db.Exec(code); err != nil { ... }
//	res, err := db.Query("SELECT * FROM users;")
//
// A DB is exclusively owned by its caller: operations are synchronous, run
// to completion, and are not safe for concurrent use. Two handles opened on
// the same path are not coordinated; the last writer wins.
package localdb

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"localdb/internal/engine"
	"localdb/internal/sql"
	"localdb/internal/storage/docfile"
	"localdb/internal/storage/memstore"
)

// Aliases for the types that cross the public surface, so callers never
// import internal packages.
type (
	// ColumnType is the declared type of a table column.
	ColumnType = sql.ColumnType
	// Column is one column's name and type.
	Column = sql.Column
	// Value is a single typed cell.
	Value = sql.Value
	// Row is one record, values in schema column order.
	Row = sql.Row
)

const (
	TypeUUID = sql.TypeUUID
	TypeText = sql.TypeText
	TypeInt  = sql.TypeInt
)

// Result is the outcome of a SELECT: the table's columns in declared order
// and a snapshot of its rows in insertion order, independent of later
// mutation.
type Result struct {
	Columns []Column
	Rows    []Row
}

// DB is an open database handle over one document file.
type DB struct {
	path  string
	store *memstore.Store
	eng   *engine.Engine
}

// Create opens the database at path, writing a fresh empty document file
// first if none exists. An existing file is loaded as-is.
func Create(path string) (*DB, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := docfile.Create(path); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("%w: %w", docfile.ErrIO, err)
	}
	return Open(path)
}

// Open loads an existing database file. The file must exist and hold a
// valid document.
func Open(path string) (*DB, error) {
	doc, err := docfile.Load(path)
	if err != nil {
		return nil, err
	}

	store := memstore.New()
	if err := store.Restore(doc); err != nil {
		return nil, fmt.Errorf("restore %s: %w", path, err)
	}

	return &DB{
		path:  path,
		store: store,
		eng:   engine.New(store),
	}, nil
}

// Path returns the document file backing this handle.
func (db *DB) Path() string {
	return db.path
}

// AddLines parses every line eagerly and registers the statement sequence
// under a new opaque code for later execution. Registration is
// all-or-nothing: on the first parse error nothing is registered. Codes are
// process-local, never evicted, and replayable.
func (db *DB) AddLines(lines []string) (string, error) {
	return db.eng.AddLines(lines)
}

// Exec runs the batch registered under code in order, persisting the
// document after each applied statement. The first failure aborts the rest
// of the batch; statements applied before it stay applied and persisted.
func (db *DB) Exec(code string) error {
	return db.eng.Exec(code, db.Save)
}

// Query parses a single SELECT statement and returns its rows directly,
// bypassing batch registration. Any other statement kind fails with
// ErrNotAQuery.
func (db *DB) Query(line string) (*Result, error) {
	cols, rows, err := db.eng.Query(line)
	if err != nil {
		return nil, err
	}
	return &Result{Columns: cols, Rows: rows}, nil
}

// Save writes the current contents back to the document file.
func (db *DB) Save() error {
	return docfile.Save(db.path, db.store.Snapshot())
}
