// Package memstore keeps every table in memory: the schema and the
// append-only row sequence live together, keyed by table name, with
// creation order preserved so snapshots are reproducible.
package memstore

import (
	"fmt"

	"localdb/internal/sql"
	"localdb/internal/storage"
)

type table struct {
	cols []sql.Column
	rows []sql.Row
}

// Store is the in-memory table store. It is exclusively owned by one open
// database handle and is not safe for concurrent use; every operation runs
// to completion before returning.
type Store struct {
	tables map[string]*table
	order  []string // table names in creation order
}

var _ storage.Store = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		tables: make(map[string]*table),
	}
}

// CreateTable registers a new table with the given schema.
func (s *Store) CreateTable(name string, cols []sql.Column) error {
	if _, exists := s.tables[name]; exists {
		return fmt.Errorf("%w: %q", storage.ErrTableAlreadyExists, name)
	}

	s.tables[name] = &table{
		cols: cols,
		rows: make([]sql.Row, 0),
	}
	s.order = append(s.order, name)
	return nil
}

// Schema returns the column definitions for a table.
func (s *Store) Schema(name string) ([]sql.Column, error) {
	t, ok := s.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", storage.ErrTableNotFound, name)
	}
	return t.cols, nil
}

// Append adds a row to the end of a table's row sequence. Rows are never
// reordered or deleted afterwards.
func (s *Store) Append(name string, row sql.Row) error {
	t, ok := s.tables[name]
	if !ok {
		return fmt.Errorf("%w: %q", storage.ErrTableNotFound, name)
	}

	t.rows = append(t.rows, row)
	return nil
}

// Scan returns the table's columns and all of its rows in insertion order.
// The rows are a deep copy, independent of later appends.
func (s *Store) Scan(name string) ([]sql.Column, []sql.Row, error) {
	t, ok := s.tables[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", storage.ErrTableNotFound, name)
	}

	return t.cols, copyRows(t.rows), nil
}

// Snapshot captures the whole store as a Document, tables in creation order.
func (s *Store) Snapshot() storage.Document {
	doc := storage.Document{
		Tables: make([]storage.TableData, 0, len(s.order)),
	}
	for _, name := range s.order {
		t := s.tables[name]
		doc.Tables = append(doc.Tables, storage.TableData{
			Name:    name,
			Columns: t.cols,
			Rows:    copyRows(t.rows),
		})
	}
	return doc
}

// Restore replaces the store's contents with the Document's.
func (s *Store) Restore(doc storage.Document) error {
	tables := make(map[string]*table, len(doc.Tables))
	order := make([]string, 0, len(doc.Tables))

	for _, td := range doc.Tables {
		if _, exists := tables[td.Name]; exists {
			return fmt.Errorf("%w: %q", storage.ErrTableAlreadyExists, td.Name)
		}
		tables[td.Name] = &table{
			cols: td.Columns,
			rows: copyRows(td.Rows),
		}
		order = append(order, td.Name)
	}

	s.tables = tables
	s.order = order
	return nil
}

func copyRows(rows []sql.Row) []sql.Row {
	out := make([]sql.Row, len(rows))
	for i, r := range rows {
		rowCopy := make(sql.Row, len(r))
		copy(rowCopy, r)
		out[i] = rowCopy
	}
	return out
}
