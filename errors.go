package localdb

import (
	"localdb/internal/engine"
	"localdb/internal/sql"
	"localdb/internal/storage"
	"localdb/internal/storage/docfile"
)

// The full error taxonomy, re-exported so callers can match with errors.Is
// and errors.As without importing internal packages. Nothing is silently
// swallowed or retried; every fallible operation returns one of these,
// usually wrapped with context.
var (
	// ErrIO wraps file open/read/write failures.
	ErrIO = docfile.ErrIO

	// ErrFormat means the persisted document does not match the expected
	// JSON shape.
	ErrFormat = storage.ErrFormat

	// ErrTableNotFound means a statement referenced a table that does not
	// exist under this handle.
	ErrTableNotFound = storage.ErrTableNotFound

	// ErrTableAlreadyExists means CREATE TABLE reused a taken name.
	ErrTableAlreadyExists = storage.ErrTableAlreadyExists

	// ErrColumnCountMismatch means an INSERT's value count does not match
	// the table's column count.
	ErrColumnCountMismatch = engine.ErrColumnCountMismatch

	// ErrTypeMismatch means an INSERT literal does not match its column's
	// type; the wrapped message names the column.
	ErrTypeMismatch = sql.ErrTypeMismatch

	// ErrDuplicateColumn means a CREATE TABLE declared a column name twice.
	ErrDuplicateColumn = sql.ErrDuplicateColumn

	// ErrUnknownColumnType means a CREATE TABLE used a type name other
	// than UUID, TEXT or INT.
	ErrUnknownColumnType = sql.ErrUnknownColumnType

	// ErrUnsupportedSelectClause means a SELECT used an explicit column
	// list; only the * wildcard is accepted.
	ErrUnsupportedSelectClause = sql.ErrUnsupportedSelectClause

	// ErrInvalidUUID means a UUID column received a literal that is not a
	// canonical hyphenated UUID.
	ErrInvalidUUID = sql.ErrInvalidUUID

	// ErrInvalidInt means an INT column received a numeric literal that
	// overflows int64.
	ErrInvalidInt = sql.ErrInvalidInt

	// ErrUnknownCode means Exec was called with an unregistered batch code.
	ErrUnknownCode = engine.ErrUnknownCode

	// ErrNotAQuery means Query was given a non-SELECT statement.
	ErrNotAQuery = engine.ErrNotAQuery
)

// SyntaxError is the error type for statement text that matches no
// supported grammar. It carries the statement kind attempted and the
// offending fragment; retrieve it with errors.As.
type SyntaxError = sql.SyntaxError
