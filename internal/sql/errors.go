package sql

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownColumnType means a CREATE TABLE column used a type name
	// other than UUID, TEXT or INT.
	ErrUnknownColumnType = errors.New("unknown column type")

	// ErrDuplicateColumn means a CREATE TABLE statement declared the same
	// column name twice.
	ErrDuplicateColumn = errors.New("duplicate column")

	// ErrUnsupportedSelectClause means a SELECT used anything other than
	// the * column list.
	ErrUnsupportedSelectClause = errors.New("unsupported select clause, only SELECT * is accepted")

	// ErrInvalidUUID means a literal destined for a UUID column is not a
	// 36-character canonical hyphenated UUID.
	ErrInvalidUUID = errors.New("invalid UUID literal")

	// ErrInvalidInt means a numeric literal does not fit in an int64.
	ErrInvalidInt = errors.New("invalid INT literal")

	// ErrTypeMismatch means a literal's shape does not match the type of
	// the column it was inserted into.
	ErrTypeMismatch = errors.New("type mismatch")
)

// SyntaxError reports statement text that does not match any supported
// grammar. Stmt names the statement kind that was being parsed (empty when
// the leading keyword itself was not recognized) and Fragment carries the
// offending piece of input.
type SyntaxError struct {
	Stmt     string
	Fragment string
	Msg      string
}

func (e *SyntaxError) Error() string {
	if e.Stmt == "" {
		return fmt.Sprintf("syntax error: %s: %q", e.Msg, e.Fragment)
	}
	return fmt.Sprintf("%s: %s: %q", e.Stmt, e.Msg, e.Fragment)
}
