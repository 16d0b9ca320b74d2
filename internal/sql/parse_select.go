package sql

import (
	"fmt"
	"strings"
)

// parseSelect parses a wildcard SELECT statement. The only supported form is
//
//	SELECT * FROM users;
//
// An explicit column list is recognized but rejected: there is no
// projection in this store.
func parseSelect(q string) (Statement, error) {
	// q is trimmed, trailing ';' removed, and starts with "SELECT".

	tokens := strings.Fields(q)
	if len(tokens) < 4 {
		return nil, &SyntaxError{Stmt: "SELECT", Fragment: q, Msg: "incomplete statement"}
	}

	fromIdx := -1
	for i, tok := range tokens {
		if tok == "FROM" {
			fromIdx = i
			break
		}
	}
	if fromIdx == -1 {
		return nil, &SyntaxError{Stmt: "SELECT", Fragment: q, Msg: "missing FROM"}
	}

	colList := strings.Join(tokens[1:fromIdx], " ")
	if colList != "*" {
		return nil, fmt.Errorf("SELECT: %w: %q", ErrUnsupportedSelectClause, colList)
	}

	tail := tokens[fromIdx+1:]
	if len(tail) == 0 {
		return nil, &SyntaxError{Stmt: "SELECT", Fragment: q, Msg: "missing table name"}
	}
	if len(tail) > 1 {
		return nil, &SyntaxError{Stmt: "SELECT", Fragment: strings.Join(tail[1:], " "), Msg: "unexpected input after table name"}
	}

	return &SelectStmt{Table: tail[0]}, nil
}
