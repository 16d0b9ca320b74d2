package sql

import (
	"fmt"
	"strings"
)

// parseCreateTable parses the body of a CREATE TABLE statement.
// Supported syntax:
//
//	CREATE TABLE users (id UUID, name TEXT, age INT);
func parseCreateTable(q string) (Statement, error) {
	// At this point:
	// - q has been trimmed and the trailing ';' removed
	// - the leading "CREATE TABLE" keywords have been checked

	openIdx := strings.Index(q, "(")
	if openIdx == -1 {
		return nil, &SyntaxError{Stmt: "CREATE TABLE", Fragment: q, Msg: "missing '('"}
	}

	closeIdx := strings.LastIndex(q, ")")
	if closeIdx == -1 || closeIdx < openIdx {
		return nil, &SyntaxError{Stmt: "CREATE TABLE", Fragment: q, Msg: "missing or misplaced ')'"}
	}

	if rest := strings.TrimSpace(q[closeIdx+1:]); rest != "" {
		return nil, &SyntaxError{Stmt: "CREATE TABLE", Fragment: rest, Msg: "unexpected input after ')'"}
	}

	// "head" contains: CREATE TABLE <name>
	head := strings.Fields(q[:openIdx])
	if len(head) != 3 {
		return nil, &SyntaxError{Stmt: "CREATE TABLE", Fragment: strings.TrimSpace(q[:openIdx]), Msg: "expected exactly one table name"}
	}
	tableName := head[2]

	colsPart := strings.TrimSpace(q[openIdx+1 : closeIdx])
	if colsPart == "" {
		return nil, &SyntaxError{Stmt: "CREATE TABLE", Fragment: q, Msg: "empty column list"}
	}

	colDefs := splitCommaSeparated(colsPart)
	columns := make([]Column, 0, len(colDefs))
	seen := make(map[string]bool, len(colDefs))

	for _, def := range colDefs {
		parts := strings.Fields(def)
		if len(parts) != 2 {
			return nil, &SyntaxError{Stmt: "CREATE TABLE", Fragment: def, Msg: "expected '<name> <TYPE>' column definition"}
		}

		colName := parts[0]
		colType, err := ParseColumnType(parts[1])
		if err != nil {
			return nil, fmt.Errorf("CREATE TABLE %s: %w", tableName, err)
		}

		if seen[colName] {
			return nil, fmt.Errorf("CREATE TABLE %s: %w: %q", tableName, ErrDuplicateColumn, colName)
		}
		seen[colName] = true

		columns = append(columns, Column{Name: colName, Type: colType})
	}

	return &CreateTableStmt{
		Table:   tableName,
		Columns: columns,
	}, nil
}
