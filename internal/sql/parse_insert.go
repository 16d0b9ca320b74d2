package sql

import "strings"

// parseInsert parses the body of an INSERT INTO ... VALUES (...) statement.
// Supported syntax:
//
//	INSERT INTO users VALUES ('11111111-1111-1111-1111-111111111111', 'kk');
//
// The literals stay untyped: checking their count and types against the
// table's schema is the execution engine's job, so syntax checking stays
// decoupled from semantic checking.
func parseInsert(q string) (Statement, error) {
	// At this point:
	// - q is trimmed, trailing ';' removed
	// - the leading "INSERT INTO" keywords have been checked

	openIdx := strings.Index(q, "(")
	if openIdx == -1 {
		return nil, &SyntaxError{Stmt: "INSERT INTO", Fragment: q, Msg: "missing '('"}
	}

	closeIdx := strings.LastIndex(q, ")")
	if closeIdx == -1 || closeIdx < openIdx {
		return nil, &SyntaxError{Stmt: "INSERT INTO", Fragment: q, Msg: "missing or misplaced ')'"}
	}

	if rest := strings.TrimSpace(q[closeIdx+1:]); rest != "" {
		return nil, &SyntaxError{Stmt: "INSERT INTO", Fragment: rest, Msg: "unexpected input after ')'"}
	}

	// "head" contains: INSERT INTO <name> VALUES
	head := strings.Fields(q[:openIdx])
	if len(head) != 4 || head[3] != "VALUES" {
		return nil, &SyntaxError{Stmt: "INSERT INTO", Fragment: strings.TrimSpace(q[:openIdx]), Msg: "expected 'INSERT INTO <table> VALUES'"}
	}
	tableName := head[2]

	valuesPart := strings.TrimSpace(q[openIdx+1 : closeIdx])
	if valuesPart == "" {
		return nil, &SyntaxError{Stmt: "INSERT INTO", Fragment: q, Msg: "empty VALUES list"}
	}

	rawVals := splitLiterals(valuesPart)
	vals := make([]Literal, 0, len(rawVals))
	for _, rv := range rawVals {
		lit, err := parseLiteralToken(rv)
		if err != nil {
			return nil, err
		}
		vals = append(vals, lit)
	}

	return &InsertStmt{
		Table:  tableName,
		Values: vals,
	}, nil
}
