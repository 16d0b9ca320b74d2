package sql

import "strings"

// Parse parses a single statement string into an AST Statement.
//
// Each input must hold exactly one statement terminated by ';'. The leading
// keyword decides the grammar and is matched case-sensitively: CREATE,
// INSERT INTO or SELECT. Whitespace between tokens is flexible (any run of
// spaces or tabs). Parsing never touches the table store.
func Parse(line string) (Statement, error) {
	q := strings.TrimSpace(line)
	if q == "" {
		return nil, &SyntaxError{Fragment: line, Msg: "empty statement"}
	}

	if !strings.HasSuffix(q, ";") {
		return nil, &SyntaxError{Fragment: q, Msg: "missing ';' terminator"}
	}
	q = strings.TrimSpace(strings.TrimSuffix(q, ";"))

	tokens := strings.Fields(q)
	if len(tokens) == 0 {
		return nil, &SyntaxError{Fragment: line, Msg: "empty statement"}
	}

	switch tokens[0] {
	case "CREATE":
		if len(tokens) < 2 || tokens[1] != "TABLE" {
			return nil, &SyntaxError{Stmt: "CREATE TABLE", Fragment: q, Msg: "expected TABLE after CREATE"}
		}
		return parseCreateTable(q)
	case "INSERT":
		if len(tokens) < 2 || tokens[1] != "INTO" {
			return nil, &SyntaxError{Stmt: "INSERT INTO", Fragment: q, Msg: "expected INTO after INSERT"}
		}
		return parseInsert(q)
	case "SELECT":
		return parseSelect(q)
	default:
		return nil, &SyntaxError{Fragment: tokens[0], Msg: "unknown statement keyword"}
	}
}
