package sql

// Statement is the common interface for all parsed statements.
type Statement interface {
	stmtNode()
}

// CreateTableStmt represents a parsed CREATE TABLE statement.
type CreateTableStmt struct {
	Table   string
	Columns []Column
}

func (*CreateTableStmt) stmtNode() {}

// InsertStmt represents a parsed INSERT INTO ... VALUES (...) statement.
// Values are still untyped literals here: the parser has no access to the
// table's schema, so typing them against the column types happens at
// execution time.
type InsertStmt struct {
	Table  string
	Values []Literal
}

func (*InsertStmt) stmtNode() {}

// SelectStmt represents a parsed SELECT * FROM statement.
type SelectStmt struct {
	Table string
}

func (*SelectStmt) stmtNode() {}
