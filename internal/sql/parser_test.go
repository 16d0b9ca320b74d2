package sql

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseCreateTable_Basic(t *testing.T) {
	query := "CREATE TABLE users (id UUID, name TEXT, age INT);"

	stmt, err := Parse(query)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ct, ok := stmt.(*CreateTableStmt)
	if !ok {
		t.Fatalf("expected *CreateTableStmt, got %T", stmt)
	}

	if ct.Table != "users" {
		t.Fatalf("expected table name %q, got %q", "users", ct.Table)
	}

	if len(ct.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(ct.Columns))
	}

	assertCol := func(idx int, name string, ct2 ColumnType) {
		if ct.Columns[idx].Name != name {
			t.Fatalf("column %d: expected name %q, got %q", idx, name, ct.Columns[idx].Name)
		}
		if ct.Columns[idx].Type != ct2 {
			t.Fatalf("column %d: expected type %v, got %v", idx, ct2, ct.Columns[idx].Type)
		}
	}

	assertCol(0, "id", TypeUUID)
	assertCol(1, "name", TypeText)
	assertCol(2, "age", TypeInt)
}

func TestParseCreateTable_FlexibleSpaces(t *testing.T) {
	query := "  CREATE \t TABLE   Accounts  (  owner   TEXT ,  balance  INT );  "

	stmt, err := Parse(query)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ct, ok := stmt.(*CreateTableStmt)
	if !ok {
		t.Fatalf("expected *CreateTableStmt, got %T", stmt)
	}

	if ct.Table != "Accounts" {
		t.Fatalf("expected table name %q, got %q", "Accounts", ct.Table)
	}

	if len(ct.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(ct.Columns))
	}

	if ct.Columns[0].Name != "owner" || ct.Columns[0].Type != TypeText {
		t.Fatalf("unexpected first column: %+v", ct.Columns[0])
	}

	if ct.Columns[1].Name != "balance" || ct.Columns[1].Type != TypeInt {
		t.Fatalf("unexpected second column: %+v", ct.Columns[1])
	}
}

func TestParseCreateTable_KeywordsAreCaseSensitive(t *testing.T) {
	if _, err := Parse("create table t (a INT);"); err == nil {
		t.Fatal("expected lowercase keywords to be rejected")
	}

	var syn *SyntaxError
	_, err := Parse("CREATE table t (a INT);")
	if !errors.As(err, &syn) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
}

func TestParseCreateTable_TypeNamesAreCaseSensitive(t *testing.T) {
	_, err := Parse("CREATE TABLE t (a int);")
	if !errors.Is(err, ErrUnknownColumnType) {
		t.Fatalf("expected ErrUnknownColumnType, got %v", err)
	}
}

func TestParseCreateTable_DuplicateColumn(t *testing.T) {
	_, err := Parse("CREATE TABLE t (a INT, a TEXT);")
	if !errors.Is(err, ErrDuplicateColumn) {
		t.Fatalf("expected ErrDuplicateColumn, got %v", err)
	}
}

func TestParseCreateTable_EmptyColumnList(t *testing.T) {
	if _, err := Parse("CREATE TABLE t ();"); err == nil {
		t.Fatal("expected empty column list to be rejected")
	}
}

func TestParseInsert_Basic(t *testing.T) {
	query := "INSERT INTO users VALUES ('11111111-1111-1111-1111-111111111111', 'kk', 42);"

	stmt, err := Parse(query)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ins, ok := stmt.(*InsertStmt)
	if !ok {
		t.Fatalf("expected *InsertStmt, got %T", stmt)
	}

	if ins.Table != "users" {
		t.Fatalf("expected table name %q, got %q", "users", ins.Table)
	}

	want := []Literal{
		{Kind: LiteralString, Text: "11111111-1111-1111-1111-111111111111"},
		{Kind: LiteralString, Text: "kk"},
		{Kind: LiteralInt, Text: "42"},
	}
	if !reflect.DeepEqual(ins.Values, want) {
		t.Fatalf("unexpected literals: %+v", ins.Values)
	}
}

func TestParseInsert_QuotedComma(t *testing.T) {
	stmt, err := Parse("INSERT INTO t VALUES ('a,b', -7);")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ins := stmt.(*InsertStmt)
	if len(ins.Values) != 2 {
		t.Fatalf("expected 2 literals, got %d", len(ins.Values))
	}
	if ins.Values[0].Text != "a,b" || ins.Values[0].Kind != LiteralString {
		t.Fatalf("unexpected first literal: %+v", ins.Values[0])
	}
	if ins.Values[1].Text != "-7" || ins.Values[1].Kind != LiteralInt {
		t.Fatalf("unexpected second literal: %+v", ins.Values[1])
	}
}

func TestParseInsert_BadLiteral(t *testing.T) {
	var syn *SyntaxError
	_, err := Parse("INSERT INTO t VALUES (abc);")
	if !errors.As(err, &syn) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	if syn.Fragment != "abc" {
		t.Fatalf("expected offending fragment %q, got %q", "abc", syn.Fragment)
	}
}

func TestParseSelect_Basic(t *testing.T) {
	stmt, err := Parse("SELECT * FROM users;")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	sel, ok := stmt.(*SelectStmt)
	if !ok {
		t.Fatalf("expected *SelectStmt, got %T", stmt)
	}
	if sel.Table != "users" {
		t.Fatalf("expected table name %q, got %q", "users", sel.Table)
	}
}

func TestParseSelect_ExplicitColumnsRejected(t *testing.T) {
	_, err := Parse("SELECT name FROM users;")
	if !errors.Is(err, ErrUnsupportedSelectClause) {
		t.Fatalf("expected ErrUnsupportedSelectClause, got %v", err)
	}
}

func TestParse_MissingTerminator(t *testing.T) {
	var syn *SyntaxError
	_, err := Parse("SELECT * FROM users")
	if !errors.As(err, &syn) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
}

func TestParse_UnknownKeyword(t *testing.T) {
	var syn *SyntaxError
	_, err := Parse("DROP TABLE users;")
	if !errors.As(err, &syn) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	if syn.Fragment != "DROP" {
		t.Fatalf("expected offending fragment %q, got %q", "DROP", syn.Fragment)
	}
}

func TestParse_Idempotent(t *testing.T) {
	for _, query := range []string{
		"CREATE TABLE users (id UUID, name TEXT);",
		"INSERT INTO users VALUES ('11111111-1111-1111-1111-111111111111', 'kk');",
		"SELECT * FROM users;",
	} {
		first, err := Parse(query)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", query, err)
		}
		second, err := Parse(query)
		if err != nil {
			t.Fatalf("Parse(%q) failed on second run: %v", query, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("parsing %q twice gave different statements", query)
		}
	}
}
