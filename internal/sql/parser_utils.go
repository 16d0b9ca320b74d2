package sql

import "strings"

// splitCommaSeparated splits a string by commas, but keeps it simple:
// it's fine for column definitions like "id UUID, name TEXT".
func splitCommaSeparated(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitLiterals splits a VALUES list on commas, treating single-quoted runs
// as opaque so 'a,b' stays one token. A literal runs from the first ' to
// the next '; there is no escape syntax. Empty slots are kept so that
// "(1,,2)" surfaces as an error instead of silently collapsing.
func splitLiterals(s string) []string {
	var out []string
	var b strings.Builder
	inQuote := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == ',' && !inQuote:
			out = append(out, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	out = append(out, strings.TrimSpace(b.String()))
	return out
}

// parseLiteralToken classifies one raw literal token from a VALUES list.
// Supported shapes:
//
//	strings:  'Alice'   (single quotes, no escapes)
//	integers: 42, -7    (value range is checked at execution time)
func parseLiteralToken(tok string) (Literal, error) {
	if tok == "" {
		return Literal{}, &SyntaxError{Stmt: "INSERT INTO", Fragment: tok, Msg: "empty literal"}
	}

	if tok[0] == '\'' {
		if len(tok) < 2 || tok[len(tok)-1] != '\'' || strings.Count(tok, "'") != 2 {
			return Literal{}, &SyntaxError{Stmt: "INSERT INTO", Fragment: tok, Msg: "malformed string literal"}
		}
		return Literal{Kind: LiteralString, Text: tok[1 : len(tok)-1]}, nil
	}

	if isIntShape(tok) {
		return Literal{Kind: LiteralInt, Text: tok}, nil
	}

	return Literal{}, &SyntaxError{Stmt: "INSERT INTO", Fragment: tok, Msg: "unrecognized literal"}
}

// isIntShape reports whether tok is an optional '-' followed by digits only.
func isIntShape(tok string) bool {
	if strings.HasPrefix(tok, "-") {
		tok = tok[1:]
	}
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}
