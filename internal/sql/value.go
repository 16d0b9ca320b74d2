package sql

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// LiteralKind classifies the syntactic shape of a literal token.
type LiteralKind int

const (
	// LiteralString is a single-quoted literal. Its text may turn out to
	// be a TEXT value or a UUID value depending on the column.
	LiteralString LiteralKind = iota
	// LiteralInt is a bare optionally-signed digit run.
	LiteralInt
)

// Literal is one untyped literal from an INSERT VALUES list. Text holds the
// inner text for quoted literals and the raw digits for numeric ones.
type Literal struct {
	Kind LiteralKind
	Text string
}

// Resolve types the literal against the column type it is headed for.
//
// A quoted literal satisfies TEXT as-is and satisfies UUID only when its
// text is a 36-character canonical hyphenated UUID. A numeric literal
// satisfies INT unless it overflows int64. Everything else is a type
// mismatch.
func (l Literal) Resolve(want ColumnType) (Value, error) {
	switch want {
	case TypeUUID:
		if l.Kind != LiteralString {
			return Value{}, fmt.Errorf("%w: expected UUID, got numeric literal %s", ErrTypeMismatch, l.Text)
		}
		u, err := parseCanonicalUUID(l.Text)
		if err != nil {
			return Value{}, err
		}
		return Value{Type: TypeUUID, U: u}, nil
	case TypeText:
		if l.Kind != LiteralString {
			return Value{}, fmt.Errorf("%w: expected TEXT, got numeric literal %s", ErrTypeMismatch, l.Text)
		}
		return Value{Type: TypeText, S: l.Text}, nil
	case TypeInt:
		if l.Kind != LiteralInt {
			return Value{}, fmt.Errorf("%w: expected INT, got string literal %q", ErrTypeMismatch, l.Text)
		}
		n, err := strconv.ParseInt(l.Text, 10, 64)
		if err != nil {
			// The parser only lets sign+digits through, so the only way
			// ParseInt fails here is range overflow.
			return Value{}, fmt.Errorf("%w: %s", ErrInvalidInt, l.Text)
		}
		return Value{Type: TypeInt, I: n}, nil
	default:
		return Value{}, fmt.Errorf("%w: column type %v", ErrTypeMismatch, want)
	}
}

// parseCanonicalUUID accepts only the hyphenated textual form. uuid.Parse
// on its own would also take braced, URN and 32-digit shapes.
func parseCanonicalUUID(s string) (uuid.UUID, error) {
	if len(s) != 36 {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidUUID, s)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidUUID, s)
	}
	return u, nil
}

// String returns the value's display text: the canonical UUID form, the raw
// text, or the decimal digits.
func (v Value) String() string {
	switch v.Type {
	case TypeUUID:
		return v.U.String()
	case TypeText:
		return v.S
	case TypeInt:
		return strconv.FormatInt(v.I, 10)
	default:
		return ""
	}
}

// MarshalJSON encodes the value in its persisted form: a single-key object
// keyed by the type name, with the display text as payload, e.g.
// {"UUID":"1111...-1111"}, {"TEXT":"kk"} or {"INT":"-5"}.
func (v Value) MarshalJSON() ([]byte, error) {
	text, err := json.Marshal(v.String())
	if err != nil {
		return nil, err
	}
	return []byte(`{"` + v.Type.String() + `":` + string(text) + `}`), nil
}

// UnmarshalJSON decodes the single-key persisted form back into a typed
// value. Anything other than exactly one recognized type name with a string
// payload of the right shape is rejected.
func (v *Value) UnmarshalJSON(data []byte) error {
	var obj map[string]string
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("value object: %w", err)
	}
	if len(obj) != 1 {
		return fmt.Errorf("value object must have exactly one key, got %d", len(obj))
	}
	for name, text := range obj {
		typ, err := ParseColumnType(name)
		if err != nil {
			return err
		}
		switch typ {
		case TypeUUID:
			u, err := parseCanonicalUUID(text)
			if err != nil {
				return err
			}
			*v = Value{Type: TypeUUID, U: u}
		case TypeText:
			*v = Value{Type: TypeText, S: text}
		case TypeInt:
			n, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidInt, text)
			}
			*v = Value{Type: TypeInt, I: n}
		}
	}
	return nil
}
