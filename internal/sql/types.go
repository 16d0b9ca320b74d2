package sql

import (
	"fmt"

	"github.com/google/uuid"
)

// ColumnType is the declared type of a table column.
type ColumnType int

const (
	TypeUUID ColumnType = iota
	TypeText
	TypeInt
)

// String returns the type name as it appears in statements and in the
// persisted document ("UUID", "TEXT", "INT").
func (t ColumnType) String() string {
	switch t {
	case TypeUUID:
		return "UUID"
	case TypeText:
		return "TEXT"
	case TypeInt:
		return "INT"
	default:
		return fmt.Sprintf("ColumnType(%d)", int(t))
	}
}

// ParseColumnType resolves a type name from a column definition.
// Names are matched case-sensitively: only "UUID", "TEXT" and "INT" exist.
func ParseColumnType(name string) (ColumnType, error) {
	switch name {
	case "UUID":
		return TypeUUID, nil
	case "TEXT":
		return TypeText, nil
	case "INT":
		return TypeInt, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownColumnType, name)
	}
}

// Column describes metadata for a single column in a table.
type Column struct {
	Name string
	Type ColumnType
}

// Value represents a single cell in a table (one column in one row).
// Only the field matching Type should be read; the other fields remain at
// their zero values.
type Value struct {
	Type ColumnType

	U uuid.UUID // for TypeUUID
	S string    // for TypeText
	I int64     // for TypeInt
}

// Row represents one record in a table: a slice of Values, one per column,
// in schema column order.
type Row []Value
