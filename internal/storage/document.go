package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"localdb/internal/sql"
)

// ErrFormat means the persisted document does not match the expected shape:
// one JSON object mapping table names to arrays of row objects, each cell a
// single-key {"TYPE":"text"} wrapper.
var ErrFormat = errors.New("malformed document")

// Document is the persisted form of a Store: tables in creation order, rows
// in insertion order, cells wrapped with their type name. It round-trips
// losslessly through Encode/DecodeDocument, except that a table persisted
// with zero rows comes back with an empty schema (the wire format carries
// column types only inside rows).
type Document struct {
	Tables []TableData
}

// TableData is one table's slice of a Document.
type TableData struct {
	Name    string
	Columns []sql.Column
	Rows    []sql.Row
}

// Encode writes the document as pretty-printed JSON. Table and column order
// are preserved, so encoding the same document twice yields identical bytes.
func (d Document) Encode(w io.Writer) error {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for ti, t := range d.Tables {
		if ti > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, t.Name); err != nil {
			return err
		}
		buf.WriteString(":[")
		for ri, row := range t.Rows {
			if ri > 0 {
				buf.WriteByte(',')
			}
			if len(row) != len(t.Columns) {
				return fmt.Errorf("table %q row %d: %d values for %d columns", t.Name, ri, len(row), len(t.Columns))
			}
			buf.WriteByte('{')
			for ci, col := range t.Columns {
				if ci > 0 {
					buf.WriteByte(',')
				}
				if err := writeJSONString(&buf, col.Name); err != nil {
					return err
				}
				buf.WriteByte(':')
				cell, err := json.Marshal(row[ci])
				if err != nil {
					return err
				}
				buf.Write(cell)
			}
			buf.WriteByte('}')
		}
		buf.WriteByte(']')
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')

	_, err := w.Write(out.Bytes())
	return err
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// DecodeDocument reads a document back from its JSON form. It walks the
// token stream directly so that table order and row key order survive; a
// table's schema is reconstructed from its first row, and every later row
// must repeat the same columns, in order, with the same value types.
func DecodeDocument(r io.Reader) (Document, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return Document{}, err
	}

	var doc Document
	names := make(map[string]bool)

	for dec.More() {
		name, err := readKey(dec)
		if err != nil {
			return Document{}, err
		}
		if names[name] {
			return Document{}, fmt.Errorf("%w: duplicate table %q", ErrFormat, name)
		}
		names[name] = true

		t, err := decodeTable(dec, name)
		if err != nil {
			return Document{}, err
		}
		doc.Tables = append(doc.Tables, t)
	}

	if err := expectDelim(dec, '}'); err != nil {
		return Document{}, err
	}
	// Anything after the closing brace is not a valid document.
	if _, err := dec.Token(); err != io.EOF {
		return Document{}, fmt.Errorf("%w: trailing data after document object", ErrFormat)
	}

	return doc, nil
}

func decodeTable(dec *json.Decoder, name string) (TableData, error) {
	t := TableData{Name: name}

	if err := expectDelim(dec, '['); err != nil {
		return TableData{}, err
	}

	for dec.More() {
		cols, row, err := decodeRow(dec)
		if err != nil {
			return TableData{}, fmt.Errorf("table %q row %d: %w", name, len(t.Rows), err)
		}

		if t.Columns == nil {
			// First row defines the table's column order and types.
			t.Columns = cols
		} else if err := sameColumns(t.Columns, cols); err != nil {
			return TableData{}, fmt.Errorf("table %q row %d: %w", name, len(t.Rows), err)
		}

		t.Rows = append(t.Rows, row)
	}

	if err := expectDelim(dec, ']'); err != nil {
		return TableData{}, err
	}
	return t, nil
}

func decodeRow(dec *json.Decoder) ([]sql.Column, sql.Row, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, nil, err
	}

	var cols []sql.Column
	var row sql.Row

	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return nil, nil, err
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, fmt.Errorf("%w: column %q: %v", ErrFormat, key, err)
		}
		var v sql.Value
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, nil, fmt.Errorf("%w: column %q: %v", ErrFormat, key, err)
		}

		for _, c := range cols {
			if c.Name == key {
				return nil, nil, fmt.Errorf("%w: duplicate column %q", ErrFormat, key)
			}
		}
		cols = append(cols, sql.Column{Name: key, Type: v.Type})
		row = append(row, v)
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, nil, err
	}
	if len(row) == 0 {
		return nil, nil, fmt.Errorf("%w: empty row object", ErrFormat)
	}
	return cols, row, nil
}

func sameColumns(want, got []sql.Column) error {
	if len(got) != len(want) {
		return fmt.Errorf("%w: %d columns, expected %d", ErrFormat, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("%w: column %d is %s %s, expected %s %s",
				ErrFormat, i, got[i].Name, got[i].Type, want[i].Name, want[i].Type)
		}
	}
	return nil
}

func expectDelim(dec *json.Decoder, d json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != d {
		return fmt.Errorf("%w: expected %q, got %v", ErrFormat, d, tok)
	}
	return nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFormat, err)
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected object key, got %v", ErrFormat, tok)
	}
	return key, nil
}
