// Package docfile reads and writes the single JSON document file that
// backs a store. It is a thin I/O layer: all interpretation of the
// document's contents happens in the storage package.
package docfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/natefinch/atomic"

	"localdb/internal/storage"
)

// ErrIO wraps filesystem failures (open, read, write, permissions) so
// callers can tell them apart from document format problems.
var ErrIO = errors.New("document file I/O")

// Load reads and decodes the document at path.
func Load(path string) (storage.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return storage.Document{}, fmt.Errorf("%w: %w", ErrIO, err)
	}

	doc, err := storage.DecodeDocument(bytes.NewReader(data))
	if err != nil {
		return storage.Document{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}

// Save encodes the document and replaces the file at path atomically, so a
// crash mid-write never leaves a half-written document behind.
func Save(path string, doc storage.Document) error {
	var buf bytes.Buffer
	if err := doc.Encode(&buf); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// Create writes a fresh empty document file at path.
func Create(path string) error {
	return Save(path, storage.Document{})
}
