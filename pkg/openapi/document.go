package openapi

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Document wraps a raw OpenAPI payload and where it came from. Exposing this
// type instead of kin-openapi structs keeps the public API decoupled.
type Document struct {
	location string
	raw      []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(location string, raw []byte) (Document, error) {
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}
	clone := append([]byte(nil), raw...)
	return Document{location: location, raw: clone}, nil
}

// LoadFile reads a JSON or YAML OpenAPI document from disk.
func LoadFile(path string) (Document, error) {
	clean := filepath.Clean(path)
	raw, err := os.ReadFile(clean)
	if err != nil {
		return Document{}, fmt.Errorf("openapi: read %s: %w", clean, err)
	}
	return NewDocument(clean, raw)
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	return d.location
}
