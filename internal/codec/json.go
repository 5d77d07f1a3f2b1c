package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// JSONCodec handles JSON import/export of a top-level array
type JSONCodec[T any] struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec[T any]() *JSONCodec[T] {
	return &JSONCodec[T]{}
}

// Format returns the codec format identifier
func (c *JSONCodec[T]) Format() string {
	return "json"
}

// Parse imports records from a JSON array
func (c *JSONCodec[T]) Parse(r io.Reader) ([]T, error) {
	var items []T
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	// A top-level null leaves the slice nil; [] always allocates
	if items == nil {
		return nil, fmt.Errorf("failed to parse JSON: expected top-level array, got null")
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse JSON: unexpected data after top-level array")
	}
	return items, nil
}

// Export exports records as an indented JSON array
func (c *JSONCodec[T]) Export(items []T, w io.Writer) error {
	if items == nil {
		items = make([]T, 0)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(items); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
