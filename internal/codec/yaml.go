package codec

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML import/export of a top-level sequence
type YAMLCodec[T any] struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec[T any]() *YAMLCodec[T] {
	return &YAMLCodec[T]{}
}

// Format returns the codec format identifier
func (c *YAMLCodec[T]) Format() string {
	return "yaml"
}

// Parse imports records from a YAML sequence
func (c *YAMLCodec[T]) Parse(r io.Reader) ([]T, error) {
	var doc yaml.Node
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		// An empty stream is an empty catalog
		if errors.Is(err, io.EOF) {
			return make([]T, 0), nil
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(doc.Content) == 0 {
		return make([]T, 0), nil
	}
	if doc.Content[0].Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("failed to parse YAML: expected top-level sequence")
	}

	var extra yaml.Node
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: unexpected document after top-level sequence")
	}

	items := make([]T, 0, len(doc.Content[0].Content))
	if err := doc.Content[0].Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return items, nil
}

// Export exports records as a YAML sequence
func (c *YAMLCodec[T]) Export(items []T, w io.Writer) error {
	if items == nil {
		items = make([]T, 0)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(items); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
