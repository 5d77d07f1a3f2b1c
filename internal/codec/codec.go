package codec

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Importer decodes a sequence of records from a data stream
type Importer[T any] interface {
	Parse(r io.Reader) ([]T, error)
	Format() string
}

// Exporter encodes a sequence of records to a data stream
type Exporter[T any] interface {
	Export(items []T, w io.Writer) error
	Format() string
}

// Codec is both an Importer and an Exporter for the same format
type Codec[T any] interface {
	Importer[T]
	Exporter[T]
}

// ForFormat returns the codec registered under a format identifier
func ForFormat[T any](format string) (Codec[T], error) {
	switch strings.ToLower(format) {
	case "json":
		return NewJSONCodec[T](), nil
	case "yaml", "yml":
		return NewYAMLCodec[T](), nil
	default:
		return nil, fmt.Errorf("unsupported format: %q", format)
	}
}

// ForPath picks a codec from the file extension
func ForPath[T any](path string) (Codec[T], error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, fmt.Errorf("cannot infer format of %q: no file extension", path)
	}
	return ForFormat[T](ext)
}
