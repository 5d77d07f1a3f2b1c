// Package loader provides file-backed record sources.
package loader

import (
	"context"
	"fmt"
	"os"

	"brickset/internal/codec"
)

// File reads records of type T from a single data file
type File[T any] struct {
	Path  string
	Codec codec.Importer[T]
}

// NewFile creates a file source, choosing the codec from the file extension
func NewFile[T any](path string) (*File[T], error) {
	c, err := codec.ForPath[T](path)
	if err != nil {
		return nil, err
	}
	return &File[T]{Path: path, Codec: c}, nil
}

// String identifies the source in errors and logs
func (f *File[T]) String() string {
	return f.Path
}

// Load opens the file, decodes every record and closes the file
func (f *File[T]) Load(ctx context.Context) ([]T, error) {
	if f.Codec == nil {
		return nil, fmt.Errorf("no codec configured for %s", f.Path)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	items, err := f.Codec.Parse(file)
	if err != nil {
		return nil, err
	}

	return items, nil
}
