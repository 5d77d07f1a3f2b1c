package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"brickset/internal/codec"
	"brickset/internal/domain"
	"brickset/internal/loader"
	"brickset/internal/repository"
	"brickset/internal/repository/sqlite"
)

// Supported data source formats
const (
	FormatAuto   = ""
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatSQLite = "sqlite"
)

// NewSource returns a source for the data at path.
// FormatAuto infers the format from the file extension.
func NewSource(path, format string) (repository.Source[domain.LegoSet], error) {
	if path == "" {
		return nil, fmt.Errorf("data path is empty")
	}

	if format == FormatAuto {
		format = formatFromPath(path)
	}

	switch strings.ToLower(format) {
	case FormatSQLite:
		return sqlite.New(path), nil
	case FormatJSON, FormatYAML, "yml":
		c, err := codec.ForFormat[domain.LegoSet](format)
		if err != nil {
			return nil, err
		}
		return &loader.File[domain.LegoSet]{Path: path, Codec: c}, nil
	default:
		return nil, fmt.Errorf("unsupported data format %q for %s", format, path)
	}
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return strings.TrimPrefix(filepath.Ext(path), ".")
	}
}
