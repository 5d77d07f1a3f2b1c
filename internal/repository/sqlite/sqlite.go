// Package sqlite reads LEGO sets from a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"brickset/internal/domain"

	_ "modernc.org/sqlite"
)

// Schema is the table layout the source reads from.
// tags holds a JSON array of strings or NULL.
const Schema = `
CREATE TABLE IF NOT EXISTS lego_sets (
	number TEXT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	year INTEGER,
	theme TEXT NOT NULL DEFAULT '',
	subtheme TEXT,
	pieces INTEGER NOT NULL DEFAULT 0,
	tags JSON
);
`

// Source loads LEGO sets from a SQLite database file opened read-only
type Source struct {
	Path string
}

// New creates a SQLite source for the database at path
func New(path string) *Source {
	return &Source{Path: path}
}

// String identifies the source in errors and logs
func (s *Source) String() string {
	return s.Path
}

// Load reads every row of lego_sets in insertion order
func (s *Source) Load(ctx context.Context) ([]domain.LegoSet, error) {
	// Opening a missing file read-only gives an opaque driver error
	if _, err := os.Stat(s.Path); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	abs, err := filepath.Abs(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	dsn := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: "mode=ro"}
	db, err := sql.Open("sqlite", dsn.String())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT `+legoSetColumns+` FROM lego_sets ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query lego sets: %w", err)
	}
	defer rows.Close()

	sets := make([]domain.LegoSet, 0)
	for rows.Next() {
		var row legoSetRow
		if err := rows.Scan(row.scanArgs()...); err != nil {
			return nil, fmt.Errorf("failed to scan lego set: %w", err)
		}

		set, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lego sets: %w", err)
	}

	return sets, nil
}
