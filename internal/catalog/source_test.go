package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"brickset/internal/repository"
	"brickset/internal/repository/sqlite"
)

func TestNewSource(t *testing.T) {
	tests := []struct {
		path    string
		format  string
		wantErr bool
	}{
		{"brickset.json", FormatAuto, false},
		{"brickset.yaml", FormatAuto, false},
		{"brickset.yml", FormatAuto, false},
		{"brickset.db", FormatAuto, false},
		{"brickset.sqlite3", FormatAuto, false},
		{"brickset.data", FormatJSON, false},
		{"brickset.data", FormatSQLite, false},
		{"brickset.data", FormatAuto, true},
		{"brickset.json", "csv", true},
		{"", FormatJSON, true},
	}

	for _, tt := range tests {
		src, err := NewSource(tt.path, tt.format)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NewSource(%q, %q) expected error", tt.path, tt.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewSource(%q, %q) unexpected error: %v", tt.path, tt.format, err)
			continue
		}
		if src.String() != tt.path {
			t.Errorf("NewSource(%q, %q).String() = %q", tt.path, tt.format, src.String())
		}
	}
}

func TestOpenFormatsAgree(t *testing.T) {
	ctx := context.Background()
	jsonRepo := openFixture(t)

	t.Run("yaml", func(t *testing.T) {
		src, err := NewSource("testdata/brickset.yaml", FormatAuto)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		repo, err := Open(ctx, src)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.Fingerprint() != jsonRepo.Fingerprint() {
			t.Error("expected YAML and JSON fixtures to load identical sets")
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "brickset.db")
		db, err := sql.Open("sqlite", path)
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		if _, err := db.Exec(sqlite.Schema); err != nil {
			t.Fatalf("failed to create schema: %v", err)
		}
		for _, set := range jsonRepo.All() {
			var tags any
			if set.Tags != nil {
				tags = mustJSON(t, set.Tags)
			}
			var subtheme any
			if set.Subtheme != "" {
				subtheme = set.Subtheme
			}
			_, err := db.Exec(`INSERT INTO lego_sets (number, name, year, theme, subtheme, pieces, tags) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				set.ID, set.Name, set.Year, set.Theme, subtheme, set.Pieces, tags)
			if err != nil {
				t.Fatalf("failed to insert %s: %v", set.ID, err)
			}
		}
		db.Close()

		src, err := NewSource(path, FormatAuto)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		repo, err := Open(ctx, src)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.Fingerprint() != jsonRepo.Fingerprint() {
			t.Error("expected SQLite and JSON sources to load identical sets")
		}
		if repo.MaxPieces() != 7541 || repo.CountByTag("Microscale") != 3 {
			t.Error("unexpected query results over SQLite source")
		}
	})
}

func TestOpenLoadErrors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
		return path
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.json")},
		{"malformed json", write("malformed.json", `[{"number": "1-1",`)},
		{"wrong shape", write("shape.json", `{"sets": []}`)},
		{"wrong field type", write("type.json", `[{"number": "1-1", "pieces": "lots"}]`)},
		{"missing number", write("number.json", `[{"name": "Nameless number"}]`)},
		{"negative pieces", write("negative.json", `[{"number": "1-1", "pieces": -5}]`)},
		{"duplicate tags", write("dupes.yaml", "- number: \"1-1\"\n  tags: [Car, Car]\n")},
		{"null json", write("null.json", `null`)},
		{"trailing json", write("trail.json", `[] }`)},
		{"null yaml", write("null.yaml", "~\n")},
		{"multi-document yaml", write("multi.yaml", "- number: \"1-1\"\n---\n- number: \"2-1\"\n")},
		{"duplicate numbers", write("dupe-ids.json", `[{"number": "1-1"}, {"number": "1-1"}]`)},
		{"missing database", filepath.Join(dir, "missing.db")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewSource(tt.path, FormatAuto)
			if err != nil {
				t.Fatalf("unexpected source error: %v", err)
			}
			repo, err := Open(ctx, src)
			if repo != nil {
				t.Error("expected no catalog on failure")
			}
			var loadErr *repository.LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("expected *repository.LoadError, got %v", err)
			}
			if loadErr.Source != tt.path {
				t.Errorf("expected source %q, got %q", tt.path, loadErr.Source)
			}
		})
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	return string(data)
}
