package loader

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"brickset/internal/codec"
)

type testRecord struct {
	ID   string `json:"number" yaml:"number"`
	Name string `json:"name" yaml:"name"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestNewFile(t *testing.T) {
	t.Run("json extension", func(t *testing.T) {
		f, err := NewFile[testRecord]("sets.json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Codec.Format() != "json" {
			t.Errorf("expected json codec, got %s", f.Codec.Format())
		}
		if f.String() != "sets.json" {
			t.Errorf("expected String() to be the path, got %s", f.String())
		}
	})

	t.Run("unknown extension", func(t *testing.T) {
		if _, err := NewFile[testRecord]("sets.txt"); err == nil {
			t.Error("expected error for unknown extension")
		}
	})
}

func TestFileLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("loads json", func(t *testing.T) {
		path := writeFile(t, "sets.json", `[{"number": "1-1", "name": "A"}, {"number": "2-1", "name": "B"}]`)
		f, err := NewFile[testRecord](path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items, err := f.Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 || items[0].ID != "1-1" || items[1].Name != "B" {
			t.Errorf("unexpected items: %+v", items)
		}
	})

	t.Run("loads yaml", func(t *testing.T) {
		path := writeFile(t, "sets.yaml", "- number: \"1-1\"\n  name: A\n")
		f, err := NewFile[testRecord](path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items, err := f.Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 || items[0].Name != "A" {
			t.Errorf("unexpected items: %+v", items)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		f := &File[testRecord]{Path: filepath.Join(t.TempDir(), "nope.json"), Codec: codec.NewJSONCodec[testRecord]()}
		_, err := f.Load(ctx)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("expected not-exist error, got %v", err)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeFile(t, "sets.json", `[{"number": `)
		f, _ := NewFile[testRecord](path)
		if _, err := f.Load(ctx); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("missing codec", func(t *testing.T) {
		f := &File[testRecord]{Path: "sets.json"}
		if _, err := f.Load(ctx); err == nil {
			t.Error("expected error without codec")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		path := writeFile(t, "sets.json", `[]`)
		f, _ := NewFile[testRecord](path)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := f.Load(cctx); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}
