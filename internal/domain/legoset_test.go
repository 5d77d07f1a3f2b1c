package domain

import (
	"errors"
	"testing"
)

func TestLegoSetHasTag(t *testing.T) {
	set := LegoSet{ID: "10265-1", Name: "Ford Mustang", Tags: []string{"Microscale", "Car"}}

	tests := []struct {
		tag  string
		want bool
	}{
		{"Microscale", true},
		{"Car", true},
		{"microscale", false},
		{"Micro", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := set.HasTag(tt.tag); got != tt.want {
			t.Errorf("HasTag(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}

	t.Run("nil tags never match", func(t *testing.T) {
		untagged := LegoSet{ID: "1-1", Name: "Untagged"}
		if untagged.HasTag("Microscale") {
			t.Error("expected set without tags not to match")
		}
	})
}

func TestLegoSetHasName(t *testing.T) {
	if !(LegoSet{Name: "Porsche"}).HasName() {
		t.Error("expected named set to report HasName")
	}
	if (LegoSet{}).HasName() {
		t.Error("expected empty name to report no name")
	}
}

func TestLegoSetFirstLetter(t *testing.T) {
	t.Run("ascii name", func(t *testing.T) {
		r, err := LegoSet{Name: "Pickup"}.FirstLetter()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r != 'P' {
			t.Errorf("expected 'P', got %q", r)
		}
	})

	t.Run("multibyte name", func(t *testing.T) {
		r, err := LegoSet{Name: "Éclair Stand"}.FirstLetter()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r != 'É' {
			t.Errorf("expected 'É', got %q", r)
		}
	})

	t.Run("empty name fails", func(t *testing.T) {
		_, err := LegoSet{ID: "0-1"}.FirstLetter()
		if !errors.Is(err, ErrEmptyName) {
			t.Errorf("expected ErrEmptyName, got %v", err)
		}
	})
}
