package domain

import (
	"errors"
	"unicode/utf8"
)

// ErrEmptyName is returned when the first letter of an unnamed set is requested
var ErrEmptyName = errors.New("lego set has an empty name")

// LegoSet represents a single catalog entry as published by brickset
type LegoSet struct {
	ID       string   `json:"number" yaml:"number" validate:"required"`
	Name     string   `json:"name" yaml:"name"`
	Year     int      `json:"year,omitempty" yaml:"year,omitempty" validate:"min=0"`
	Theme    string   `json:"theme" yaml:"theme"`
	Subtheme string   `json:"subtheme,omitempty" yaml:"subtheme,omitempty"`
	Pieces   int      `json:"pieces" yaml:"pieces" validate:"min=0"`
	Tags     []string `json:"tags,omitempty" yaml:"tags,omitempty" validate:"omitempty,unique"`
}

// HasTag reports whether the set carries the tag (exact, case-sensitive)
func (s LegoSet) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasName reports whether the set has a non-empty name
func (s LegoSet) HasName() bool {
	return s.Name != ""
}

// FirstLetter returns the first character of the name.
// An empty name has no first letter and yields ErrEmptyName.
func (s LegoSet) FirstLetter() (rune, error) {
	if s.Name == "" {
		return utf8.RuneError, ErrEmptyName
	}
	r, _ := utf8.DecodeRuneInString(s.Name)
	return r, nil
}
