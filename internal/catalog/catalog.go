// Package catalog answers read-only questions about a loaded LEGO set catalog.
//
// A Repository is built once from a source and then only scanned. Aggregate
// queries return a value; filter queries return iterators that are evaluated
// lazily and can be ranged over any number of times.
package catalog

import (
	"context"
	"iter"
	"slices"
	"strings"

	"brickset/internal/domain"
	"brickset/internal/repository"
)

// Repository answers queries over an immutable sequence of LEGO sets
type Repository struct {
	sets *repository.Repository[domain.LegoSet]
}

// New wraps an already loaded record repository
func New(sets *repository.Repository[domain.LegoSet]) *Repository {
	return &Repository{sets: sets}
}

// Open loads the catalog from src. Set numbers must be unique.
// Failures are *repository.LoadError.
func Open(ctx context.Context, src repository.Source[domain.LegoSet], opts ...repository.Option) (*Repository, error) {
	opts = append([]repository.Option{repository.WithUniqueField("ID")}, opts...)
	sets, err := repository.Open(ctx, src, opts...)
	if err != nil {
		return nil, err
	}
	return New(sets), nil
}

// All returns every set in load order. The slice is a copy.
func (r *Repository) All() []domain.LegoSet {
	return r.sets.All()
}

// Len returns the number of sets
func (r *Repository) Len() int {
	return r.sets.Len()
}

// Source returns the identifier of the data source
func (r *Repository) Source() string {
	return r.sets.Source()
}

// Fingerprint returns the content digest of the loaded sets
func (r *Repository) Fingerprint() string {
	return r.sets.Fingerprint()
}

// CountByTag returns the number of sets tagged with tag (exact match)
func (r *Repository) CountByTag(tag string) int {
	count := 0
	for set := range r.sets.Each() {
		if set.HasTag(tag) {
			count++
		}
	}
	return count
}

// CountWithName returns the number of sets whose name is not empty
func (r *Repository) CountWithName() int {
	count := 0
	for set := range r.sets.Each() {
		if set.HasName() {
			count++
		}
	}
	return count
}

// ThemesDescending returns the distinct themes in descending byte order
func (r *Repository) ThemesDescending() []string {
	seen := make(map[string]struct{})
	themes := make([]string, 0)
	for set := range r.sets.Each() {
		if _, ok := seen[set.Theme]; ok {
			continue
		}
		seen[set.Theme] = struct{}{}
		themes = append(themes, set.Theme)
	}

	slices.SortFunc(themes, func(a, b string) int {
		return strings.Compare(b, a)
	})
	return themes
}

// NamesAbovePieces yields, in load order, the names of sets with more than
// threshold pieces
func (r *Repository) NamesAbovePieces(threshold int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for set := range r.sets.Each() {
			if set.Pieces <= threshold {
				continue
			}
			if !yield(set.Name) {
				return
			}
		}
	}
}

// MaxPieces returns the largest piece count, or 0 for an empty catalog
func (r *Repository) MaxPieces() int {
	largest := 0
	for set := range r.sets.Each() {
		if set.Pieces > largest {
			largest = set.Pieces
		}
	}
	return largest
}

// NamesStartingWith yields, in load order, the names whose first character
// is letter. Matching is case-sensitive.
//
// A set with an empty name has no first character: the iterator yields
// ("", err) with err wrapping domain.ErrEmptyName and stops.
func (r *Repository) NamesStartingWith(letter rune) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for set := range r.sets.Each() {
			first, err := set.FirstLetter()
			if err != nil {
				yield("", &EmptyNameError{ID: set.ID})
				return
			}
			if first != letter {
				continue
			}
			if !yield(set.Name, nil) {
				return
			}
		}
	}
}
