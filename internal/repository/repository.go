package repository

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/blake2b"
)

// Source produces the full record sequence of a repository in one call
type Source[T any] interface {
	Load(ctx context.Context) ([]T, error)
	String() string
}

// Repository holds a record sequence that is loaded once and never modified
type Repository[T any] struct {
	source      string
	items       []T
	fingerprint string
}

type options struct {
	validate    *validator.Validate
	uniqueField string
}

// Option configures Open
type Option func(*options)

// WithValidator replaces the default struct validator
func WithValidator(v *validator.Validate) Option {
	return func(o *options) {
		o.validate = v
	}
}

// WithoutValidation skips record validation
func WithoutValidation() Option {
	return func(o *options) {
		o.validate = nil
	}
}

// WithUniqueField rejects a load in which two records share the value of the
// named struct field
func WithUniqueField(field string) Option {
	return func(o *options) {
		o.uniqueField = field
	}
}

// Open loads every record from src, validates it and fingerprints the result.
// Any failure is reported as a *LoadError and no repository is returned.
func Open[T any](ctx context.Context, src Source[T], opts ...Option) (*Repository[T], error) {
	o := options{validate: validator.New(validator.WithRequiredStructEnabled())}
	for _, opt := range opts {
		opt(&o)
	}

	name := src.String()

	items, err := src.Load(ctx)
	if err != nil {
		return nil, &LoadError{Source: name, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Source: name, Err: err}
	}

	if o.validate != nil {
		for i := range items {
			if err := o.validate.Struct(items[i]); err != nil {
				return nil, &LoadError{Source: name, Err: fmt.Errorf("record %d: %w", i, err)}
			}
		}
	}

	if o.uniqueField != "" {
		v := o.validate
		if v == nil {
			v = validator.New()
		}
		if err := v.Var(items, "unique="+o.uniqueField); err != nil {
			return nil, &LoadError{Source: name, Err: fmt.Errorf("duplicate %s: %w", o.uniqueField, err)}
		}
	}

	fingerprint, err := computeFingerprint(items)
	if err != nil {
		return nil, &LoadError{Source: name, Err: err}
	}

	return &Repository[T]{
		source:      name,
		items:       slices.Clip(items),
		fingerprint: fingerprint,
	}, nil
}

// All returns a copy of the records in load order
func (r *Repository[T]) All() []T {
	return slices.Clone(r.items)
}

// Each iterates over the records in load order without copying them
func (r *Repository[T]) Each() iter.Seq[T] {
	return slices.Values(r.items)
}

// Len returns the number of records
func (r *Repository[T]) Len() int {
	return len(r.items)
}

// Source returns the identifier of the source the records came from
func (r *Repository[T]) Source() string {
	return r.source
}

// Fingerprint returns a hex BLAKE2b-256 digest of the loaded records.
// Equal record sequences share a fingerprint regardless of the source format.
func (r *Repository[T]) Fingerprint() string {
	return r.fingerprint
}

func computeFingerprint[T any](items []T) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", fmt.Errorf("failed to create hash: %w", err)
	}

	encoder := json.NewEncoder(h)
	for i := range items {
		if err := encoder.Encode(items[i]); err != nil {
			return "", fmt.Errorf("failed to encode record %d: %w", i, err)
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
