// Package repository provides a generic read-only record repository.
//
// A Repository is built once from a Source and holds the fully materialized
// record sequence for its whole lifetime. Nothing is added, removed or edited
// after Open returns, so a Repository can be shared between goroutines
// without synchronization.
//
// # Sources
//
// Source abstracts where records come from. The loader package provides
// file-backed sources (JSON, YAML) and the sqlite subpackage reads from a
// SQLite database.
//
// # Loading
//
// Open validates every record with go-playground/validator struct tags and
// computes a content fingerprint. Any failure is returned as a *LoadError
// wrapping the cause; a partially loaded repository is never returned.
package repository
