// Package domain defines the core domain types for the brickset catalog.
//
// # Core Types
//
// LegoSet is one catalog entry: a set number, a name, the theme it is sold
// under, its piece count and an optional list of tags. The JSON and YAML keys
// on LegoSet match the brickset data files and must not be renamed.
//
// Validation rules live on the struct tags and are enforced by the repository
// at load time: a set number is required, counts are non-negative and tags
// contain no duplicates.
//
// # Design Principles
//
// - Immutable value objects
// - No database or external dependencies
package domain
