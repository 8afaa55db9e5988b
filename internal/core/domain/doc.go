// Package domain defines the core business entities for strindex.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - StringRecord: An analysed string keyed by its content hash
//   - StringProperties: The derived, immutable properties of a string
//   - FrequencyMap: Per-character counts in first-occurrence order
//   - Predicate: A conjunctive filter over stored records
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
