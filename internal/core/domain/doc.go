// Package domain defines the core entities of the completion pipeline.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Source: A named descriptor with an item fetcher and interaction callbacks
//   - Collection: A source paired with the items it produced
//   - Suggestion: The item type served by configured sources
//   - SourceSpec, StageSpec: Declarative configuration of sources and stages
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
