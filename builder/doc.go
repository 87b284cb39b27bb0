// Package builder provides deterministic topology constructors that emit edge
// lists for core.NewGraph. Puzzle definitions, examples and tests use them to
// describe graphs without spelling out every pair.
//
// The package offers:
//
//   - Constructors: Path, Cycle, Star, Wheel, Complete.
//   - BuildGraph: run a Constructor and seal the result with core options.
//
// Guarantees:
//
//   - Stable edge order, hence stable edge ids and weight-variable indices.
//   - Structured errors: ErrTooFewVertices wrapped with the constructor name.
package builder
