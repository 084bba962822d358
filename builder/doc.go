// Package builder provides deterministic graph fixtures for tests, benchmarks
// and the `molic generate` command.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph:        applies Constructors to a fresh core.Graph in order.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and the vertex-ID scheme.
//   - Topologies:
//     – chordal:           Path, Star, Complete, Fan, KTree.
//     – non-chordal:       Cycle (n ≥ 4), Wheel (n ≥ 5), Grid (r,c ≥ 2).
//     – random:            RandomSparse (Erdős–Rényi, needs an RNG).
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical graphs,
//     including the vertex enumeration order.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name.
package builder
