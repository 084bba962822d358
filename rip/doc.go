// Package rip derives a clique tree from a decomposable graph: the maximal
// cliques in an order satisfying the Running Intersection Property (RIP)
// together with the separator of each clique.
//
// Pipeline:
//
//	core.Graph ─► mcs.Search ─► boundary sets B_1…B_n
//	                               │
//	                               ▼
//	                          Cliques  ─► C_0…C_{m-1}  (maximal, RIP order)
//	                               │
//	                               ▼
//	                          Separators ─► S_0…S_{m-1}
//
//   - Cliques keeps the boundary sets that are not contained in any other,
//     preserving their position. The result is an antichain whose union is V.
//   - Separators sets S_0 to the tagged NoSeparator value and
//     S_i = C_i ∩ (C_0 ∪ … ∪ C_{i-1}) for i ≥ 1. An empty intersection is a
//     real (empty) separator and stays distinguishable from NoSeparator.
//   - RIP composes the three stages. A NotDecomposable failure from mcs aborts
//     the pipeline; nothing is extracted from a non-chordal graph.
//
// The tree shape of the clique tree is available through Result.Parents, and
// Verify re-checks the structural invariants of a Result against its graph.
//
// Connectivity is a caller precondition (see package dfs). On a disconnected
// graph the pipeline still terminates, but separators between components are
// empty and the sequence describes a forest, not a tree.
//
// Errors:
//
//   - everything returned by mcs.Search, wrapped with "rip: %w"
//   - ErrCoverage, ErrNotAntichain, ErrSeparatorContainment, ErrSentinel (Verify)
package rip
