// Package mcs implements Maximum Cardinality Search (MCS) on a core.Graph
// together with the decomposability (chordality) test embedded in it.
//
// What:
//
//   - Search numbers the vertices v_1, …, v_n by repeatedly choosing the
//     unnumbered vertex with the most already-numbered neighbors, and records
//     for each v_i its boundary set
//
//     B_i = (adj(v_i) ∪ {v_i}) ∩ {v_1, …, v_i}
//
//   - Every boundary set with more than two members must induce a complete
//     subgraph. The first one that does not aborts the search with a
//     *NotDecomposableError; no partial numbering is returned.
//
// Why:
//
//   - A graph is decomposable (chordal) exactly when this check succeeds for
//     an MCS ordering, and the resulting numbering is then perfect: its
//     reverse is a perfect elimination ordering.
//   - The boundary sequence is the candidate set from which package rip
//     extracts the maximal cliques in Running-Intersection order.
//
// Determinism:
//
//   - v_1 is the first vertex of g.Vertices() unless WithStart overrides it.
//   - Label ties are broken by the first-encountered remaining vertex in
//     enumeration order; the remaining vertices live in an insertion-ordered
//     hash set, never in a plain Go map.
//   - Boundary sets list their members in numbering order.
//
// Concurrency:
//
//   - The label map and the remaining set are owned by a per-call searcher
//     value. Search may run concurrently on the same graph as long as the
//     graph is not mutated meanwhile.
//
// Complexity:
//
//   - Time O(n²) for selection and boundary construction plus O(Σ|B_i|²)
//     for the completeness checks; Memory O(n + Σ|B_i|).
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - core.ErrEmptyGraph      graph has no vertices (joined with core.ErrInvalidInput)
//   - ErrStartVertexNotFound  WithStart names a missing vertex
//   - ErrNotDecomposable      matched by *NotDecomposableError via errors.Is
//   - hook errors             propagated from OnNumber
package mcs
