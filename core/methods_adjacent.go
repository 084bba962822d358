// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries and adjacency snapshots.
package core

import "sort"

// NeighborIDs returns the neighbors of id in enumeration order.
//
// Implementation:
//   - Stage 1: Acquire read lock and fetch the neighbor bucket.
//   - Stage 2: Copy IDs out of the bucket and sort them by enumeration index.
//
// Behavior highlights:
//   - The returned slice is freshly allocated; callers may retain and mutate it.
//   - Output never depends on Go map iteration order.
//
// Errors:
//   - ErrVertexNotFound: if id is absent.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d = deg(id).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return g.sortedLocked(nbrs), nil
}

// sortedLocked returns the members of set ordered by enumeration index.
// Caller holds at least the read lock.
func (g *Graph) sortedLocked(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for v := range set {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return g.index[ids[i]] < g.index[ids[j]] })

	return ids
}

// AdjacencyList returns a snapshot mapping each vertex ID to its neighbor IDs.
//
// Behavior highlights:
//   - Each slice is freshly allocated and listed in enumeration order.
//   - Every vertex appears as a key, including isolated ones (empty slice).
//
// Determinism:
//   - Per-vertex slices are deterministic. Map key iteration is not; use
//     Vertices() for a stable key order.
//
// Complexity:
//   - Time O(V + E log Δ), Space O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.order))
	for _, id := range g.order {
		out[id] = g.sortedLocked(g.adjacency[id])
	}

	return out
}
