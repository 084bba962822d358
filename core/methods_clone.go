// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies and induced subgraphs.
//
// Determinism:
//   - Copies keep the source enumeration order (filtered for InducedSubgraph).
//
// Concurrency:
//   - Read lock on the source only; the copy is private until returned.
package core

// Clone returns a deep copy of the Graph: vertices, enumeration order and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return g.InducedSubgraph(nil)
}

// InducedSubgraph returns a new Graph induced by the vertices v with keep[v] == true:
// the result contains those vertices, in their original relative order, and
// every edge whose endpoints are both kept. A nil keep map keeps everything.
// The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read lock only on source.
func (g *Graph) InducedSubgraph(keep map[string]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	kept := func(id string) bool { return keep == nil || keep[id] }

	out := NewGraph()
	for _, id := range g.order {
		if kept(id) {
			out.addVertexLocked(id)
		}
	}
	for _, u := range g.order {
		if !kept(u) {
			continue
		}
		for v := range g.adjacency[u] {
			if kept(v) {
				out.addEdgeLocked(u, v) // idempotent on the mirrored pass
			}
		}
	}

	return out
}
