// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() is sorted by (index(From), index(To)).
//
// Concurrency:
//   - All mutations hold mu for writing; queries hold it for reading.
package core

import "sort"

// AddEdge connects u and v with an undirected edge.
//
// Implementation:
//   - Stage 1: Validate IDs (ErrEmptyVertexID) and reject loops (ErrLoopNotAllowed).
//   - Stage 2: Under the write lock, auto-add missing endpoints (u first, then v).
//   - Stage 3: Mirror the edge into both neighbor buckets if it is new.
//
// Behavior highlights:
//   - Idempotent: the graph is simple, so re-adding an edge is a no-op.
//   - Auto-added endpoints are appended to the enumeration order in argument order.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(u)
	g.addVertexLocked(v)
	g.addEdgeLocked(u, v)

	return nil
}

// addEdgeLocked mirrors u–v into both buckets. Caller holds the write lock
// and guarantees both endpoints exist and differ.
func (g *Graph) addEdgeLocked(u, v string) {
	if _, exists := g.adjacency[u][v]; exists {
		return
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++
}

// RemoveEdge deletes the undirected edge u–v.
//
// Errors:
//   - ErrEdgeNotFound: if the edge (or either endpoint) does not exist.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[u][v]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether u and v are adjacent. Missing vertices ⇒ false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[u][v]

	return ok
}

// EdgeCount returns the number of undirected edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every undirected edge once, canonicalized so that From is
// enumerated before To, and sorted by (index(From), index(To)).
//
// Complexity:
//   - Time O(E log E), Space O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, u := range g.order {
		for v := range g.adjacency[u] {
			if g.index[u] < g.index[v] {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		fi, fj := g.index[out[i].From], g.index[out[j].From]
		if fi != fj {
			return fi < fj
		}

		return g.index[out[i].To] < g.index[out[j].To]
	})

	return out
}
