// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in enumeration (first-insertion) order.
//
// Concurrency:
//   - Vertex catalog and adjacency are protected by mu.
package core

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, append the ID to the enumeration order
//     and allocate its empty neighbor bucket.
//
// Behavior highlights:
//   - Idempotent: adding an existing vertex keeps its original position.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id at the end of the enumeration order.
// Caller must hold g.mu for writing and must have validated id.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.index[id]; exists {
		return // keep the first position
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	g.adjacency[id] = make(map[string]struct{})
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[id]

	return ok
}

// Index returns the position of id in the enumeration order.
// The second result is false when the vertex does not exist.
// Complexity: O(1).
func (g *Graph) Index(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]

	return i, ok
}

// Vertices returns all vertex IDs in enumeration order.
//
// Implementation:
//   - Stage 1: Acquire read lock.
//   - Stage 2: Copy the order slice so callers may retain and mutate it.
//
// Determinism:
//   - The order is the order of first insertion; it never depends on map
//     iteration. Algorithms rely on this for reproducible tie-breaking.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Degree returns the number of neighbors of id.
//
// Errors:
//   - ErrVertexNotFound: if id is absent.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}
