// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: Entry boundary for named adjacency structures.
//
// FromAdjacency is the only place where a graph arrives from an untrusted,
// caller-assembled representation, so it is the only place that validates
// the InvalidInput class: emptiness, unknown vertices, loops and asymmetry.
package core

import (
	"fmt"
	"sort"
)

// FromAdjacency builds a Graph from a named adjacency structure.
//
// Implementation:
//   - Stage 1: Resolve the enumeration order (order, or sorted keys of adj when order is nil).
//   - Stage 2: Validate IDs: non-empty, unique, and every adj key inside the node set.
//   - Stage 3: Validate each neighbor list: no loops, no unknown vertices, symmetric.
//   - Stage 4: Insert vertices in order, then edges in order.
//
// Behavior highlights:
//   - Vertices listed in order but absent from adj are isolated vertices.
//   - Repeated entries within one neighbor list are tolerated (the graph is simple).
//   - Validation walks order and the neighbor lists as given, so the first
//     reported problem is deterministic.
//
// Errors (each joined with ErrInvalidInput):
//   - ErrEmptyGraph, ErrEmptyVertexID, ErrDuplicateVertex,
//     ErrUnknownVertex, ErrLoopNotAllowed, ErrAsymmetricAdjacency.
//
// Complexity:
//   - Time O(V + E·d) for the symmetry scan, Space O(V + E).
func FromAdjacency(order []string, adj map[string][]string) (*Graph, error) {
	if order == nil {
		order = make([]string, 0, len(adj))
		for id := range adj {
			order = append(order, id)
		}
		sort.Strings(order)
	}
	if len(order) == 0 {
		return nil, invalid(ErrEmptyGraph, "no vertices")
	}

	members := make(map[string]struct{}, len(order))
	for _, id := range order {
		if id == "" {
			return nil, invalid(ErrEmptyVertexID, "in enumeration order")
		}
		if _, dup := members[id]; dup {
			return nil, invalid(ErrDuplicateVertex, "%q", id)
		}
		members[id] = struct{}{}
	}

	keys := make([]string, 0, len(adj))
	for id := range adj {
		keys = append(keys, id)
	}
	sort.Strings(keys)
	for _, id := range keys {
		if _, ok := members[id]; !ok {
			return nil, invalid(ErrUnknownVertex, "adjacency key %q", id)
		}
	}

	// Per-vertex membership lookup for the symmetry check.
	lists := make(map[string]map[string]struct{}, len(adj))
	for id, nbrs := range adj {
		set := make(map[string]struct{}, len(nbrs))
		for _, v := range nbrs {
			set[v] = struct{}{}
		}
		lists[id] = set
	}

	for _, u := range order {
		for _, v := range adj[u] {
			if v == u {
				return nil, invalid(ErrLoopNotAllowed, "vertex %q", u)
			}
			if _, ok := members[v]; !ok {
				return nil, invalid(ErrUnknownVertex, "%q lists %q", u, v)
			}
			if _, ok := lists[v][u]; !ok {
				return nil, invalid(ErrAsymmetricAdjacency, "%q lists %q but %q does not list %q", u, v, v, u)
			}
		}
	}

	g := NewGraph()
	for _, id := range order {
		g.addVertexLocked(id)
	}
	for _, u := range order {
		for _, v := range adj[u] {
			g.addEdgeLocked(u, v)
		}
	}

	return g, nil
}

// invalid joins ErrInvalidInput with the specific sentinel and a context message.
func invalid(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidInput, fmt.Sprintf(format, args...), kind)
}
