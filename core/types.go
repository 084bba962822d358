// SPDX-License-Identifier: MIT
//
// Package core defines the central Graph and Edge types and the sentinel
// errors shared by every package that reads a graph.
//
// This file declares Edge, Graph, sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidInput classifies every malformed-graph condition reported by
	// FromAdjacency. It is joined with the specific sentinel below.
	ErrInvalidInput = errors.New("core: invalid input graph")

	// ErrEmptyGraph indicates a graph with no vertices where at least one is required.
	ErrEmptyGraph = errors.New("core: graph has no vertices")

	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates that an enumeration order lists a vertex twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex in enumeration order")

	// ErrUnknownVertex indicates that an adjacency structure references a
	// vertex that is not part of the node set.
	ErrUnknownVertex = errors.New("core: adjacency references unknown vertex")

	// ErrAsymmetricAdjacency indicates u ∈ adj(v) while v ∉ adj(u).
	ErrAsymmetricAdjacency = errors.New("core: adjacency is not symmetric")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge is an undirected pair of vertex IDs.
//
// From is always the endpoint that comes first in the graph's enumeration
// order, so an Edge value is canonical for its pair.
type Edge struct {
	// From is the endpoint enumerated first.
	From string

	// To is the endpoint enumerated second.
	To string
}

// Graph is the core in-memory undirected simple graph.
//
// order keeps vertices in insertion order and index maps each ID back to its
// position; adjacency mirrors every edge in both endpoint buckets.
// mu guards all three fields together so that the enumeration order and the
// adjacency are always observed consistently.
type Graph struct {
	mu sync.RWMutex

	// Storage
	order     []string                       // enumeration order
	index     map[string]int                 // vertex ID → position in order
	adjacency map[string]map[string]struct{} // vertex ID → neighbor set
	edgeCount int                            // number of undirected edges
}

// NewGraph creates an empty undirected simple Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		order:     make([]string, 0),
		index:     make(map[string]int),
		adjacency: make(map[string]map[string]struct{}),
	}
}
