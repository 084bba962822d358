// Package core provides the thread-safe, in-memory undirected Graph consumed by
// the decomposability pipeline (mcs, rip) and the connectivity utility (dfs).
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only; adjacency is mirrored so u ∈ adj(v) ⇔ v ∈ adj(u).
//   - Simple: no self-loops (ErrLoopNotAllowed), no parallel edges
//     (re-adding an existing edge is a no-op).
//   - Caller-fixed enumeration order: Vertices() and NeighborIDs() report
//     vertices in the order they were first added, never in map order.
//     Maximum Cardinality Search uses this order to choose its first vertex
//     and to break label ties, so two runs over equal graphs are identical.
//   - A single sync.RWMutex guards the vertex catalog and the adjacency, so
//     concurrent readers never observe a half-inserted edge.
//
// Core Methods:
//
//	// Construction
//	NewGraph() *Graph                                      // O(1)
//	FromAdjacency(order []string, adj map[string][]string) // O(V+E), validated
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	Index(id string) (int, bool)       // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v string) error         // O(1)
//	RemoveEdge(u, v string) error      // O(1)
//	HasEdge(u, v string) bool          // O(1)
//
//	// Query
//	Vertices() []string                    // O(V), enumeration order
//	NeighborIDs(id string) ([]string, error)// O(d·log d), enumeration order
//	Degree(id string) (int, error)         // O(1)
//	Edges() []Edge                         // O(E·log E)
//	AdjacencyList() map[string][]string    // O(V+E)
//	VertexCount() int, EdgeCount() int     // O(1)
//
//	// Copies
//	Clone() *Graph                         // O(V+E)
//	InducedSubgraph(keep map[string]bool)  // O(V+E)
//
// Errors:
//
//	ErrInvalidInput        – umbrella for every malformed-input condition below
//	ErrEmptyGraph          – FromAdjacency received no vertices
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrDuplicateVertex     – vertex listed twice in an enumeration order
//	ErrUnknownVertex       – adjacency references a vertex outside the node set
//	ErrAsymmetricAdjacency – u lists v but v does not list u
//	ErrLoopNotAllowed      – self-loop
//	ErrVertexNotFound      – query on a missing vertex
//	ErrEdgeNotFound        – removal of a missing edge
//
// FromAdjacency joins each specific error with ErrInvalidInput, so callers can
// separate a malformed graph from a well-formed but non-chordal one with a
// single errors.Is check.
package core
