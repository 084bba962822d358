// Package dfs implements the connectivity utility consumed by callers of the
// decomposability pipeline: an iterative, explicit-stack depth-first search
// over a core.Graph.
//
// What:
//
//   - Reachable: every vertex reachable from a root, each exactly once.
//   - Components: the connected components, in order of their first vertex.
//   - IsConnected: whether the graph is a single component.
//
// Why:
//
//   - Package rip assumes a connected input; the clique sequence of a
//     disconnected graph is a forest glued by empty separators. Hosts run
//     IsConnected before calling rip.RIP to enforce the precondition.
//
// Traversal uses an explicit stack, so deep graphs (long paths) never grow
// the goroutine stack. Vertices are marked when popped; a vertex pushed
// twice is skipped the second time.
//
// Key Types:
//
//   - Option: functional options for traversal behavior
//   - Options: holds Context, OnVisit hook and FilterNeighbor predicate
//
// Complexity:
//
//   - Reachable:   Time O(V+E), Memory O(V+E) (stack may hold duplicates)
//   - Components:  Time O(V+E), Memory O(V+E)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  root vertex ID not in graph
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit
package dfs
