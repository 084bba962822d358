// Package dfs defines types and options for depth-first traversal,
// including cancellation, a pre-order hook and neighbor filtering.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Reachable,
	// Components or IsConnected.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified root vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of a traversal.
type Option func(*Options)

// Options holds configurable parameters for traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is first marked visited.
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// FilterNeighbor, if non-nil, is called for each neighbor ID before it is
	// pushed. Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(id string) bool
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No hook
//   - No neighbor filtering
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        nil,
		FilterNeighbor: nil,
	}
}

// WithContext returns an Option that sets the Context for traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a visit hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithFilterNeighbor returns an Option that filters neighbor IDs.
// If fn(id) == false, that neighbor is never pushed.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}
