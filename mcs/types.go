package mcs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/victorsapucaia/molic/nodeset"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Search.
	ErrGraphNil = errors.New("mcs: graph is nil")

	// ErrStartVertexNotFound indicates that WithStart named a vertex absent from the graph.
	ErrStartVertexNotFound = errors.New("mcs: start vertex not found")

	// ErrNotDecomposable indicates that a boundary set is not complete, so the
	// graph is not decomposable. Use errors.As with *NotDecomposableError for
	// the offending boundary set.
	ErrNotDecomposable = errors.New("mcs: graph is not decomposable")
)

// NotDecomposableError reports the first boundary set that failed the
// completeness check.
type NotDecomposableError struct {
	// Step is the 1-based position of Vertex in the numbering.
	Step int

	// Vertex is v_Step, the vertex whose boundary set failed.
	Vertex string

	// Boundary lists B_Step in numbering order.
	Boundary []string

	// Missing is the first pair of Boundary members that are not adjacent.
	Missing [2]string
}

// Error implements the error interface.
func (e *NotDecomposableError) Error() string {
	return fmt.Sprintf("%s: boundary {%s} of %q at step %d is not complete (%q and %q are not adjacent)",
		ErrNotDecomposable, strings.Join(e.Boundary, ", "), e.Vertex, e.Step, e.Missing[0], e.Missing[1])
}

// Is makes errors.Is(err, ErrNotDecomposable) true for every *NotDecomposableError.
func (e *NotDecomposableError) Is(target error) bool {
	return target == ErrNotDecomposable
}

// Option configures optional behavior of Search.
type Option func(*Options)

// Options holds configurable parameters for Search.
type Options struct {
	// Start, if non-empty, is numbered first instead of g.Vertices()[0].
	Start string

	// OnNumber, if non-nil, is invoked after each vertex is numbered and its
	// boundary set has passed the completeness check. step is 1-based.
	// Returning an error aborts the search with that error.
	OnNumber func(step int, id string, boundary nodeset.Set) error
}

// DefaultOptions returns Options with:
//   - the first enumerated vertex as v_1
//   - no hook
func DefaultOptions() Options {
	return Options{
		Start:    "",
		OnNumber: nil,
	}
}

// WithStart returns an Option that numbers id first.
func WithStart(id string) Option {
	return func(o *Options) {
		o.Start = id
	}
}

// WithOnNumber returns an Option that installs fn as a per-step hook.
func WithOnNumber(fn func(step int, id string, boundary nodeset.Set) error) Option {
	return func(o *Options) {
		o.OnNumber = fn
	}
}

// Result is the outcome of a successful search.
// Numbering and Boundaries are index-aligned: Boundaries[i] belongs to Numbering[i].
type Result struct {
	// Numbering is the perfect numbering v_1, …, v_n, a permutation of the vertices.
	Numbering []string

	// Boundaries is the boundary sequence B_1, …, B_n.
	Boundaries []nodeset.Set
}

// EliminationOrder returns the reverse numbering, a perfect elimination ordering.
func (r *Result) EliminationOrder() []string {
	out := make([]string, len(r.Numbering))
	for i, id := range r.Numbering {
		out[len(out)-1-i] = id
	}

	return out
}
