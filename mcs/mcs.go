package mcs

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/victorsapucaia/molic/core"
	"github.com/victorsapucaia/molic/nodeset"
)

// searcher encapsulates the state of one Search call.
type searcher struct {
	graph     *core.Graph
	opts      Options
	labels    map[string]int     // numbered-neighbor counts of unnumbered vertices
	remaining *linkedhashset.Set // unnumbered vertices in enumeration order
	res       *Result
}

// Search runs Maximum Cardinality Search on g and validates decomposability
// along the way. It returns the perfect numbering and the boundary sequence,
// or an error; on error no partial result is returned.
func Search(g *core.Graph, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, fmt.Errorf("mcs: %w: %w", core.ErrInvalidInput, core.ErrEmptyGraph)
	}

	// 3. Choose v_1
	start := vertices[0]
	if o.Start != "" {
		if !g.HasVertex(o.Start) {
			return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, o.Start)
		}
		start = o.Start
	}

	// 4. Initialize per-call state
	s := &searcher{
		graph:     g,
		opts:      o,
		labels:    make(map[string]int, len(vertices)),
		remaining: linkedhashset.New(),
		res: &Result{
			Numbering:  make([]string, 0, len(vertices)),
			Boundaries: make([]nodeset.Set, 0, len(vertices)),
		},
	}
	for _, v := range vertices {
		s.labels[v] = 0
		s.remaining.Add(v)
	}

	// 5. Number v_1, then v_2 … v_n
	if err := s.number(start); err != nil {
		return nil, err
	}
	prev := start
	for i := 1; i < len(vertices); i++ {
		if err := s.bump(prev); err != nil {
			return nil, err
		}
		v := s.pick()
		if err := s.number(v); err != nil {
			return nil, err
		}
		prev = v
	}

	return s.res, nil
}

// bump increments the label of every unnumbered neighbor of v.
func (s *searcher) bump(v string) error {
	nbs, err := s.graph.NeighborIDs(v)
	if err != nil {
		return fmt.Errorf("mcs: NeighborIDs(%q): %w", v, err)
	}
	for _, w := range nbs {
		if s.remaining.Contains(w) {
			s.labels[w]++
		}
	}

	return nil
}

// pick returns the remaining vertex with the largest label. Only a strictly
// larger label replaces the current best, so ties resolve to the vertex
// encountered first in enumeration order.
func (s *searcher) pick() string {
	best, bestLabel := "", -1
	it := s.remaining.Iterator()
	for it.Next() {
		id := it.Value().(string)
		if s.labels[id] > bestLabel {
			best, bestLabel = id, s.labels[id]
		}
	}

	return best
}

// number assigns the next position to v, builds its boundary set against the
// numbered prefix and verifies that the boundary set is complete.
func (s *searcher) number(v string) error {
	s.remaining.Remove(v)
	delete(s.labels, v)
	s.res.Numbering = append(s.res.Numbering, v)
	step := len(s.res.Numbering)

	// B_i in numbering order: v's numbered neighbors plus v itself.
	members := make([]string, 0, step)
	for _, u := range s.res.Numbering {
		if u == v || s.graph.HasEdge(v, u) {
			members = append(members, u)
		}
	}
	boundary := nodeset.New(members...)

	// Sets of at most two members are trivially complete.
	if boundary.Len() > 2 {
		if x, y, ok := s.complete(members); !ok {
			return &NotDecomposableError{
				Step:     step,
				Vertex:   v,
				Boundary: members,
				Missing:  [2]string{x, y},
			}
		}
	}
	s.res.Boundaries = append(s.res.Boundaries, boundary)

	if s.opts.OnNumber != nil {
		if err := s.opts.OnNumber(step, v, boundary); err != nil {
			return fmt.Errorf("mcs: OnNumber hook for %q: %w", v, err)
		}
	}

	return nil
}

// complete checks every pair of members for adjacency and returns the first
// non-adjacent pair when the set is not a clique.
func (s *searcher) complete(members []string) (string, string, bool) {
	for j := 0; j < len(members); j++ {
		for k := j + 1; k < len(members); k++ {
			if !s.graph.HasEdge(members[j], members[k]) {
				return members[j], members[k], false
			}
		}
	}

	return "", "", true
}

// IsDecomposable reports whether g is decomposable (chordal).
// A NotDecomposable outcome is reported as (false, nil); any other failure,
// such as an empty or nil graph, is returned as an error.
func IsDecomposable(g *core.Graph, opts ...Option) (bool, error) {
	_, err := Search(g, opts...)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotDecomposable):
		return false, nil
	default:
		return false, err
	}
}
