package dfs

import (
	"fmt"

	"github.com/victorsapucaia/molic/core"
)

// walker encapsulates state shared by the traversals of one call.
type walker struct {
	graph   *core.Graph
	opts    Options
	visited map[string]bool
}

// newWalker validates g and applies opts.
func newWalker(g *core.Graph, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &walker{graph: g, opts: o, visited: make(map[string]bool, g.VertexCount())}, nil
}

// Reachable returns every vertex reachable from root, root included, each
// exactly once. The returned order is the discovery order of an iterative
// DFS that explores neighbors in enumeration order; callers should treat it
// as a set.
func Reachable(g *core.Graph, root string, opts ...Option) ([]string, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, root)
	}

	return w.walk(root)
}

// Components partitions the vertices into connected components. Components
// are listed in enumeration order of their first vertex.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}

	var out [][]string
	for _, v := range g.Vertices() {
		if w.visited[v] {
			continue
		}
		comp, err := w.walk(v)
		if err != nil {
			return nil, err
		}
		out = append(out, comp)
	}

	return out, nil
}

// IsConnected reports whether every vertex is reachable from the first one.
// The empty graph is reported as connected.
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return true, nil
	}
	reach, err := Reachable(g, vertices[0])
	if err != nil {
		return false, err
	}

	return len(reach) == len(vertices), nil
}

// walk runs one explicit-stack traversal from root over unvisited vertices.
func (w *walker) walk(root string) ([]string, error) {
	var out []string
	stack := []string{root}

	for len(stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		// 2. Pop
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.visited[u] {
			continue
		}

		// 3. Mark and record
		w.visited[u] = true
		out = append(out, u)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(u); err != nil {
				return nil, fmt.Errorf("dfs: OnVisit hook for %q: %w", u, err)
			}
		}

		// 4. Push unvisited neighbors in reverse so the first one is explored first
		nbs, err := w.graph.NeighborIDs(u)
		if err != nil {
			return nil, fmt.Errorf("dfs: NeighborIDs(%q): %w", u, err)
		}
		for i := len(nbs) - 1; i >= 0; i-- {
			v := nbs[i]
			if w.visited[v] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(v) {
				continue
			}
			stack = append(stack, v)
		}
	}

	return out, nil
}
