package builder

import (
	"fmt"

	"github.com/victorsapucaia/molic/core"
)

// addVertices inserts idFn(0..n-1) into g in ascending index order.
func addVertices(g *core.Graph, method string, n int, idFn IDFn) error {
	for i := 0; i < n; i++ {
		if err := addVertex(g, method, idFn(i)); err != nil {
			return err
		}
	}

	return nil
}

// addVertex inserts a single vertex, tagging failures with method.
func addVertex(g *core.Graph, method, id string) error {
	if err := g.AddVertex(id); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w: %w", method, id, err, ErrConstructFailed)
	}

	return nil
}

// link adds the undirected edge u–v, tagging failures with method.
func link(g *core.Graph, method, u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s): %w: %w", method, u, v, err, ErrConstructFailed)
	}

	return nil
}

// linkAll connects every unordered pair in ids.
// Complexity: O(m²) where m = len(ids).
func linkAll(g *core.Graph, method string, ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := link(g, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// tooFew formats the uniform size-violation error.
func tooFew(method, param string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
}
