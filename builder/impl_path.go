// SPDX-License-Identifier: MIT
// Package: molic/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1)–i for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import "github.com/victorsapucaia/molic/core"

// Path returns a Constructor that builds a simple path P_n. Paths are trees,
// hence chordal; their cliques are the n-1 edges.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		if err := addVertices(g, methodPath, n, cfg.idFn); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, methodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
