// SPDX-License-Identifier: MIT
// Package: molic/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Vertices cfg.idFn(0..n-1); edges for all i<j in lexicographic (i,j) order.
//
// Complexity:
//   - Time: O(n²). Space: O(n) for the ID slice.

package builder

import "github.com/victorsapucaia/molic/core"

// Complete returns a Constructor that builds K_n, a single clique.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, "n", n, minCompleteNodes)
		}
		ids := make([]string, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
		}
		if err := addVertices(g, methodComplete, n, cfg.idFn); err != nil {
			return err
		}

		return linkAll(g, methodComplete, ids)
	}
}
