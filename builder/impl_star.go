// SPDX-License-Identifier: MIT
// Package: molic/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub CenterVertexID is added first, then leaves cfg.idFn(1..n-1),
//     each joined to the hub.

package builder

import "github.com/victorsapucaia/molic/core"

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		if err := addVertex(g, methodStar, CenterVertexID); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, methodStar, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
