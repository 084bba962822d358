// SPDX-License-Identifier: MIT
// Package: molic/builder
//
// impl_fan.go - implementation of Fan(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Hub CenterVertexID first, then the path cfg.idFn(0..n-2); every path
//     vertex is joined to the hub.
//
// A fan is a triangulated polygon: chordal, with n-2 triangles as cliques.

package builder

import "github.com/victorsapucaia/molic/core"

// Fan returns a Constructor that builds F_n = P_{n-1} + hub.
func Fan(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minFanNodes {
			return tooFew(methodFan, "n", n, minFanNodes)
		}
		if err := addVertex(g, methodFan, CenterVertexID); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			id := cfg.idFn(i)
			if err := link(g, methodFan, CenterVertexID, id); err != nil {
				return err
			}
			if i > 0 {
				if err := link(g, methodFan, cfg.idFn(i-1), id); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
