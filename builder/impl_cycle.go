// SPDX-License-Identifier: MIT
// Package: molic/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Vertices cfg.idFn(0..n-1); edges i–(i+1) then the closing (n-1)–0.
//
// C_3 is a triangle; every C_n with n ≥ 4 is chordless and therefore the
// canonical non-decomposable fixture.

package builder

import "github.com/victorsapucaia/molic/core"

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		if err := addVertices(g, methodCycle, n, cfg.idFn); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(g, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
