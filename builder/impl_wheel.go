// SPDX-License-Identifier: MIT
// Package: molic/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Builds the rim Cycle(n-1) over cfg.idFn(0..n-2), then the hub
//     CenterVertexID with one spoke per rim vertex.
//
// W_4 is K_4. For n ≥ 5 the rim is a chordless cycle of length ≥ 4, so the
// wheel is not decomposable even though every rim vertex sees the hub.

package builder

import (
	"fmt"

	"github.com/victorsapucaia/molic/core"
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		if err := addVertex(g, methodWheel, CenterVertexID); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := link(g, methodWheel, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
