// SPDX-License-Identifier: MIT
// Package: molic/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for p ∈ {0,1}.
//   - Validation priority: size, then probability, then RNG.
//
// Determinism:
//   - Stable trial order: i asc, then j asc with j > i. One Float64 draw
//     per pair, so a fixed seed always yields the same graph.
//
// Complexity:
//   - Time: O(n²) trials. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/victorsapucaia/molic/core"
)

// RandomSparse returns a Constructor that builds a G(n,p) random graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return tooFew(methodRandomSparse, "n", n, minRandomNodes)
		}
		if p < minProbability || p > maxProbability {
			return fmt.Errorf("%s: p=%g not in [%g,%g]: %w",
				methodRandomSparse, p, minProbability, maxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		if err := addVertices(g, methodRandomSparse, n, cfg.idFn); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := link(g, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
