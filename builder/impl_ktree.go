// SPDX-License-Identifier: MIT
// Package: molic/builder
//
// impl_ktree.go - implementation of KTree(n, k) constructor.
//
// Canonical model:
//   - Start from K_{k+1} on cfg.idFn(0..k).
//   - Each further vertex i attaches to every member of an existing k-clique.
//
// Contract:
//   - k ≥ 1 and n ≥ k+1 (else ErrTooFewVertices).
//   - Without an RNG the attachment clique is {i-k, …, i-1} (a k-path).
//   - With an RNG (WithSeed/WithRand) it is drawn uniformly from the
//     k-cliques created so far, in a fixed trial order.
//
// Every k-tree is chordal with exactly n-k maximal cliques, each of size k+1,
// and every separator has size k.
//
// Complexity:
//   - Time: O(k² + (n-k)·k²) for the random variant (k new k-cliques per step).
//   - Space: O((n-k)·k²) for the k-clique pool.

package builder

import "github.com/victorsapucaia/molic/core"

// KTree returns a Constructor that builds a k-tree on n vertices.
func KTree(n, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minKTreeK {
			return tooFew(methodKTree, "k", k, minKTreeK)
		}
		if n < k+1 {
			return tooFew(methodKTree, "n", n, k+1)
		}

		base := make([]string, k+1)
		for i := range base {
			base[i] = cfg.idFn(i)
		}
		if err := addVertices(g, methodKTree, k+1, cfg.idFn); err != nil {
			return err
		}
		if err := linkAll(g, methodKTree, base); err != nil {
			return err
		}

		// Pool of k-cliques available for attachment (random variant only).
		var pool [][]string
		if cfg.rng != nil {
			pool = dropEach(base)
		}

		for i := k + 1; i < n; i++ {
			id := cfg.idFn(i)

			var host []string
			if cfg.rng == nil {
				host = make([]string, 0, k)
				for j := i - k; j < i; j++ {
					host = append(host, cfg.idFn(j))
				}
			} else {
				host = pool[cfg.rng.Intn(len(pool))]
			}

			for _, u := range host {
				if err := link(g, methodKTree, u, id); err != nil {
					return err
				}
			}

			if cfg.rng != nil {
				// host ∪ {id} is a new (k+1)-clique; its k-subsets containing id join the pool.
				grown := append(append(make([]string, 0, k+1), host...), id)
				for _, sub := range dropEach(grown) {
					if sub[len(sub)-1] == id {
						pool = append(pool, sub)
					}
				}
			}
		}

		return nil
	}
}

// dropEach returns the len(ids) subsets of ids that omit exactly one member,
// each keeping the original order.
func dropEach(ids []string) [][]string {
	out := make([][]string, 0, len(ids))
	for skip := range ids {
		sub := make([]string, 0, len(ids)-1)
		for j, id := range ids {
			if j != skip {
				sub = append(sub, id)
			}
		}
		out = append(out, sub)
	}

	return out
}
