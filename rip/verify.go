package rip

import (
	"fmt"

	"github.com/victorsapucaia/molic/core"
	"github.com/victorsapucaia/molic/nodeset"
)

// Verify checks the structural invariants of res against g:
//
//   - the union of the cliques equals the vertex set of g (ErrCoverage);
//   - no clique is a subset of another (ErrNotAntichain);
//   - Separators is aligned with Cliques, carries NoSeparator exactly at
//     index 0 (ErrSentinel);
//   - S_i ⊆ C_i and S_i ⊆ C_0 ∪ … ∪ C_{i-1} for i ≥ 1 (ErrSeparatorContainment).
//
// It returns the first violation found, or nil.
func Verify(g *core.Graph, res *Result) error {
	if g == nil || res == nil {
		return fmt.Errorf("%w: nil graph or result", ErrSentinel)
	}

	var union nodeset.Set
	for _, c := range res.Cliques {
		union = union.Union(c)
	}
	if !union.Equal(nodeset.New(g.Vertices()...)) {
		return fmt.Errorf("%w: union %s, %d vertices", ErrCoverage, union, g.VertexCount())
	}

	for i, c := range res.Cliques {
		for j, d := range res.Cliques {
			if i != j && c.SubsetOf(d) {
				return fmt.Errorf("%w: clique %d %s ⊆ clique %d %s", ErrNotAntichain, i, c, j, d)
			}
		}
	}

	if len(res.Separators) != len(res.Cliques) {
		return fmt.Errorf("%w: %d separators for %d cliques", ErrSentinel, len(res.Separators), len(res.Cliques))
	}

	var history nodeset.Set
	for i, c := range res.Cliques {
		sep, ok := res.Separators[i].Nodes()
		if i == 0 {
			if ok {
				return fmt.Errorf("%w: first clique has separator %s", ErrSentinel, sep)
			}
			history = c
			continue
		}
		if !ok {
			return fmt.Errorf("%w: clique %d has no separator", ErrSentinel, i)
		}
		if !sep.SubsetOf(c) || !sep.SubsetOf(history) {
			return fmt.Errorf("%w: separator %d %s", ErrSeparatorContainment, i, sep)
		}
		history = history.Union(c)
	}

	return nil
}
