package rip

import (
	"fmt"

	"github.com/victorsapucaia/molic/core"
	"github.com/victorsapucaia/molic/mcs"
)

// RIP runs Maximum Cardinality Search on g, extracts the maximal cliques from
// the boundary sequence and builds their separators.
//
// Any mcs error (nil or empty graph, missing start vertex, NotDecomposable,
// hook error) aborts the call and is returned wrapped; use errors.Is with
// mcs.ErrNotDecomposable or core.ErrInvalidInput to classify it.
func RIP(g *core.Graph, opts ...mcs.Option) (*Result, error) {
	search, err := mcs.Search(g, opts...)
	if err != nil {
		return nil, fmt.Errorf("rip: %w", err)
	}

	cliques := Cliques(search.Boundaries)

	return &Result{
		Numbering:  search.Numbering,
		Cliques:    cliques,
		Separators: Separators(cliques),
	}, nil
}
