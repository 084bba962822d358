package core_test

import (
	"errors"
	"fmt"

	"github.com/victorsapucaia/molic/core"
)

// ExampleFromAdjacency loads a named adjacency structure and shows that the
// caller's enumeration order is preserved.
func ExampleFromAdjacency() {
	g, err := core.FromAdjacency(
		[]string{"A", "B", "C", "D"},
		map[string][]string{
			"A": {"B", "D", "C"},
			"B": {"A", "C"},
			"C": {"A", "B", "D"},
			"D": {"A", "C"},
		},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	nbs, _ := g.NeighborIDs("A")
	fmt.Println(g.Vertices(), g.EdgeCount(), nbs)

	// Output:
	// [A B C D] 5 [B C D]
}

// ExampleFromAdjacency_asymmetric shows how malformed input is classified.
func ExampleFromAdjacency_asymmetric() {
	_, err := core.FromAdjacency([]string{"A", "B"}, map[string][]string{"A": {"B"}})
	fmt.Println(errors.Is(err, core.ErrInvalidInput), errors.Is(err, core.ErrAsymmetricAdjacency))

	// Output:
	// true true
}
