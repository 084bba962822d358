package mcs_test

import (
	"errors"
	"fmt"

	"github.com/victorsapucaia/molic/core"
	"github.com/victorsapucaia/molic/mcs"
)

// ExampleSearch numbers the 4-cycle A-B-C-D-A with chord A-C.
//
//	A───B
//	│ ╲ │
//	D───C
func ExampleSearch() {
	g, _ := core.FromAdjacency([]string{"A", "B", "C", "D"}, map[string][]string{
		"A": {"B", "D", "C"},
		"B": {"A", "C"},
		"C": {"A", "B", "D"},
		"D": {"A", "C"},
	})

	res, err := mcs.Search(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Numbering)
	fmt.Println(res.Boundaries)

	// Output:
	// [A B C D]
	// [{A} {A, B} {A, B, C} {A, C, D}]
}

// ExampleSearch_notDecomposable shows the diagnostics of a chordless 4-cycle.
func ExampleSearch_notDecomposable() {
	g, _ := core.FromAdjacency([]string{"A", "B", "C", "D"}, map[string][]string{
		"A": {"B", "D"},
		"B": {"A", "C"},
		"C": {"B", "D"},
		"D": {"A", "C"},
	})

	_, err := mcs.Search(g)
	var nde *mcs.NotDecomposableError
	if errors.As(err, &nde) {
		fmt.Println(nde.Vertex, nde.Boundary, nde.Missing)
	}
	fmt.Println(errors.Is(err, mcs.ErrNotDecomposable))

	// Output:
	// D [A C D] [A C]
	// true
}
