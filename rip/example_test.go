package rip_test

import (
	"errors"
	"fmt"

	"github.com/victorsapucaia/molic/core"
	"github.com/victorsapucaia/molic/mcs"
	"github.com/victorsapucaia/molic/rip"
)

// ExampleRIP decomposes a square with the chord A–C.
func ExampleRIP() {
	g, _ := core.FromAdjacency(
		[]string{"A", "B", "C", "D"},
		map[string][]string{
			"A": {"B", "C", "D"},
			"B": {"A", "C"},
			"C": {"A", "B", "D"},
			"D": {"A", "C"},
		},
	)

	res, err := rip.RIP(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Cliques)
	fmt.Println(res.Separators)
	fmt.Println(res.Parents())
	// Output:
	// [{A, B, C} {A, C, D}]
	// [<none> {A, C}]
	// [-1 0]
}

// ExampleRIP_notDecomposable shows the diagnostics for a chordless square.
func ExampleRIP_notDecomposable() {
	g, _ := core.FromAdjacency(
		[]string{"A", "B", "C", "D"},
		map[string][]string{
			"A": {"B", "D"},
			"B": {"A", "C"},
			"C": {"B", "D"},
			"D": {"A", "C"},
		},
	)

	_, err := rip.RIP(g)
	var nd *mcs.NotDecomposableError
	fmt.Println(errors.As(err, &nd), nd.Step, nd.Vertex, nd.Missing)
	// Output: true 4 D [A C]
}
