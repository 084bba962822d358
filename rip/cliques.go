package rip

import "github.com/victorsapucaia/molic/nodeset"

// Cliques filters a boundary sequence down to its maximal elements, keeping
// their original order. Applied to the boundary sequence of an MCS run, it
// yields the maximal cliques of the graph in RIP order.
//
// An element is dropped when it is properly contained in another element, or
// when it equals an earlier element. Boundary sequences never contain equal
// sets, so the second rule only matters for arbitrary input; it keeps the
// output an antichain and makes Cliques idempotent.
//
// Complexity: O(n²) set comparisons.
func Cliques(boundaries []nodeset.Set) []nodeset.Set {
	out := make([]nodeset.Set, 0, len(boundaries))
	for i, b := range boundaries {
		if !dominated(boundaries, i, b) {
			out = append(out, b)
		}
	}

	return out
}

// dominated reports whether b = sets[i] is contained in some other element.
func dominated(sets []nodeset.Set, i int, b nodeset.Set) bool {
	for j, other := range sets {
		if j == i || !b.SubsetOf(other) {
			continue
		}
		if b.Len() < other.Len() || j < i {
			return true
		}
	}

	return false
}
