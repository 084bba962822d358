package rip

import "github.com/victorsapucaia/molic/nodeset"

// Separators computes the separator of every clique of a RIP-ordered sequence:
// the first clique carries NoSeparator, and clique i ≥ 1 gets
// C_i ∩ (C_0 ∪ … ∪ C_{i-1}), listed in the order of C_i.
// A nil or empty input yields nil.
//
// Complexity: O(Σ|C_i|) using a running union.
func Separators(cliques []nodeset.Set) []Separator {
	if len(cliques) == 0 {
		return nil
	}

	out := make([]Separator, len(cliques))
	out[0] = NoSeparator()
	history := cliques[0]
	for i := 1; i < len(cliques); i++ {
		out[i] = SeparatorOf(cliques[i].Intersect(history))
		history = history.Union(cliques[i])
	}

	return out
}
