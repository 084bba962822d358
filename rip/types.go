package rip

import (
	"errors"

	"github.com/victorsapucaia/molic/nodeset"
)

// Sentinel errors reported by Verify.
var (
	// ErrCoverage indicates that the union of the cliques differs from the vertex set.
	ErrCoverage = errors.New("rip: cliques do not cover the vertex set")

	// ErrNotAntichain indicates that one clique is contained in another.
	ErrNotAntichain = errors.New("rip: cliques are not an antichain")

	// ErrSeparatorContainment indicates S_i ⊄ C_i or S_i ⊄ C_0 ∪ … ∪ C_{i-1}.
	ErrSeparatorContainment = errors.New("rip: separator not contained in its clique and history")

	// ErrSentinel indicates a misplaced or missing NoSeparator value, or a
	// separator sequence not aligned with the clique sequence.
	ErrSentinel = errors.New("rip: separator sequence is malformed")
)

// Separator is the separator of one clique: either the tagged absence carried
// by the first clique, or a (possibly empty) set of vertices.
type Separator struct {
	nodes   nodeset.Set
	present bool
}

// NoSeparator returns the value carried by the first clique of a sequence.
func NoSeparator() Separator {
	return Separator{}
}

// SeparatorOf returns a present separator holding s. s may be empty.
func SeparatorOf(s nodeset.Set) Separator {
	return Separator{nodes: s, present: true}
}

// Nodes returns the separator set and true, or the empty set and false for NoSeparator.
func (s Separator) Nodes() (nodeset.Set, bool) {
	return s.nodes, s.present
}

// IsNone reports whether s is NoSeparator.
func (s Separator) IsNone() bool {
	return !s.present
}

// String renders NoSeparator as "<none>" and a present separator as its set.
func (s Separator) String() string {
	if !s.present {
		return "<none>"
	}

	return s.nodes.String()
}

// Result is the Running-Intersection ordering of a decomposable graph.
type Result struct {
	// Numbering is the perfect numbering the cliques were extracted from.
	Numbering []string

	// Cliques are the maximal cliques in RIP order.
	Cliques []nodeset.Set

	// Separators is aligned with Cliques; Separators[0] is NoSeparator.
	Separators []Separator
}

// Parents returns the clique-tree edges implied by the RIP order.
// Parents()[0] is -1; for i ≥ 1 it is the smallest j < i with S_i ⊆ C_j,
// or -1 when no earlier clique contains S_i (which RIP rules out).
func (r *Result) Parents() []int {
	parents := make([]int, len(r.Cliques))
	for i := range r.Cliques {
		parents[i] = -1
		if i == 0 || i >= len(r.Separators) {
			continue
		}
		sep, ok := r.Separators[i].Nodes()
		if !ok {
			continue
		}
		for j := 0; j < i; j++ {
			if sep.SubsetOf(r.Cliques[j]) {
				parents[i] = j
				break
			}
		}
	}

	return parents
}
