package nodeset

import "strings"

// Set is an immutable, insertion-ordered set of vertex IDs.
type Set struct {
	ids []string       // members in insertion order
	pos map[string]int // member → position in ids
}

// New returns a Set of ids in first-occurrence order; duplicates are dropped.
func New(ids ...string) Set {
	s := Set{
		ids: make([]string, 0, len(ids)),
		pos: make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		if _, seen := s.pos[id]; seen {
			continue
		}
		s.pos[id] = len(s.ids)
		s.ids = append(s.ids, id)
	}

	return s
}

// Len returns the number of members.
func (s Set) Len() int { return len(s.ids) }

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool { return len(s.ids) == 0 }

// Contains reports membership of id.
func (s Set) Contains(id string) bool {
	_, ok := s.pos[id]

	return ok
}

// IDs returns a copy of the members in insertion order.
func (s Set) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)

	return out
}

// SubsetOf reports s ⊆ t.
func (s Set) SubsetOf(t Set) bool {
	if len(s.ids) > len(t.ids) {
		return false
	}
	for _, id := range s.ids {
		if !t.Contains(id) {
			return false
		}
	}

	return true
}

// ProperSubsetOf reports s ⊂ t.
func (s Set) ProperSubsetOf(t Set) bool {
	return len(s.ids) < len(t.ids) && s.SubsetOf(t)
}

// Equal reports whether s and t have the same members, regardless of order.
func (s Set) Equal(t Set) bool {
	return len(s.ids) == len(t.ids) && s.SubsetOf(t)
}

// Intersect returns s ∩ t, listed in the order of s.
func (s Set) Intersect(t Set) Set {
	out := make([]string, 0, min(len(s.ids), len(t.ids)))
	for _, id := range s.ids {
		if t.Contains(id) {
			out = append(out, id)
		}
	}

	return New(out...)
}

// Union returns s ∪ t: the members of s in order, then the members of t not in s.
func (s Set) Union(t Set) Set {
	out := make([]string, 0, len(s.ids)+len(t.ids))
	out = append(out, s.ids...)
	out = append(out, t.ids...)

	return New(out...)
}

// String renders the set as "{A, B, C}" in member order.
func (s Set) String() string {
	return "{" + strings.Join(s.ids, ", ") + "}"
}
