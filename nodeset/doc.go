// Package nodeset provides Set, an immutable set of vertex IDs that remembers
// the order in which its members were supplied.
//
// Boundary sets produced by Maximum Cardinality Search are defined against a
// prefix of the perfect numbering, so their member order carries meaning
// (numbering order) even though set algebra ignores it. Set keeps both: all
// comparisons (SubsetOf, Equal) are order-insensitive, while IDs, Intersect
// and Union preserve a documented order so that every derived sequence is
// reproducible and never depends on map iteration.
//
// The zero value is the empty set and is ready to use.
//
// Complexity:
//
//   - New, IDs, String:        O(n)
//   - Contains:                O(1)
//   - SubsetOf, Equal:         O(|s|)
//   - Intersect, Union:        O(|s| + |t|)
package nodeset
