// Package molic decomposes undirected graphs into their maximal cliques.
//
// Given a simple undirected graph, molic decides whether it is decomposable
// (chordal) and, if so, lists its maximal cliques C_1, …, C_p in an order
// with the running intersection property, together with the separators
// S_j = C_j ∩ (C_1 ∪ … ∪ C_{j-1}).
//
// The pipeline is organized under the following packages:
//
//	core/     - Graph: thread-safe simple undirected graph with a stable enumeration order
//	nodeset/  - Set: ordered vertex sets (subset, intersection, union)
//	mcs/      - Maximum Cardinality Search, perfect numbering and the decomposability check
//	rip/      - maximal cliques, separators, clique-tree parents and Verify
//	dfs/      - iterative reachability and connected components
//	builder/  - deterministic graph fixtures (paths, fans, k-trees, cycles, grids, G(n,p))
//	graphio/  - JSON/TOML graph documents, result documents, DOT and SVG
//
// Quick example:
//
//	g, err := core.FromAdjacency(
//		[]string{"A", "B", "C", "D"},
//		map[string][]string{
//			"A": {"B", "C", "D"},
//			"B": {"A", "C"},
//			"C": {"A", "B", "D"},
//			"D": {"A", "C"},
//		},
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	res, err := rip.RIP(g)
//	if errors.Is(err, mcs.ErrNotDecomposable) {
//		// not chordal
//	}
//	fmt.Println(res.Cliques, res.Separators) // [{A, B, C} {A, C, D}] [<none> {A, C}]
//
// The molic command (cmd/molic) wraps the pipeline for graph documents on disk.
package molic
