// Package graphio reads and writes the documents that surround the
// decomposition pipeline: input graphs, decomposition results and clique-tree
// drawings.
//
// # Graph documents
//
// A graph is an ordered list of vertices with their neighbor lists. The list
// order is the enumeration order seen by mcs.Search, so it is preserved
// through decoding. JSON:
//
//	{
//	  "nodes": [
//	    {"id": "A", "neighbors": ["B", "C", "D"]},
//	    {"id": "B", "neighbors": ["A", "C"]},
//	    {"id": "C", "neighbors": ["A", "B", "D"]},
//	    {"id": "D", "neighbors": ["A", "C"]}
//	  ]
//	}
//
// TOML, one [[node]] table per vertex:
//
//	[[node]]
//	id = "A"
//	neighbors = ["B", "C", "D"]
//
// Decoding always goes through [core.FromAdjacency], so loops, asymmetric
// lists, unknown and duplicate vertices surface as [core.ErrInvalidInput].
//
// # Result documents
//
// [EncodeResult] flattens a [rip.Result] for JSON output. The first
// separator, which is absent by construction, encodes as null; an empty
// intersection encodes as []. Consumers can therefore tell the two apart.
//
// # Drawings
//
// [ToDOT] renders the clique tree (cliques as boxes, separators as edge
// labels) in Graphviz DOT. [RenderSVG] lays it out with Graphviz.
package graphio
