package graphio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/victorsapucaia/molic/nodeset"
	"github.com/victorsapucaia/molic/rip"
)

// ResultDocument is the wire form of a [rip.Result].
//
// Separators[0] is always null. Later entries are arrays, possibly empty when
// the input graph was disconnected. Parents[i] is the index of the clique
// that contains Separators[i], or -1 for the root.
type ResultDocument struct {
	Numbering  []string   `json:"numbering"`
	Cliques    [][]string `json:"cliques"`
	Separators [][]string `json:"separators"`
	Parents    []int      `json:"parents"`
}

// EncodeResult flattens res. A nil result yields an empty document.
func EncodeResult(res *rip.Result) ResultDocument {
	if res == nil {
		return ResultDocument{}
	}
	doc := ResultDocument{
		Numbering:  append([]string(nil), res.Numbering...),
		Cliques:    make([][]string, len(res.Cliques)),
		Separators: make([][]string, len(res.Separators)),
		Parents:    res.Parents(),
	}
	for i, c := range res.Cliques {
		doc.Cliques[i] = ids(c)
	}
	for i, s := range res.Separators {
		if nodes, ok := s.Nodes(); ok {
			doc.Separators[i] = ids(nodes)
		}
	}

	return doc
}

// ids returns the members of s as a non-nil slice so that an empty set
// encodes as [] rather than null.
func ids(s nodeset.Set) []string {
	return append(make([]string, 0, s.Len()), s.IDs()...)
}

// WriteResultJSON encodes res as an indented JSON result document.
func WriteResultJSON(res *rip.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(EncodeResult(res)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return nil
}
