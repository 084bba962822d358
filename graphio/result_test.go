package graphio_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorsapucaia/molic/graphio"
	"github.com/victorsapucaia/molic/rip"
)

func decompose(t *testing.T, doc string) *rip.Result {
	t.Helper()
	g, err := graphio.ReadJSON(strings.NewReader(doc))
	require.NoError(t, err)
	res, err := rip.RIP(g)
	require.NoError(t, err)

	return res
}

// twoEdges is A–B plus C–D: the second clique has an empty separator.
const twoEdges = `{"nodes": [
  {"id": "A", "neighbors": ["B"]}, {"id": "B", "neighbors": ["A"]},
  {"id": "C", "neighbors": ["D"]}, {"id": "D", "neighbors": ["C"]}
]}`

func TestWriteResultJSON_NullVersusEmpty(t *testing.T) {
	res := decompose(t, twoEdges)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteResultJSON(res, &buf))

	var raw struct {
		Separators []json.RawMessage `json:"separators"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	require.Len(t, raw.Separators, 2)
	assert.JSONEq(t, `null`, string(raw.Separators[0]))
	assert.JSONEq(t, `[]`, string(raw.Separators[1]))
}

func TestEncodeResult(t *testing.T) {
	res := decompose(t, squareJSON)

	doc := graphio.EncodeResult(res)
	assert.Equal(t, []string{"D", "A", "C", "B"}, doc.Numbering)
	assert.Equal(t, [][]string{{"D", "A", "C"}, {"A", "C", "B"}}, doc.Cliques)
	assert.Equal(t, [][]string{nil, {"A", "C"}}, doc.Separators)
	assert.Equal(t, []int{-1, 0}, doc.Parents)

	assert.Equal(t, graphio.ResultDocument{}, graphio.EncodeResult(nil))
}

func TestToDOT(t *testing.T) {
	dot := graphio.ToDOT(decompose(t, squareJSON))
	assert.Contains(t, dot, "graph CliqueTree {")
	assert.Contains(t, dot, `"C0" [label="D, A, C"];`)
	assert.Contains(t, dot, `"C0" -- "C1" [label="A, C"];`)

	dot = graphio.ToDOT(decompose(t, twoEdges))
	assert.Contains(t, dot, `"C0" -- "C1" [label="∅", style=dashed];`)
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering skipped in short mode")
	}
	svg, err := graphio.RenderSVG(context.Background(), graphio.ToDOT(decompose(t, squareJSON)))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}
