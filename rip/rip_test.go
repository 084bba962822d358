package rip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorsapucaia/molic/core"
	"github.com/victorsapucaia/molic/mcs"
	"github.com/victorsapucaia/molic/nodeset"
	"github.com/victorsapucaia/molic/rip"
)

// mustGraph builds a graph from an adjacency structure with a fixed order.
func mustGraph(t *testing.T, order []string, adj map[string][]string) *core.Graph {
	t.Helper()
	g, err := core.FromAdjacency(order, adj)
	require.NoError(t, err)

	return g
}

// setIDs flattens a set sequence for comparison.
func setIDs(sets []nodeset.Set) [][]string {
	out := make([][]string, len(sets))
	for i, s := range sets {
		out[i] = s.IDs()
	}

	return out
}

func chordedSquare(t *testing.T) *core.Graph {
	return mustGraph(t, []string{"A", "B", "C", "D"}, map[string][]string{
		"A": {"B", "D", "C"},
		"B": {"A", "C"},
		"C": {"A", "B", "D"},
		"D": {"A", "C"},
	})
}

func TestRIP_SingleVertex(t *testing.T) {
	g := mustGraph(t, []string{"A"}, map[string][]string{"A": {}})
	res, err := rip.RIP(g)
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"A"}}, setIDs(res.Cliques))
	require.Len(t, res.Separators, 1)
	assert.True(t, res.Separators[0].IsNone())
	assert.Equal(t, []int{-1}, res.Parents())
	assert.NoError(t, rip.Verify(g, res))
}

func TestRIP_ChordedSquare(t *testing.T) {
	g := chordedSquare(t)
	res, err := rip.RIP(g)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Numbering)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"A", "C", "D"}}, setIDs(res.Cliques))

	require.Len(t, res.Separators, 2)
	assert.True(t, res.Separators[0].IsNone())
	sep, ok := res.Separators[1].Nodes()
	require.True(t, ok)
	assert.Equal(t, []string{"A", "C"}, sep.IDs())
	assert.Equal(t, "{A, C}", res.Separators[1].String())

	assert.Equal(t, []int{-1, 0}, res.Parents())
	assert.NoError(t, rip.Verify(g, res))
}

func TestRIP_ChordlessSquare(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C", "D"}, map[string][]string{
		"A": {"B", "D"},
		"B": {"A", "C"},
		"C": {"B", "D"},
		"D": {"A", "C"},
	})
	res, err := rip.RIP(g)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, mcs.ErrNotDecomposable)
	assert.NotErrorIs(t, err, core.ErrInvalidInput)
}

func TestRIP_InvalidInputPropagates(t *testing.T) {
	res, err := rip.RIP(core.NewGraph())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	assert.NotErrorIs(t, err, mcs.ErrNotDecomposable)

	_, err = rip.RIP(nil)
	assert.ErrorIs(t, err, mcs.ErrGraphNil)
}

func TestRIP_ForwardsSearchOptions(t *testing.T) {
	res, err := rip.RIP(chordedSquare(t), mcs.WithStart("D"))
	require.NoError(t, err)
	assert.Equal(t, "D", res.Numbering[0])
	assert.Equal(t, [][]string{{"D", "A", "C"}, {"A", "C", "B"}}, setIDs(res.Cliques))
}

// TestRIP_TreeOfCliques uses a graph whose clique tree is not a path:
// the triangle A-B-C has three triangles hanging off its edges.
func TestRIP_TreeOfCliques(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C", "X", "Y", "Z"}, map[string][]string{
		"A": {"B", "C", "X", "Z"},
		"B": {"A", "C", "X", "Y"},
		"C": {"A", "B", "Y", "Z"},
		"X": {"A", "B"},
		"Y": {"B", "C"},
		"Z": {"A", "C"},
	})
	res, err := rip.RIP(g)
	require.NoError(t, err)
	require.NoError(t, rip.Verify(g, res))

	assert.Len(t, res.Cliques, 4)
	assert.Equal(t, []int{-1, 0, 0, 0}, res.Parents())
	for i := 1; i < len(res.Separators); i++ {
		sep, ok := res.Separators[i].Nodes()
		require.True(t, ok)
		assert.Equal(t, 2, sep.Len())
	}
}

func TestRIP_DisconnectedGivesEmptySeparator(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C"}, map[string][]string{
		"A": {"B"},
		"B": {"A"},
	})
	res, err := rip.RIP(g)
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"A", "B"}, {"C"}}, setIDs(res.Cliques))
	sep, ok := res.Separators[1].Nodes()
	assert.True(t, ok, "an empty intersection is still a separator")
	assert.True(t, sep.IsEmpty())
	assert.Equal(t, []int{-1, 0}, res.Parents())
}

func TestRIP_Deterministic(t *testing.T) {
	g := chordedSquare(t)
	first, err := rip.RIP(g)
	require.NoError(t, err)
	again, err := rip.RIP(g)
	require.NoError(t, err)

	assert.Equal(t, first.Numbering, again.Numbering)
	assert.Equal(t, setIDs(first.Cliques), setIDs(again.Cliques))
	assert.Equal(t, first.Separators, again.Separators)
}
