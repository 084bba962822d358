package mcs_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorsapucaia/molic/core"
	"github.com/victorsapucaia/molic/mcs"
	"github.com/victorsapucaia/molic/nodeset"
)

// mustGraph builds a graph from an adjacency structure with a fixed order.
func mustGraph(t *testing.T, order []string, adj map[string][]string) *core.Graph {
	t.Helper()
	g, err := core.FromAdjacency(order, adj)
	require.NoError(t, err)

	return g
}

// chordedSquare is the 4-cycle A-B-C-D-A with the chord A-C.
func chordedSquare(t *testing.T) *core.Graph {
	return mustGraph(t, []string{"A", "B", "C", "D"}, map[string][]string{
		"A": {"B", "D", "C"},
		"B": {"A", "C"},
		"C": {"A", "B", "D"},
		"D": {"A", "C"},
	})
}

// square is the chordless 4-cycle A-B-C-D-A.
func square(t *testing.T) *core.Graph {
	return mustGraph(t, []string{"A", "B", "C", "D"}, map[string][]string{
		"A": {"B", "D"},
		"B": {"A", "C"},
		"C": {"B", "D"},
		"D": {"A", "C"},
	})
}

// boundaryIDs flattens a boundary sequence for comparison.
func boundaryIDs(bs []nodeset.Set) [][]string {
	out := make([][]string, len(bs))
	for i, b := range bs {
		out[i] = b.IDs()
	}

	return out
}

func TestSearch_NilGraph(t *testing.T) {
	res, err := mcs.Search(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, mcs.ErrGraphNil)
}

func TestSearch_EmptyGraph(t *testing.T) {
	res, err := mcs.Search(core.NewGraph())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	assert.NotErrorIs(t, err, mcs.ErrNotDecomposable)
}

func TestSearch_StartNotFound(t *testing.T) {
	res, err := mcs.Search(chordedSquare(t), mcs.WithStart("Z"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, mcs.ErrStartVertexNotFound)
}

func TestSearch_SingleVertex(t *testing.T) {
	g := mustGraph(t, []string{"A"}, map[string][]string{"A": {}})
	res, err := mcs.Search(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Numbering)
	assert.Equal(t, [][]string{{"A"}}, boundaryIDs(res.Boundaries))
}

func TestSearch_ChordedSquare(t *testing.T) {
	res, err := mcs.Search(chordedSquare(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Numbering)
	assert.Equal(t, [][]string{
		{"A"},
		{"A", "B"},
		{"A", "B", "C"},
		{"A", "C", "D"},
	}, boundaryIDs(res.Boundaries))
	assert.Equal(t, []string{"D", "C", "B", "A"}, res.EliminationOrder())
}

func TestSearch_ChordlessSquareFails(t *testing.T) {
	res, err := mcs.Search(square(t))
	assert.Nil(t, res, "no partial result on failure")
	require.ErrorIs(t, err, mcs.ErrNotDecomposable)

	var nde *mcs.NotDecomposableError
	require.True(t, errors.As(err, &nde))
	assert.Equal(t, 4, nde.Step)
	assert.Equal(t, "D", nde.Vertex)
	assert.Equal(t, []string{"A", "C", "D"}, nde.Boundary)
	assert.Equal(t, [2]string{"A", "C"}, nde.Missing)
	assert.Contains(t, err.Error(), "{A, C, D}")
}

// TestSearch_ChordlessPentagon checks that the reported pair is an actual
// missing edge of the graph.
func TestSearch_ChordlessPentagon(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C", "D", "E"}, map[string][]string{
		"A": {"B", "E"},
		"B": {"A", "C"},
		"C": {"B", "D"},
		"D": {"C", "E"},
		"E": {"D", "A"},
	})
	_, err := mcs.Search(g)
	var nde *mcs.NotDecomposableError
	require.True(t, errors.As(err, &nde))
	assert.Equal(t, 5, nde.Step)
	assert.Equal(t, []string{"A", "D", "E"}, nde.Boundary)
	assert.Equal(t, [2]string{"A", "D"}, nde.Missing)
	assert.False(t, g.HasEdge(nde.Missing[0], nde.Missing[1]))
}

func TestSearch_TieBreakFollowsEnumeration(t *testing.T) {
	// Star with center C: after C, every leaf has label 1.
	adj := map[string][]string{
		"C": {"X", "Y", "Z"},
		"X": {"C"},
		"Y": {"C"},
		"Z": {"C"},
	}

	res, err := mcs.Search(mustGraph(t, []string{"C", "X", "Y", "Z"}, adj))
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "X", "Y", "Z"}, res.Numbering)

	res, err = mcs.Search(mustGraph(t, []string{"C", "Z", "Y", "X"}, adj))
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "Z", "Y", "X"}, res.Numbering)
}

func TestSearch_WithStart(t *testing.T) {
	res, err := mcs.Search(chordedSquare(t), mcs.WithStart("D"))
	require.NoError(t, err)
	assert.Equal(t, "D", res.Numbering[0])
	// D's neighbors A and C tie; A is enumerated first.
	assert.Equal(t, []string{"D", "A", "C", "B"}, res.Numbering)
	assert.Equal(t, []string{"A", "C", "B"}, res.Boundaries[3].IDs())
}

func TestSearch_Deterministic(t *testing.T) {
	g := chordedSquare(t)
	first, err := mcs.Search(g)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := mcs.Search(g)
		require.NoError(t, err)
		assert.Equal(t, first.Numbering, again.Numbering)
		assert.Equal(t, boundaryIDs(first.Boundaries), boundaryIDs(again.Boundaries))
	}
}

func TestSearch_ConcurrentCallsShareNothing(t *testing.T) {
	g := chordedSquare(t)
	const workers = 16

	var wg sync.WaitGroup
	results := make(chan []string, workers)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			res, err := mcs.Search(g)
			if err != nil {
				results <- nil
				return
			}
			results <- res.Numbering
		}()
	}
	wg.Wait()
	close(results)

	for numbering := range results {
		assert.Equal(t, []string{"A", "B", "C", "D"}, numbering)
	}
}

func TestSearch_OnNumberHook(t *testing.T) {
	var steps []int
	var ids []string
	res, err := mcs.Search(chordedSquare(t), mcs.WithOnNumber(func(step int, id string, b nodeset.Set) error {
		steps = append(steps, step)
		ids = append(ids, id)
		assert.True(t, b.Contains(id))
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, steps)
	assert.Equal(t, res.Numbering, ids)
}

func TestSearch_OnNumberHookAborts(t *testing.T) {
	stop := errors.New("stop")
	res, err := mcs.Search(chordedSquare(t), mcs.WithOnNumber(func(step int, _ string, _ nodeset.Set) error {
		if step == 2 {
			return stop
		}
		return nil
	}))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, stop)
}

func TestSearch_DisconnectedStillNumbersEveryVertex(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C"}, map[string][]string{
		"A": {"B"},
		"B": {"A"},
	})
	res, err := mcs.Search(g)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, res.Numbering)
	assert.Equal(t, [][]string{{"A"}, {"A", "B"}, {"C"}}, boundaryIDs(res.Boundaries))
}

func TestIsDecomposable(t *testing.T) {
	ok, err := mcs.IsDecomposable(chordedSquare(t))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = mcs.IsDecomposable(square(t))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = mcs.IsDecomposable(nil)
	assert.ErrorIs(t, err, mcs.ErrGraphNil)
}
