package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorsapucaia/molic/builder"
)

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestOptions_IDSchemes(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithExcelColumnIDs()}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithSymbNumb("v")}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2"}, g.Vertices())
}

func TestOptions_LastWins(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSymbNumb("x"), builder.WithExcelColumnIDs()}
	g, err := builder.BuildGraph(opts, builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, g.Vertices())
}

func TestOptions_WithRandMatchesWithSeed(t *testing.T) {
	a, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(9)}, builder.RandomSparse(12, 0.5))
	require.NoError(t, err)
	b, err := builder.BuildGraph([]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(9)))}, builder.RandomSparse(12, 0.5))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())
}

func TestExcelColumnIDFn(t *testing.T) {
	cases := map[int]string{0: "A", 25: "Z", 26: "AA", 27: "AB", 701: "ZZ", 702: "AAA"}
	for idx, want := range cases {
		assert.Equal(t, want, builder.ExcelColumnIDFn(idx), "idx=%d", idx)
	}
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
}
