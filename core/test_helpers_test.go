// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for molic/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.
//   - Keep magic vertex IDs and sizes out of test bodies.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/victorsapucaia/molic/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
	NCloners        = 20
)

// newChordedSquare returns the 4-cycle A-B-C-D-A with chord A-C,
// enumerated in the order A, B, C, D.
func newChordedSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{
		{VertexA, VertexB}, {VertexB, VertexC}, {VertexC, VertexD},
		{VertexD, VertexA}, {VertexA, VertexC},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}
