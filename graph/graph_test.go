package graph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/eqcolor/graph"
	"github.com/stretchr/testify/require"
)

// TestNew_Errors verifies that invalid sizes and endpoints are rejected
// without returning a partial graph.
func TestNew_Errors(t *testing.T) {
	g, err := graph.New(-1, nil)
	require.ErrorIs(t, err, graph.ErrNegativeVertexCount)
	require.Nil(t, g)

	for _, e := range []graph.Edge{{U: 0, V: 3}, {U: -1, V: 0}, {U: 3, V: 3}} {
		g, err = graph.New(3, []graph.Edge{{U: 0, V: 1}, e})
		if !errors.Is(err, graph.ErrVertexOutOfRange) {
			t.Errorf("edge %v: want ErrVertexOutOfRange, got %v", e, err)
		}
		require.Nil(t, g)
	}
}

// TestNew_Empty covers the zero-vertex graph.
func TestNew_Empty(t *testing.T) {
	g, err := graph.New(0, nil)
	require.NoError(t, err)
	require.Equal(t, 0, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
	require.Empty(t, g.Edges())
	require.Zero(t, g.Density())
}

// TestNew_Symmetry checks that every loaded edge appears in both endpoints'
// neighbour lists.
func TestNew_Symmetry(t *testing.T) {
	edges := []graph.Edge{{U: 0, V: 1}, {U: 2, V: 1}, {U: 3, V: 0}, {U: 2, V: 3}}
	g, err := graph.New(4, edges)
	require.NoError(t, err)

	for _, e := range edges {
		require.True(t, g.HasEdge(e.U, e.V), "HasEdge(%d,%d)", e.U, e.V)
		require.True(t, g.HasEdge(e.V, e.U), "HasEdge(%d,%d)", e.V, e.U)
		require.Contains(t, g.Neighbors(e.U), e.V)
		require.Contains(t, g.Neighbors(e.V), e.U)
	}
	require.Equal(t, []int{1, 3}, g.Neighbors(0))
	require.Equal(t, []int{1, 3}, g.Neighbors(2))
	require.False(t, g.HasEdge(0, 2))
}

// TestNew_Duplicates ensures parallel edges (either orientation) collapse.
func TestNew_Duplicates(t *testing.T) {
	g, err := graph.New(3, []graph.Edge{
		{U: 0, V: 1}, {U: 1, V: 0}, {U: 0, V: 1}, {U: 1, V: 2},
	})
	require.NoError(t, err)
	require.Equal(t, 2, g.EdgeCount())
	require.Equal(t, []int{1}, g.Neighbors(0))
	require.Equal(t, []int{0, 2}, g.Neighbors(1))
	require.Equal(t, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}}, g.Edges())
}

// TestNew_Loops checks self-loop accounting.
func TestNew_Loops(t *testing.T) {
	g, err := graph.New(2, []graph.Edge{{U: 1, V: 1}, {U: 1, V: 1}, {U: 0, V: 1}})
	require.NoError(t, err)
	require.Equal(t, 1, g.Loops())
	require.Equal(t, 2, g.EdgeCount())
	require.Equal(t, 2, g.Degree(1))
	require.Equal(t, 2, g.MaxDegree())
	require.True(t, g.HasEdge(1, 1))
	require.Equal(t, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 1}}, g.Edges())
	// Density ignores loops: one simple edge out of one possible pair.
	require.InDelta(t, 1.0, g.Density(), 1e-9)
}

// TestNeighbors_Copy verifies callers cannot mutate internal state.
func TestNeighbors_Copy(t *testing.T) {
	g, err := graph.New(2, []graph.Edge{{U: 0, V: 1}})
	require.NoError(t, err)

	nbrs := g.Neighbors(0)
	nbrs[0] = 42
	require.Equal(t, []int{1}, g.Neighbors(0))
	require.Nil(t, g.Neighbors(5))
	require.Zero(t, g.Degree(-1))
	require.False(t, g.HasEdge(0, 9))
}

// TestEachEdge_Order ensures edges are visited once, in ascending order.
func TestEachEdge_Order(t *testing.T) {
	g, err := graph.New(4, []graph.Edge{{U: 3, V: 2}, {U: 2, V: 0}, {U: 1, V: 0}, {U: 0, V: 3}})
	require.NoError(t, err)

	var got []graph.Edge
	g.EachEdge(func(u, v int) { got = append(got, graph.Edge{U: u, V: v}) })
	require.Equal(t, []graph.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 2, V: 3}}, got)
}
