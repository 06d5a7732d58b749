// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph lifecycle, degree policy and snapshots.

package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spine/core"
)

// TestGraph_VertexLifecycle locks in AddVertex/HasVertex/RemoveVertex invariants.
func TestGraph_VertexLifecycle(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(-1), core.ErrNegativeVertexID)
	require.NoError(t, g.AddVertex(3))
	require.NoError(t, g.AddVertex(3), "duplicate AddVertex is a no-op")
	assert.True(t, g.HasVertex(3))
	assert.Equal(t, 1, g.VertexCount())

	assert.ErrorIs(t, g.RemoveVertex(7), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex(3))
	assert.False(t, g.HasVertex(3))
}

// TestGraph_Edges covers edge policies and neighbour ordering.
func TestGraph_Edges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(2, 0))
	require.NoError(t, g.AddEdge(2, 1))
	require.NoError(t, g.AddEdge(2, 5))

	assert.ErrorIs(t, g.AddEdge(0, 2), core.ErrMultiEdgeNotAllowed, "reverse duplicate is the same undirected edge")
	assert.ErrorIs(t, g.AddEdge(1, 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(-1, 1), core.ErrNegativeVertexID)

	nbrs, err := g.NeighborIDs(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 5}, nbrs)
	assert.Equal(t, []int{0, 1, 2, 5}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(5, 2))

	_, err = g.NeighborIDs(9)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	require.NoError(t, g.RemoveEdge(5, 2))
	assert.ErrorIs(t, g.RemoveEdge(5, 2), core.ErrEdgeNotFound)
	assert.Equal(t, 2, g.EdgeCount())

	require.NoError(t, g.RemoveVertex(2))
	assert.Equal(t, 0, g.EdgeCount())
	d, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 0, d)
}

// TestGraph_DegreePolicy checks the loop-aware degree convention.
func TestGraph_DegreePolicy(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddEdge(0, 0))
	require.NoError(t, g.AddEdge(0, 1))

	d0, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 3, d0, "loop counts twice, plain edge once")

	nbrs, _ := g.NeighborIDs(0)
	assert.Equal(t, []int{0, 1}, nbrs, "loop lists the vertex once")

	_, err = g.Degree(4)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	st := g.Stats()
	assert.Equal(t, 1, st.LoopCount)
	assert.Equal(t, 2, st.EdgeCount)
	assert.Equal(t, 1, st.MinDegree)
	assert.Equal(t, 3, st.MaxDegree)

	require.NoError(t, g.RemoveVertex(0))
	assert.Equal(t, 0, g.EdgeCount())
}

// TestGraph_CloneAndInduced verifies deep copies and induced views.
func TestGraph_CloneAndInduced(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))

	c := g.Clone()
	require.NoError(t, c.AddEdge(0, 3))
	assert.False(t, g.HasEdge(0, 3), "clone must not alias the source")
	assert.Equal(t, 4, c.EdgeCount())

	sub := core.InducedSubgraph(g, map[int]bool{1: true, 2: true, 3: true, 42: true})
	assert.Equal(t, []int{1, 2, 3}, sub.Vertices())
	assert.Equal(t, 2, sub.EdgeCount())
	assert.False(t, sub.HasVertex(0))

	st := core.NewGraph().Stats()
	assert.Equal(t, 0, st.VertexCount)
	assert.Equal(t, 0, st.MaxDegree)
}

// TestGraph_LoopPolicyAndNil covers Looped and typed-nil detection.
func TestGraph_LoopPolicyAndNil(t *testing.T) {
	assert.False(t, core.NewGraph().Looped())
	assert.True(t, core.NewGraph(core.WithLoops()).Looped())

	var typed *core.Graph
	assert.True(t, core.IsNil(nil))
	assert.True(t, core.IsNil(typed))
	assert.False(t, core.IsNil(core.NewGraph()))
}

// TestGraph_ConcurrentReaders runs readers alongside a writer under -race.
func TestGraph_ConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 1; i < 200; i++ {
			_ = g.AddEdge(0, i)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = g.Vertices()
			_, _ = g.Degree(0)
		}
	}()
	wg.Wait()

	d, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 199, d)
}
