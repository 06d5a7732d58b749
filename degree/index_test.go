// SPDX-License-Identifier: MIT

package degree_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spine/builder"
	"github.com/katalvlaran/spine/core"
	"github.com/katalvlaran/spine/degree"
)

// fixedDegrees reports prescribed degrees without a consistent edge set.
// Lets fixtures use degree sequences no simple graph can realise.
type fixedDegrees map[int]int

func (f fixedDegrees) Vertices() []int {
	out := make([]int, 0, len(f))
	for v := range f {
		out = append(out, v)
	}
	return out
}

func (f fixedDegrees) NeighborIDs(int) ([]int, error) { return nil, nil }
func (f fixedDegrees) Degree(v int) (int, error) { return f[v], nil }

type failingDegrees struct{ fixedDegrees }

func (failingDegrees) Degree(int) (int, error) { return 0, errors.New("boom") }

func TestTargetSize(t *testing.T) {
	cases := []struct{ n, want int }{
		{0, 0}, {1, 0}, {2, 2}, {4, 4}, {5, 5}, {6, 6}, {16, 8}, {1000, 20},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, degree.TargetSize(c.n), "n=%d", c.n)
	}
}

func TestBuild_Errors(t *testing.T) {
	_, err := degree.Build(nil)
	assert.ErrorIs(t, err, degree.ErrGraphNil)

	var typed *core.Graph
	_, err = degree.Build(typed)
	assert.ErrorIs(t, err, degree.ErrGraphNil)

	_, err = degree.Build(failingDegrees{fixedDegrees{0: 1}})
	assert.ErrorIs(t, err, degree.ErrDegree)
}

// TestBuild_Links checks that only occupied degrees are linked, in order.
func TestBuild_Links(t *testing.T) {
	idx, err := degree.Build(fixedDegrees{0: 10, 1: 7, 2: 12, 3: 20, 4: 7})
	require.NoError(t, err)
	assert.Equal(t, 5, idx.Len())
	assert.Equal(t, []int{7, 10, 12, 20}, idx.Degrees())

	b, ok := idx.Bucket(7)
	require.True(t, ok)
	assert.Equal(t, []int{1, 4}, b.Nodes)
	assert.Equal(t, degree.Link{}, b.Prev)
	assert.Equal(t, degree.Link{Degree: 10, Present: true}, b.Next)

	mid, ok := idx.Bucket(b.Next.Degree)
	require.True(t, ok)
	assert.Equal(t, degree.Link{Degree: 7, Present: true}, mid.Prev)
	assert.Equal(t, degree.Link{Degree: 12, Present: true}, mid.Next)

	top, ok := idx.Bucket(20)
	require.True(t, ok)
	assert.False(t, top.Next.Present)
	assert.Equal(t, 12, top.Prev.Degree)

	_, ok = idx.Bucket(8)
	assert.False(t, ok)

	d, ok := idx.Degree(2)
	assert.True(t, ok)
	assert.Equal(t, 12, d)
}

// TestCandidates_SameDegreeFirst: node 0 of degrees {3,3,1,1,1} returns its
// degree-3 peer before any degree-1 node.
func TestCandidates_SameDegreeFirst(t *testing.T) {
	idx, err := degree.Build(fixedDegrees{0: 3, 1: 3, 2: 1, 3: 1, 4: 1})
	require.NoError(t, err)
	got, err := idx.Candidates(0, degree.TargetSize(5))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	// realisable variant: two adjacent hubs with two leaves each
	g, err := builder.BuildGraph(nil, nil, builder.Edges([2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 4}, [2]int{1, 5}))
	require.NoError(t, err)
	idx, err = degree.Build(g)
	require.NoError(t, err)
	got, err = idx.Candidates(0, degree.TargetSize(g.VertexCount()))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
}

// TestCandidates_Expansion covers nearest-first expansion and the lower-side tie.
func TestCandidates_Expansion(t *testing.T) {
	idx, err := degree.Build(fixedDegrees{0: 10, 1: 7, 2: 12, 3: 20})
	require.NoError(t, err)
	got, err := idx.Candidates(0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3}, got)

	tie, err := degree.Build(fixedDegrees{0: 2, 1: 1, 2: 3, 3: 1})
	require.NoError(t, err)
	got, err = tie.Candidates(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, got, "whole lower bucket is appended")
	got, err = tie.Candidates(0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2}, got)
}

// TestCandidates_Truncation stops inside the same-degree bucket.
func TestCandidates_Truncation(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(5))
	require.NoError(t, err)
	idx, err := degree.Build(g)
	require.NoError(t, err)

	got, err := idx.Candidates(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, got)

	got, err = idx.Candidates(0, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, got, "exhausted index returns undersized set")
}

func TestCandidates_Degenerate(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(0))
	idx, err := degree.Build(g)
	require.NoError(t, err)

	got, err := idx.Candidates(0, degree.TargetSize(1))
	require.NoError(t, err)
	assert.Empty(t, got)
	got, err = idx.Candidates(0, 4)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = idx.Candidates(9, 2)
	assert.ErrorIs(t, err, degree.ErrVertexNotFound)
	_, err = idx.Candidates(0, -1)
	assert.ErrorIs(t, err, degree.ErrBadSize)
}

// TestBucket_Detached: editing a returned bucket never reaches later queries.
func TestBucket_Detached(t *testing.T) {
	idx, err := degree.Build(fixedDegrees{0: 2, 1: 2, 2: 2, 3: 5})
	require.NoError(t, err)
	before, err := idx.Candidates(0, 3)
	require.NoError(t, err)

	b, ok := idx.Bucket(2)
	require.True(t, ok)
	b.Nodes[1] = 99
	b.Nodes = append(b.Nodes, 42)
	b.Next = degree.Link{}

	after, err := idx.Candidates(0, 3)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, []int{1, 2, 3}, after)
	again, _ := idx.Bucket(2)
	assert.Equal(t, []int{0, 1, 2}, again.Nodes)
}

// TestCandidates_Deterministic: query order never changes results.
func TestCandidates_Deterministic(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(11)}, builder.RandomSparse(40, 0.1))
	require.NoError(t, err)
	idx, err := degree.Build(g)
	require.NoError(t, err)
	size := degree.TargetSize(idx.Len())

	first := make(map[int][]int)
	for _, v := range g.Vertices() {
		c, err := idx.Candidates(v, size)
		require.NoError(t, err)
		assert.NotContains(t, c, v)
		first[v] = c
	}
	vs := g.Vertices()
	slices.Reverse(vs)
	for _, v := range vs {
		c, err := idx.Candidates(v, size)
		require.NoError(t, err)
		assert.Equal(t, first[v], c, "vertex %d", v)
		if len(c) < size {
			assert.Len(t, c, idx.Len()-1, "undersized only when exhausted")
		}
	}
}
