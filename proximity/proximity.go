// SPDX-License-Identifier: MIT
//
// Package proximity turns restart-walk visitation counts into fixed-width
// rooted-proximity vectors.
//
// For every origin n:
//
//	Targets[n] — the k most-visited distinct vertices over n's walks,
//	             count descending, ties by vertex ID ascending;
//	Weights[n] — their counts normalised to sum to 1.
//
// Origins that visited fewer than k distinct vertices are padded with n
// itself at weight 0. A vector whose counts total zero keeps all-zero
// weights instead of dividing by zero.
//
// The Matrix is immutable once built; accessors return copies.
package proximity

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for matrix construction and lookup.
var (
	// ErrBadWidth is returned when k < 1.
	ErrBadWidth = errors.New("proximity: width k must be at least 1")

	// ErrNoVertices is returned when the vertex set is empty.
	ErrNoVertices = errors.New("proximity: vertex set is empty")

	// ErrUnknownOrigin is returned when a walk is rooted outside the vertex set.
	ErrUnknownOrigin = errors.New("proximity: walk origin not in vertex set")

	// ErrVertexNotFound is returned by lookups for vertices absent from the matrix.
	ErrVertexNotFound = errors.New("proximity: vertex not found")
)

// Vector is the rooted-proximity vector of one vertex.
type Vector struct {
	Node    int
	Targets []int
	Weights []float64
}

// Matrix stores one Vector per vertex. Row i belongs to Vertices()[i].
type Matrix struct {
	k        int
	vertices []int
	row      map[int]int
	targets  [][]int
	counts   [][]int
	weights  *mat.Dense
}

// Build aggregates walks into a Matrix of width k.
//
// Every walk increments its origin's counter once per element, repeats and
// the origin itself included. vertices is deduplicated and sorted.
//
// Complexity: O(total walk elements + V·u log u) where u is the number of
// distinct vertices one origin visited.
func Build(vertices []int, walks iter.Seq2[int, iter.Seq[int]], k int) (*Matrix, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadWidth, k)
	}
	vs := slices.Clone(vertices)
	slices.Sort(vs)
	vs = slices.Compact(vs)
	if len(vs) == 0 {
		return nil, ErrNoVertices
	}

	row := make(map[int]int, len(vs))
	for i, v := range vs {
		row[v] = i
	}

	tallies := make([]map[int]int, len(vs))
	if walks != nil {
		for origin, seq := range walks {
			i, ok := row[origin]
			if !ok {
				return nil, fmt.Errorf("%w: %d", ErrUnknownOrigin, origin)
			}
			if tallies[i] == nil {
				tallies[i] = make(map[int]int)
			}
			for v := range seq {
				tallies[i][v]++
			}
		}
	}

	m := &Matrix{
		k:        k,
		vertices: vs,
		row:      row,
		targets:  make([][]int, len(vs)),
		counts:   make([][]int, len(vs)),
	}
	data := make([]float64, len(vs)*k)
	for i, origin := range vs {
		targets, counts := topK(origin, tallies[i], k)
		m.targets[i], m.counts[i] = targets, counts
		normalise(counts, data[i*k:(i+1)*k])
	}
	m.weights = mat.NewDense(len(vs), k, data)

	return m, nil
}

type tally struct {
	node  int
	count int
}

// topK ranks the tally and pads with origin at count 0 up to width k.
func topK(origin int, counts map[int]int, k int) ([]int, []int) {
	ranked := make([]tally, 0, len(counts))
	for node, c := range counts {
		ranked = append(ranked, tally{node: node, count: c})
	}
	slices.SortFunc(ranked, func(a, b tally) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.node, b.node)
	})
	if len(ranked) > k {
		ranked = ranked[:k]
	}

	targets := make([]int, k)
	out := make([]int, k)
	for i := range targets {
		if i < len(ranked) {
			targets[i], out[i] = ranked[i].node, ranked[i].count
			continue
		}
		targets[i], out[i] = origin, 0
	}

	return targets, out
}

// normalise writes counts/Σcounts into dst; a zero total leaves dst zero.
func normalise(counts []int, dst []float64) {
	for i, c := range counts {
		dst[i] = float64(c)
	}
	total := floats.Sum(dst)
	if total == 0 {
		return
	}
	for i := range dst {
		dst[i] /= total
	}
}

// K returns the vector width.
func (m *Matrix) K() int { return m.k }

// Len returns the number of vertices.
func (m *Matrix) Len() int { return len(m.vertices) }

// Vertices returns the row order (ascending IDs).
func (m *Matrix) Vertices() []int { return slices.Clone(m.vertices) }

// Row returns the row index of node.
func (m *Matrix) Row(node int) (int, bool) {
	i, ok := m.row[node]
	return i, ok
}

// Targets returns a copy of node's target IDs.
func (m *Matrix) Targets(node int) ([]int, error) {
	i, ok := m.row[node]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, node)
	}

	return slices.Clone(m.targets[i]), nil
}

// Counts returns a copy of node's raw top-k visitation counts (0 for padding).
func (m *Matrix) Counts(node int) ([]int, error) {
	i, ok := m.row[node]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, node)
	}

	return slices.Clone(m.counts[i]), nil
}

// Weights returns a copy of node's normalised weights.
func (m *Matrix) Weights(node int) ([]float64, error) {
	i, ok := m.row[node]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, node)
	}

	return mat.Row(nil, i, m.weights), nil
}

// Vector returns a copy of node's full proximity vector.
func (m *Matrix) Vector(node int) (Vector, error) {
	i, ok := m.row[node]
	if !ok {
		return Vector{}, fmt.Errorf("%w: %d", ErrVertexNotFound, node)
	}

	return Vector{
		Node:    node,
		Targets: slices.Clone(m.targets[i]),
		Weights: mat.Row(nil, i, m.weights),
	}, nil
}

// Dense returns the weights as a read-only |V|×k matrix view.
// Callers must not mutate it.
func (m *Matrix) Dense() mat.Matrix { return m.weights }

// WeightsView exposes the row of node without copying, for hot loops such as
// DTW scoring. The slice must not be modified.
func (m *Matrix) WeightsView(node int) ([]float64, bool) {
	i, ok := m.row[node]
	if !ok {
		return nil, false
	}

	return m.weights.RawRowView(i), true
}
