// SPDX-License-Identifier: MIT

package walk

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/katalvlaran/spine/core"
)

// Walker holds a read-only adjacency snapshot taken at construction.
type Walker struct {
	vertices []int
	adj      map[int][]int
}

// New snapshots the vertices and neighbour lists of g.
// Neighbour lists are sorted ascending so that a fixed seed reproduces walks
// regardless of how the adapter orders them.
//
// Complexity: O(V + E log d).
func New(g core.Adjacency) (*Walker, error) {
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}
	vertices := slices.Clone(g.Vertices())
	slices.Sort(vertices)

	adj := make(map[int][]int, len(vertices))
	for _, v := range vertices {
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			return nil, fmt.Errorf("%w: neighbors of %d: %v", ErrNeighbors, v, err)
		}
		nbrs = slices.Clone(nbrs)
		slices.Sort(nbrs)
		adj[v] = nbrs
	}

	return &Walker{vertices: vertices, adj: adj}, nil
}

// Vertices returns the snapshot's vertex IDs in ascending order.
func (w *Walker) Vertices() []int { return slices.Clone(w.vertices) }

// Isolated returns the ascending IDs of vertices without neighbours.
func (w *Walker) Isolated() []int {
	var out []int
	for _, v := range w.vertices {
		if len(w.adj[v]) == 0 {
			out = append(out, v)
		}
	}

	return out
}

// Plain returns a lazy walk of exactly length vertices starting at origin,
// each step moving to a uniformly random neighbour.
func (w *Walker) Plain(origin, length int, rng *rand.Rand) (iter.Seq[int], error) {
	if err := w.check(origin, length, rng); err != nil {
		return nil, err
	}

	return func(yield func(int) bool) {
		cur := origin
		if !yield(cur) {
			return
		}
		for step := 1; step < length; step++ {
			cur = w.step(cur, rng)
			if !yield(cur) {
				return
			}
		}
	}, nil
}

// Restart returns a lazy walk of exactly length vertices starting at origin.
// Each step draws a coin: with probability beta it moves to a random
// neighbour of the current position, otherwise it appends origin again.
func (w *Walker) Restart(origin, length int, beta float64, rng *rand.Rand) (iter.Seq[int], error) {
	if err := w.check(origin, length, rng); err != nil {
		return nil, err
	}
	if beta < 0 || beta > 1 {
		return nil, fmt.Errorf("%w: beta=%g", ErrBadBeta, beta)
	}

	return func(yield func(int) bool) {
		cur := origin
		if !yield(cur) {
			return
		}
		for step := 1; step < length; step++ {
			if rng.Float64() < beta {
				cur = w.step(cur, rng)
			} else {
				cur = origin
			}
			if !yield(cur) {
				return
			}
		}
	}, nil
}

// PlainWalks yields (origin, walk) for every vertex in ascending order,
// number walks each. Consume each walk before advancing to keep the RNG
// stream aligned with the documented order.
func (w *Walker) PlainWalks(number, length int, rng *rand.Rand) (iter.Seq2[int, iter.Seq[int]], error) {
	return w.all(number, length, rng, func(v int) (iter.Seq[int], error) {
		return w.Plain(v, length, rng)
	})
}

// RestartWalks yields (origin, walk) for every vertex in ascending order,
// number restart walks each.
func (w *Walker) RestartWalks(number, length int, beta float64, rng *rand.Rand) (iter.Seq2[int, iter.Seq[int]], error) {
	if beta < 0 || beta > 1 {
		return nil, fmt.Errorf("%w: beta=%g", ErrBadBeta, beta)
	}

	return w.all(number, length, rng, func(v int) (iter.Seq[int], error) {
		return w.Restart(v, length, beta, rng)
	})
}

// Visited runs number plain walks per vertex and returns, per origin, the
// ascending deduplicated set of vertices those walks touched (origin included).
//
// Complexity: O(V · number · length).
func (w *Walker) Visited(number, length int, rng *rand.Rand) (map[int][]int, error) {
	walks, err := w.PlainWalks(number, length, rng)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]map[int]struct{}, len(w.vertices))
	for origin, seq := range walks {
		set, ok := seen[origin]
		if !ok {
			set = make(map[int]struct{})
			seen[origin] = set
		}
		for v := range seq {
			set[v] = struct{}{}
		}
	}

	out := make(map[int][]int, len(seen))
	for origin, set := range seen {
		list := make([]int, 0, len(set))
		for v := range set {
			list = append(list, v)
		}
		slices.Sort(list)
		out[origin] = list
	}

	return out, nil
}

// all validates the batch parameters and fans build out over every vertex.
func (w *Walker) all(number, length int, rng *rand.Rand, build func(v int) (iter.Seq[int], error)) (iter.Seq2[int, iter.Seq[int]], error) {
	if number < 1 {
		return nil, fmt.Errorf("%w: number=%d", ErrBadNumber, number)
	}
	if length < 1 {
		return nil, fmt.Errorf("%w: length=%d", ErrBadLength, length)
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	return func(yield func(int, iter.Seq[int]) bool) {
		for _, v := range w.vertices {
			for r := 0; r < number; r++ {
				// parameters were validated above, build cannot fail
				seq, _ := build(v)
				if !yield(v, seq) {
					return
				}
			}
		}
	}, nil
}

// check validates single-walk parameters.
func (w *Walker) check(origin, length int, rng *rand.Rand) error {
	if length < 1 {
		return fmt.Errorf("%w: length=%d", ErrBadLength, length)
	}
	if rng == nil {
		return ErrNilRand
	}
	if _, ok := w.adj[origin]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownOrigin, origin)
	}

	return nil
}

// step moves from cur to a uniformly random neighbour, or stays when cur
// is isolated (no RNG draw in that case).
func (w *Walker) step(cur int, rng *rand.Rand) int {
	nbrs := w.adj[cur]
	if len(nbrs) == 0 {
		return cur
	}

	return nbrs[rng.IntN(len(nbrs))]
}
