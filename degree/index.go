// SPDX-License-Identifier: MIT
//
// Package degree indexes vertices by exact degree for expanding-radius
// structural-neighbour search.
//
// Only occupied degree values get a bucket. Buckets live in an ordered
// B-tree keyed by degree and each one links to its nearest occupied lower
// (Prev) and higher (Next) neighbour. Callers see detached Bucket
// snapshots whose links are Link values, absent when no such bucket exists.
//
// Query for a vertex n of degree d:
//
//  1. seed with every other vertex of degree d, ascending; stop (truncated
//     to size) once the seed reaches size;
//  2. otherwise take the nearer of the two linked buckets by |Δdegree|,
//     lower side on ties, append the whole bucket and advance that link;
//  3. stop once size is reached or both links are exhausted.
//
// The Index is read-only after Build, so queries never affect each other.
package degree

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/spine/core"
)

// Sentinel errors for index construction and queries.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("degree: graph is nil")

	// ErrDegree is returned when the graph cannot report a vertex degree.
	ErrDegree = errors.New("degree: degree lookup failed")

	// ErrVertexNotFound is returned for queries about vertices absent from the index.
	ErrVertexNotFound = errors.New("degree: vertex not found")

	// ErrBadSize is returned for a negative candidate-set size.
	ErrBadSize = errors.New("degree: size must be non-negative")
)

const (
	methodBuild      = "Build"
	methodCandidates = "Candidates"
)

// Link names a neighbouring occupied degree, if there is one.
type Link struct {
	Degree  int
	Present bool
}

// Bucket is a snapshot of the vertices of one exact degree and the links
// to the nearest occupied neighbouring degrees.
type Bucket struct {
	Degree int
	Nodes  []int // ascending
	Prev   Link
	Next   Link
}

// bucket is the indexed form; prev and next are nil when absent.
type bucket struct {
	degree int
	nodes  []int
	prev   *bucket
	next   *bucket
}

func (b *bucket) link() Link {
	if b == nil {
		return Link{}
	}

	return Link{Degree: b.degree, Present: true}
}

// Index is an immutable degree → bucket map with sparse ordered links.
type Index struct {
	tree   *btree.BTreeG[*bucket]
	degree map[int]int
}

func byDegree(a, b *bucket) bool { return a.degree < b.degree }

// TargetSize returns ⌈2·log2(n)⌉, the candidate-set size for a graph of n
// vertices. Graphs with at most one vertex get 0.
func TargetSize(n int) int {
	if n <= 1 {
		return 0
	}

	return int(math.Ceil(2 * math.Log2(float64(n))))
}

// Build groups the vertices of g by degree.
//
// Complexity: O(V log V).
func Build(g core.Adjacency) (*Index, error) {
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}
	vertices := slices.Clone(g.Vertices())
	slices.Sort(vertices)

	idx := &Index{
		tree:   btree.NewBTreeG(byDegree),
		degree: make(map[int]int, len(vertices)),
	}
	for _, v := range vertices {
		d, err := g.Degree(v)
		if err != nil {
			return nil, fmt.Errorf("%s: vertex %d: %w: %v", methodBuild, v, ErrDegree, err)
		}
		idx.degree[v] = d
		b, ok := idx.tree.Get(&bucket{degree: d})
		if !ok {
			b = &bucket{degree: d}
			idx.tree.Set(b)
		}
		b.nodes = append(b.nodes, v)
	}

	var prev *bucket
	idx.tree.Scan(func(b *bucket) bool {
		b.prev = prev
		if prev != nil {
			prev.next = b
		}
		prev = b
		return true
	})

	return idx, nil
}

// Len returns the number of indexed vertices.
func (x *Index) Len() int { return len(x.degree) }

// Degree returns the indexed degree of node.
func (x *Index) Degree(node int) (int, bool) {
	d, ok := x.degree[node]
	return d, ok
}

// Degrees returns the occupied degree values in ascending order.
func (x *Index) Degrees() []int {
	out := make([]int, 0, x.tree.Len())
	x.tree.Scan(func(b *bucket) bool {
		out = append(out, b.degree)
		return true
	})

	return out
}

// Bucket returns a copy of the bucket for degree d.
func (x *Index) Bucket(d int) (Bucket, bool) {
	b, ok := x.tree.Get(&bucket{degree: d})
	if !ok {
		return Bucket{}, false
	}

	return Bucket{
		Degree: b.degree,
		Nodes:  slices.Clone(b.nodes),
		Prev:   b.prev.link(),
		Next:   b.next.link(),
	}, true
}

// Candidates returns up to size structurally plausible partners of node,
// never including node itself. When a linked bucket is appended the result
// may exceed size; it is shorter than size only when every bucket is used.
//
// Complexity: O(log B + size + width of the last appended bucket).
func (x *Index) Candidates(node, size int) ([]int, error) {
	if size < 0 {
		return nil, fmt.Errorf("%s: %w: %d", methodCandidates, ErrBadSize, size)
	}
	d, ok := x.degree[node]
	if !ok {
		return nil, fmt.Errorf("%s: %w: %d", methodCandidates, ErrVertexNotFound, node)
	}
	if size == 0 {
		return []int{}, nil
	}

	home, _ := x.tree.Get(&bucket{degree: d})
	out := make([]int, 0, size)
	for _, v := range home.nodes {
		if v != node {
			out = append(out, v)
		}
	}
	if len(out) >= size {
		return out[:size], nil
	}

	lo, hi := home.prev, home.next
	for len(out) < size && (lo != nil || hi != nil) {
		var b *bucket
		switch {
		case hi == nil:
			b, lo = lo, lo.prev
		case lo == nil:
			b, hi = hi, hi.next
		case d-lo.degree <= hi.degree-d:
			b, lo = lo, lo.prev
		default:
			b, hi = hi, hi.next
		}
		out = append(out, b.nodes...)
	}

	return out, nil
}
