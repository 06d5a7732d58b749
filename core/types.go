// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Adjacency contract, Graph storage, options and sentinel errors.
// Concurrency:
//   - mu guards vertices and the adjacency sets.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexID indicates that a vertex ID below zero was supplied.
	ErrNegativeVertexID = errors.New("core: vertex ID must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates the same undirected edge was added twice.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Adjacency is the read-only Graph Adapter every SPINE stage consumes.
//
// Contract:
//   - Vertices returns all IDs in ascending order; the slice is caller-owned.
//   - NeighborIDs returns ascending neighbour IDs or ErrVertexNotFound.
//   - Degree returns the vertex degree or ErrVertexNotFound.
//   - The relation is symmetric: v ∈ NeighborIDs(u) ⇔ u ∈ NeighborIDs(v).
type Adjacency interface {
	Vertices() []int
	NeighborIDs(id int) ([]int, error)
	Degree(id int) (int, error)
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an undirected, unweighted, simple-by-default graph with integer IDs.
//
// adjacency[u] holds the neighbour set of u; an undirected edge {u,v} is stored
// in both adjacency[u] and adjacency[v] (once when u == v).
type Graph struct {
	mu sync.RWMutex // guards everything below

	allowLoops bool // allow self-loops

	edgeCount int
	adjacency map[int]map[int]struct{}
}

// compile-time contract check
var _ Adjacency = (*Graph)(nil)

// IsNil reports whether g is nil or a nil *Graph wrapped in the interface.
// Typed nils of other Adjacency implementations are not detected.
func IsNil(g Adjacency) bool {
	if g == nil {
		return true
	}
	cg, ok := g.(*Graph)

	return ok && cg == nil
}

// NewGraph creates an empty Graph. By default loops are rejected.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[int]map[int]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of configuration and catalog sizes.
type GraphStats struct {
	AllowsLoops   bool
	VertexCount   int
	EdgeCount     int
	LoopCount     int
	IsolatedCount int
	MinDegree     int
	MaxDegree     int
}
