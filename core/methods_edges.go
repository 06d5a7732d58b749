// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Undirected edge lifecycle & neighbourhood queries.
//
// Policy:
//   - AddEdge auto-creates missing endpoints.
//   - Parallel edges are always rejected; self-loops only with WithLoops().

package core

import (
	"fmt"
	"slices"
)

// AddEdge inserts the undirected edge {from, to}, creating endpoints as needed.
//
// Errors:
//   - ErrNegativeVertexID: if either endpoint is negative.
//   - ErrLoopNotAllowed: if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed: if the edge already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int) error {
	if from < 0 || to < 0 {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrNegativeVertexID)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}
	g.ensureVertex(from)
	g.ensureVertex(to)
	if _, dup := g.adjacency[from][to]; dup {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrMultiEdgeNotAllowed)
	}
	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the undirected edge {from, to}.
//
// Errors:
//   - ErrEdgeNotFound: if the edge does not exist.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[from][to]; !ok {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", from, to, ErrEdgeNotFound)
	}
	delete(g.adjacency[from], to)
	delete(g.adjacency[to], from)
	g.edgeCount--

	return nil
}

// HasEdge reports whether the undirected edge {from, to} exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// EdgeCount returns the number of undirected edges (loops included).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// NeighborIDs returns the ascending neighbour IDs of id.
// A self-loop lists id itself once.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]int, 0, len(nbrs))
	for nbr := range nbrs {
		out = append(out, nbr)
	}
	slices.Sort(out)

	return out, nil
}

// AdjacencyList returns a deep snapshot id → ascending neighbour IDs.
// Complexity: O(V + E log d).
func (g *Graph) AdjacencyList() map[int][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int][]int, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		list := make([]int, 0, len(nbrs))
		for nbr := range nbrs {
			list = append(list, nbr)
		}
		slices.Sort(list)
		out[id] = list
	}

	return out
}
