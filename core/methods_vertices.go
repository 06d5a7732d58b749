// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//
// Concurrency:
//   - Mutations take mu for writing, queries for reading.

package core

import "slices"

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrNegativeVertexID: if id < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return ErrNegativeVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether the vertex ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(deg(id)).
func (g *Graph) RemoveVertex(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return ErrVertexNotFound
	}
	for nbr := range nbrs {
		if nbr != id {
			delete(g.adjacency[nbr], id)
		}
		g.edgeCount--
	}
	delete(g.adjacency, id)

	return nil
}

// Vertices returns all vertex IDs in ascending order.
// The returned slice is a fresh copy owned by the caller.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Degree returns the undirected degree of id.
// A self-loop contributes 2, every other incident edge 1.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return degreeOf(id, nbrs), nil
}

// ensureVertex registers id with an empty neighbour set. Caller holds mu.
func (g *Graph) ensureVertex(id int) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int]struct{})
	}
}

// degreeOf applies the loop-aware degree policy to a neighbour set.
func degreeOf(id int, nbrs map[int]struct{}) int {
	d := len(nbrs)
	if _, loop := nbrs[id]; loop {
		d++
	}

	return d
}
