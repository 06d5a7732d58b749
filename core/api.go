// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters, snapshots and views.
// Policy:
//   - No algorithms or hidden state here.
//   - Every returned graph is a fresh instance; sources are never mutated.

package core

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Stats produces a deterministic, read-only snapshot of flags and catalog sizes.
// MinDegree/MaxDegree are 0 for an empty graph.
// Complexity: O(V).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.adjacency),
		EdgeCount:   g.edgeCount,
	}
	first := true
	for id, nbrs := range g.adjacency {
		d := degreeOf(id, nbrs)
		if _, loop := nbrs[id]; loop {
			stats.LoopCount++
		}
		if d == 0 {
			stats.IsolatedCount++
		}
		if first || d < stats.MinDegree {
			stats.MinDegree = d
		}
		if first || d > stats.MaxDegree {
			stats.MaxDegree = d
		}
		first = false
	}

	return &stats
}

// Clone returns a deep copy of the Graph (flags, vertices and edges).
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowLoops: g.allowLoops,
		edgeCount:  g.edgeCount,
		adjacency:  make(map[int]map[int]struct{}, len(g.adjacency)),
	}
	for id, nbrs := range g.adjacency {
		cp := make(map[int]struct{}, len(nbrs))
		for nbr := range nbrs {
			cp[nbr] = struct{}{}
		}
		clone.adjacency[id] = cp
	}

	return clone
}

// InducedSubgraph returns a new Graph containing only the vertices in keep
// and the edges whose endpoints are both kept. Unknown IDs in keep are ignored.
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[int]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	sub := &Graph{
		allowLoops: g.allowLoops,
		adjacency:  make(map[int]map[int]struct{}, len(keep)),
	}
	for id := range g.adjacency {
		if keep[id] {
			sub.adjacency[id] = make(map[int]struct{})
		}
	}
	for id, nbrs := range g.adjacency {
		if !keep[id] {
			continue
		}
		for nbr := range nbrs {
			if !keep[nbr] {
				continue
			}
			sub.adjacency[id][nbr] = struct{}{}
			// count each undirected edge once: at its lower endpoint
			if id <= nbr {
				sub.edgeCount++
			}
		}
	}

	return sub
}
