// SPDX-License-Identifier: MIT
//
// Package core defines the Graph Adapter contract consumed by every SPINE stage
// and a small, thread-safe, in-memory undirected graph that satisfies it.
//
// 🚀 What lives here?
//
//	Adjacency — the read-only capability the samplers need:
//	  • Vertices()       enumerable, ascending integer IDs
//	  • NeighborIDs(id)  ascending neighbour IDs
//	  • Degree(id)       per-vertex degree
//
//	Graph — a reference implementation used by builder fixtures, tests and
//	callers that do not already own an adjacency structure.
//
// ✨ Guarantees:
//   - Deterministic enumeration: Vertices() and NeighborIDs() are sorted ascending.
//   - Undirected edges only; self-loops opt-in via WithLoops().
//   - One sync.RWMutex guards the catalog; readers never block each other.
//
// Degree policy:
//
//	A plain incident edge contributes +1, a self-loop contributes +2
//	(classic undirected convention). A self-loop lists the vertex once in
//	NeighborIDs so a walk may step onto itself.
//
// Errors:
//
//	ErrNegativeVertexID  - vertex IDs must be ≥ 0.
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrEdgeNotFound      - requested edge does not exist.
//	ErrLoopNotAllowed    - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - the same undirected edge was added twice.
package core
