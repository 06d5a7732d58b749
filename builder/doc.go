// SPDX-License-Identifier: MIT
//
// Package builder assembles deterministic core.Graph fixtures for SPINE
// pipelines, tests and benchmarks.
//
// One orchestrator, many constructors:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.Cycle(6),
//	    builder.Offset(6, builder.Star(4)),
//	    builder.Isolated(20),
//	)
//
// Constructors:
//   - Cycle(n), Path(n), Star(n), Complete(n) — classic topologies.
//   - Barbell(m) — two K_m joined by a bridge; its two halves are structural twins.
//   - RandomSparse(n, p) — Erdős–Rényi-like, needs WithSeed/WithRand.
//   - Edges(pairs...) and Isolated(ids...) — explicit fixtures.
//   - Offset(base, c) — shift the IDs produced by c, for disjoint unions.
//
// Determinism:
//
//	Same options, same seed and same constructor order ⇒ identical graphs.
//	Vertices are added in ascending index order, edges in documented order.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) wrapped with the constructor name.
package builder
