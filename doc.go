// SPDX-License-Identifier: MIT
//
// Package spine is the module root of the SPINE proximity and sampling
// engine: positive training pairs for structural-identity node embeddings.
//
// Subpackages, in pipeline order:
//
//	core/      — Adjacency contract and a thread-safe undirected int-ID Graph
//	builder/   — deterministic fixture graphs (cycle, path, star, barbell, random)
//	walk/      — plain and restart random walks as lazy iterators
//	proximity/ — top-k rooted-proximity vectors from restart-walk counts
//	degree/    — degree-bucket index with expanding-radius candidate search
//	dtw/       — Dynamic Time Warping with pluggable local cost
//	sampler/   — local vs structural positive sampling
//	spine/     — the estimator: options, YAML config, Fit, Embedding
//
// Quick example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Cycle(4))
//	m, _ := spine.New(spine.WithK(2))
//	_ = m.Fit(g)
//	pairs, _ := m.Pairs() // one (anchor, proximity vector) per vertex
//
//	go get github.com/katalvlaran/spine
package spine
