// SPDX-License-Identifier: MIT
//
// Package spine wires the SPINE proximity and sampling engine into one
// estimator.
//
// Fit runs, with a single seeded generator and in this order:
//
//  1. restart walks     → proximity.Matrix (rooted-proximity vectors);
//  2. plain walks       → per-vertex local neighbourhoods;
//  3. degree.Build      → degree-bucket index;
//  4. sampler.SampleAll → one PositiveSample per vertex;
//  5. Trainer.Train     → the embedding matrix.
//
// Every structure is rebuilt on each Fit and read-only afterwards. The same
// graph, options and seed always reproduce the same pairs.
//
// Configuration comes from functional options or a YAML document with the
// keys random_walk_number, random_walk_length, beta, k, structural_rate,
// seed and epsilon. Invalid values fail New with ErrInvalidConfiguration
// before any walk is generated.
//
// Usage:
//
//	m, err := spine.New(spine.WithK(8), spine.WithSeed(7))
//	if err != nil { ... }
//	if err := m.Fit(g); err != nil { ... }
//	emb, _ := m.Embedding()
package spine
