// SPDX-License-Identifier: MIT
//
// Package dtw computes Dynamic Time Warping (DTW) distances between
// numeric sequences, with pluggable local cost, optional alignment path and
// memory optimizations.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the index
//	axis to minimize cumulative local cost. SPINE uses it to compare two
//	nodes' ranked rooted-proximity weights, where a one-rank shift should
//	cost little.
//
// ✨ Key features:
//   - full-matrix mode: exact O(N·M) time & memory, path recovery
//   - two-rows mode: O(M) memory (choose via MemoryMode)
//   - optional Sakoe–Chiba window (|i−j| ≤ w)
//   - slope penalty to discourage excessive stretching
//   - local cost: Absolute (|a−b|) or Relative(eps) (max/min − 1)
//
// ⚙️ Usage:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 1
//	opts.Cost = dtw.Relative(1e-9)
//	dist, _, err := dtw.DTW(a, b, &opts)
//
// Performance:
//
//   - Time:   O(N·M), O(N·w) with a window
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
package dtw
