// SPDX-License-Identifier: MIT
//
// Package walk generates truncated random walks over a core.Adjacency.
//
// Two kinds of walk share one snapshot of the graph:
//
//	Plain   — every step moves to a uniformly random neighbour.
//	Restart — every step moves with probability beta, otherwise it appends
//	          the origin again; the visitation histogram approximates
//	          rooted PageRank.
//
// Isolated vertices:
//
//	A vertex with no neighbours cannot be stepped from. The walk stays in
//	place and repeats the current vertex for the remaining steps. No error.
//
// Walks are lazy iter.Seq[int] values that draw from the caller's RNG while
// being consumed; ranging over the same walk twice yields a fresh walk.
package walk

import "errors"

// Sentinel errors for walk generation.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("walk: graph is nil")

	// ErrNeighbors is returned when fetching neighbours from the graph fails.
	ErrNeighbors = errors.New("walk: neighbor iteration error")

	// ErrBadLength is returned for a walk length below 1.
	ErrBadLength = errors.New("walk: length must be at least 1")

	// ErrBadNumber is returned for a walk count below 1.
	ErrBadNumber = errors.New("walk: number of walks must be at least 1")

	// ErrBadBeta is returned when beta lies outside [0,1].
	ErrBadBeta = errors.New("walk: beta must lie in [0,1]")

	// ErrUnknownOrigin is returned when a walk is rooted at an absent vertex.
	ErrUnknownOrigin = errors.New("walk: origin vertex not found")

	// ErrNilRand is returned when no random source is supplied.
	ErrNilRand = errors.New("walk: rng is nil")
)
