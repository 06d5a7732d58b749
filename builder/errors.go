// SPDX-License-Identifier: MIT
// Package: spine/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context using `%w`.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not apply a constructor
// (nil constructor, invalid explicit fixture, core rejection).
var ErrConstructFailed = errors.New("builder: construction failed")

// Stable method tags used in wrapped error messages.
const (
	methodCycle        = "Cycle"
	methodPath         = "Path"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodBarbell      = "Barbell"
	methodRandomSparse = "RandomSparse"
	methodEdges        = "Edges"
	methodIsolated     = "Isolated"
	methodOffset       = "Offset"
)
