// SPDX-License-Identifier: MIT

package spine

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spine/core"
	"github.com/katalvlaran/spine/sampler"
)

// Sentinel errors for the estimator.
var (
	// ErrInvalidConfiguration is returned for out-of-range options or a bad config document.
	ErrInvalidConfiguration = errors.New("spine: invalid configuration")

	// ErrNotFitted is returned by accessors called before a successful Fit.
	ErrNotFitted = errors.New("spine: model is not fitted")

	// ErrNilGraph is returned when Fit receives a nil graph.
	ErrNilGraph = errors.New("spine: graph is nil")

	// ErrEmptyGraph is returned when Fit receives a graph without vertices.
	ErrEmptyGraph = errors.New("spine: graph has no vertices")

	// ErrTrainer is returned when the trainer fails or returns a malformed matrix.
	ErrTrainer = errors.New("spine: trainer failed")
)

// Embedder accepts a graph and exposes a fixed-width embedding matrix whose
// row i belongs to the i-th smallest vertex ID.
type Embedder interface {
	Fit(g core.Adjacency) error
	Embedding() (*mat.Dense, error)
}

// Trainer turns positive pairs into an embedding with one row per pair.
// k is the proximity-vector width of every pair.
type Trainer interface {
	Train(pairs []sampler.PositiveSample, k int) (*mat.Dense, error)
}

// TrainerFunc adapts a function to Trainer.
type TrainerFunc func(pairs []sampler.PositiveSample, k int) (*mat.Dense, error)

// Train calls f.
func (f TrainerFunc) Train(pairs []sampler.PositiveSample, k int) (*mat.Dense, error) {
	return f(pairs, k)
}

// Stats summarises the last Fit.
type Stats struct {
	Vertices   int
	Isolated   int // vertices whose walks stayed in place
	TargetSize int // structural candidate-set size
	Local      int
	Structural int
	Fallback   int // structural draws without candidates
}
