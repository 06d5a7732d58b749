// SPDX-License-Identifier: MIT
//
// Package sampler draws one positive sample per vertex by mixing a local
// random-walk signal with a structural DTW-similarity signal.
//
// For anchor n a uniform u decides the branch:
//
//	u ≥ StructuralRate → local: a uniform pick from the vertices n's plain
//	                     walks visited;
//	otherwise          → structural: degree-index candidates scored by
//	                     exp(−DTW(w_n, w_c)) under the relative cost and
//	                     drawn proportionally to their score.
//
// Fallbacks:
//
//	empty candidate set        → local pick, reported as BranchFallback;
//	zero or non-finite scores  → uniform pick over the candidates;
//	no recorded local visits   → the anchor itself.
//
// The returned sample carries the partner's full proximity vector.
package sampler

import (
	"errors"
	"fmt"
)

// Sentinel errors for sampler construction and sampling.
var (
	// ErrBadConfig is returned for out-of-range Config fields.
	ErrBadConfig = errors.New("sampler: invalid config")

	// ErrNilInput is returned when the proximity matrix or the index is nil.
	ErrNilInput = errors.New("sampler: proximity matrix and degree index are required")

	// ErrMismatch is returned when the matrix and the index cover different vertices.
	ErrMismatch = errors.New("sampler: proximity matrix and degree index disagree on vertices")

	// ErrVertexNotFound is returned for anchors or candidates outside the matrix.
	ErrVertexNotFound = errors.New("sampler: vertex not found")

	// ErrNilRand is returned when no random source is supplied.
	ErrNilRand = errors.New("sampler: rng is nil")
)

// Branch records which path produced a sample.
type Branch uint8

const (
	// BranchLocal is a uniform pick from the anchor's walk neighbourhood.
	BranchLocal Branch = iota

	// BranchStructural is a similarity-proportional pick from degree candidates.
	BranchStructural

	// BranchFallback is a local pick taken because the structural branch had
	// no candidates.
	BranchFallback
)

// String implements fmt.Stringer.
func (b Branch) String() string {
	switch b {
	case BranchLocal:
		return "local"
	case BranchStructural:
		return "structural"
	case BranchFallback:
		return "fallback"
	default:
		return fmt.Sprintf("Branch(%d)", uint8(b))
	}
}

// PositiveSample pairs an anchor with its partner's proximity vector.
type PositiveSample struct {
	Anchor  int
	Partner int
	Branch  Branch
	Targets []int
	Weights []float64
}

// Config controls branch selection and structural scoring.
//
//   - StructuralRate — probability of the structural branch, in [0,1].
//   - Epsilon        — offset added to both DTW operands, > 0.
//   - Window         — DTW warping radius; -1 is unconstrained.
//   - TargetSize     — candidate-set size; 0 means degree.TargetSize(|V|).
type Config struct {
	StructuralRate float64
	Epsilon        float64
	Window         int
	TargetSize     int
}

// DefaultEpsilon keeps the relative cost finite for zero weights.
const DefaultEpsilon = 1e-6

// DefaultConfig returns an even branch split, window 1 and the derived
// candidate-set size.
func DefaultConfig() Config {
	return Config{
		StructuralRate: 0.5,
		Epsilon:        DefaultEpsilon,
		Window:         1,
		TargetSize:     0,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case !(c.StructuralRate >= 0 && c.StructuralRate <= 1):
		return fmt.Errorf("%w: StructuralRate=%g not in [0,1]", ErrBadConfig, c.StructuralRate)
	case !(c.Epsilon > 0):
		return fmt.Errorf("%w: Epsilon=%g must be > 0", ErrBadConfig, c.Epsilon)
	case c.Window < -1:
		return fmt.Errorf("%w: Window=%d < -1", ErrBadConfig, c.Window)
	case c.TargetSize < 0:
		return fmt.Errorf("%w: TargetSize=%d < 0", ErrBadConfig, c.TargetSize)
	}

	return nil
}
