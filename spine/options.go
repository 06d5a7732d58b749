// SPDX-License-Identifier: MIT

package spine

import (
	"fmt"
	"log/slog"
	"math"
)

// Option configures a Model. Invalid values are recorded and surfaced by New
// as ErrInvalidConfiguration.
type Option func(*Options)

// Options holds the estimator parameters.
type Options struct {
	WalkNumber     int     // walks per vertex, ≥ 1
	WalkLength     int     // elements per walk, ≥ 1
	Beta           float64 // restart-walk move probability, [0,1]
	K              int     // proximity-vector width, ≥ 1
	StructuralRate float64 // structural-branch probability, [0,1]
	Epsilon        float64 // relative-cost offset, > 0
	Seed           uint64
	Trainer        Trainer
	Logger         *slog.Logger

	err error
}

// Defaults.
const (
	DefaultWalkNumber     = 10
	DefaultWalkLength     = 40
	DefaultBeta           = 0.5
	DefaultK              = 10
	DefaultStructuralRate = 0.5
	DefaultEpsilon        = 1e-6
	DefaultSeed           = 42
)

// DefaultOptions returns the default parameters, the PositiveMatrixTrainer
// and a discarding logger.
func DefaultOptions() Options {
	return Options{
		WalkNumber:     DefaultWalkNumber,
		WalkLength:     DefaultWalkLength,
		Beta:           DefaultBeta,
		K:              DefaultK,
		StructuralRate: DefaultStructuralRate,
		Epsilon:        DefaultEpsilon,
		Seed:           DefaultSeed,
		Trainer:        PositiveMatrixTrainer{},
		Logger:         slog.New(slog.DiscardHandler),
	}
}

// record keeps the first violation.
func (o *Options) record(err error) {
	if o.err == nil {
		o.err = err
	}
}

// WithWalkNumber sets the number of walks per vertex (random_walk_number).
func WithWalkNumber(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.record(fmt.Errorf("%w: random_walk_number=%d < 1", ErrInvalidConfiguration, n))
			return
		}
		o.WalkNumber = n
	}
}

// WithWalkLength sets the number of elements per walk (random_walk_length).
func WithWalkLength(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.record(fmt.Errorf("%w: random_walk_length=%d < 1", ErrInvalidConfiguration, n))
			return
		}
		o.WalkLength = n
	}
}

// WithBeta sets the restart-walk move probability.
func WithBeta(beta float64) Option {
	return func(o *Options) {
		if !unit(beta) {
			o.record(fmt.Errorf("%w: beta=%g not in [0,1]", ErrInvalidConfiguration, beta))
			return
		}
		o.Beta = beta
	}
}

// WithK sets the proximity-vector width.
func WithK(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.record(fmt.Errorf("%w: k=%d < 1", ErrInvalidConfiguration, k))
			return
		}
		o.K = k
	}
}

// WithStructuralRate sets the probability of the structural branch.
func WithStructuralRate(rate float64) Option {
	return func(o *Options) {
		if !unit(rate) {
			o.record(fmt.Errorf("%w: structural_rate=%g not in [0,1]", ErrInvalidConfiguration, rate))
			return
		}
		o.StructuralRate = rate
	}
}

// WithEpsilon sets the offset that keeps the relative DTW cost finite.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) || math.IsInf(eps, 1) {
			o.record(fmt.Errorf("%w: epsilon=%g must be finite and > 0", ErrInvalidConfiguration, eps))
			return
		}
		o.Epsilon = eps
	}
}

// WithSeed sets the seed of the per-Fit generator.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithTrainer replaces the embedding trainer.
func WithTrainer(t Trainer) Option {
	return func(o *Options) {
		if t == nil {
			o.record(fmt.Errorf("%w: trainer is nil", ErrInvalidConfiguration))
			return
		}
		o.Trainer = t
	}
}

// WithLogger sets the logger used by Fit.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.record(fmt.Errorf("%w: logger is nil", ErrInvalidConfiguration))
			return
		}
		o.Logger = l
	}
}

// validate re-checks every field of a fully applied Options.
func (o Options) validate() error {
	if o.err != nil {
		return o.err
	}
	switch {
	case o.WalkNumber < 1:
		return fmt.Errorf("%w: random_walk_number=%d < 1", ErrInvalidConfiguration, o.WalkNumber)
	case o.WalkLength < 1:
		return fmt.Errorf("%w: random_walk_length=%d < 1", ErrInvalidConfiguration, o.WalkLength)
	case !unit(o.Beta):
		return fmt.Errorf("%w: beta=%g not in [0,1]", ErrInvalidConfiguration, o.Beta)
	case o.K < 1:
		return fmt.Errorf("%w: k=%d < 1", ErrInvalidConfiguration, o.K)
	case !unit(o.StructuralRate):
		return fmt.Errorf("%w: structural_rate=%g not in [0,1]", ErrInvalidConfiguration, o.StructuralRate)
	case !(o.Epsilon > 0) || math.IsInf(o.Epsilon, 1):
		return fmt.Errorf("%w: epsilon=%g must be finite and > 0", ErrInvalidConfiguration, o.Epsilon)
	case o.Trainer == nil:
		return fmt.Errorf("%w: trainer is nil", ErrInvalidConfiguration)
	case o.Logger == nil:
		return fmt.Errorf("%w: logger is nil", ErrInvalidConfiguration)
	}

	return nil
}

func unit(x float64) bool { return x >= 0 && x <= 1 }
