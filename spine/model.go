// SPDX-License-Identifier: MIT

package spine

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spine/core"
	"github.com/katalvlaran/spine/degree"
	"github.com/katalvlaran/spine/proximity"
	"github.com/katalvlaran/spine/sampler"
	"github.com/katalvlaran/spine/walk"
)

// pcgStream decorrelates the two PCG state words derived from one seed.
const pcgStream = 0x9E3779B97F4A7C15

// Model is the SPINE estimator. It is not safe for concurrent Fit calls.
type Model struct {
	opts Options
	log  *slog.Logger

	fitted    bool
	prox      *proximity.Matrix
	pairs     []sampler.PositiveSample
	embedding *mat.Dense
	stats     Stats
}

var _ Embedder = (*Model)(nil)

// New applies opts over DefaultOptions and validates the result.
func New(opts ...Option) (*Model, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Model{opts: o, log: o.Logger}, nil
}

// Options returns the resolved parameters.
func (m *Model) Options() Options { return m.opts }

// Fit rebuilds every structure from g and trains the embedding. A failed Fit
// leaves the model unfitted.
func (m *Model) Fit(g core.Adjacency) error {
	m.reset()
	if core.IsNil(g) {
		return ErrNilGraph
	}
	if len(g.Vertices()) == 0 {
		return ErrEmptyGraph
	}
	o := m.opts
	rng := rand.New(rand.NewPCG(o.Seed, o.Seed^pcgStream))

	w, err := walk.New(g)
	if err != nil {
		return fmt.Errorf("Fit: %w", err)
	}
	isolated := w.Isolated()
	if len(isolated) > 0 {
		m.log.Debug("isolated vertices stay in place", slog.Any("vertices", isolated))
	}
	if lg, ok := g.(interface{ Looped() bool }); ok {
		m.log.Debug("graph loop policy", slog.Bool("allows_loops", lg.Looped()))
	}

	m.log.Debug("building proximity matrix",
		slog.Int("vertices", len(w.Vertices())),
		slog.Int("walk_number", o.WalkNumber),
		slog.Int("walk_length", o.WalkLength),
		slog.Float64("beta", o.Beta),
		slog.Int("k", o.K))
	walks, err := w.RestartWalks(o.WalkNumber, o.WalkLength, o.Beta, rng)
	if err != nil {
		return fmt.Errorf("Fit: %w", err)
	}
	prox, err := proximity.Build(w.Vertices(), walks, o.K)
	if err != nil {
		return fmt.Errorf("Fit: %w", err)
	}

	m.log.Debug("collecting local neighbourhoods")
	local, err := w.Visited(o.WalkNumber, o.WalkLength, rng)
	if err != nil {
		return fmt.Errorf("Fit: %w", err)
	}

	idx, err := degree.Build(g)
	if err != nil {
		return fmt.Errorf("Fit: %w", err)
	}
	m.log.Debug("degree index built", slog.Int("buckets", len(idx.Degrees())))

	cfg := sampler.DefaultConfig()
	cfg.StructuralRate = o.StructuralRate
	cfg.Epsilon = o.Epsilon
	s, err := sampler.New(cfg, prox, idx, local)
	if err != nil {
		return fmt.Errorf("Fit: %w", err)
	}
	pairs, err := s.SampleAll(rng)
	if err != nil {
		return fmt.Errorf("Fit: %w", err)
	}

	stats := Stats{Vertices: prox.Len(), Isolated: len(isolated), TargetSize: s.TargetSize()}
	for _, p := range pairs {
		switch p.Branch {
		case sampler.BranchLocal:
			stats.Local++
		case sampler.BranchStructural:
			stats.Structural++
		case sampler.BranchFallback:
			stats.Fallback++
		}
	}

	m.log.Debug("training embedding", slog.Int("pairs", len(pairs)))
	emb, err := o.Trainer.Train(slices.Clone(pairs), o.K)
	if err != nil {
		return fmt.Errorf("Fit: %w: %v", ErrTrainer, err)
	}
	if emb == nil {
		return fmt.Errorf("Fit: %w: nil embedding", ErrTrainer)
	}
	if r, _ := emb.Dims(); r != len(pairs) {
		return fmt.Errorf("Fit: %w: embedding has %d rows, want %d", ErrTrainer, r, len(pairs))
	}

	m.prox, m.pairs, m.embedding, m.stats, m.fitted = prox, pairs, emb, stats, true
	m.log.Info("spine fit complete",
		slog.Int("vertices", stats.Vertices),
		slog.Int("isolated", stats.Isolated),
		slog.Int("local", stats.Local),
		slog.Int("structural", stats.Structural),
		slog.Int("fallback", stats.Fallback))

	return nil
}

func (m *Model) reset() {
	m.fitted = false
	m.prox, m.pairs, m.embedding = nil, nil, nil
	m.stats = Stats{}
}

// Pairs returns the positive samples of the last Fit in ascending anchor order.
func (m *Model) Pairs() ([]sampler.PositiveSample, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}

	return slices.Clone(m.pairs), nil
}

// Proximity returns the rooted-proximity matrix of the last Fit.
func (m *Model) Proximity() (*proximity.Matrix, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}

	return m.prox, nil
}

// Embedding returns a copy of the trained embedding.
func (m *Model) Embedding() (*mat.Dense, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}

	return mat.DenseCopyOf(m.embedding), nil
}

// Stats returns the branch counts of the last Fit; zero before any Fit.
func (m *Model) Stats() Stats { return m.stats }
