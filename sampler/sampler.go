// SPDX-License-Identifier: MIT

package sampler

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/katalvlaran/spine/degree"
	"github.com/katalvlaran/spine/dtw"
	"github.com/katalvlaran/spine/proximity"
)

const (
	methodNew        = "New"
	methodSample     = "Sample"
	methodSampleAll  = "SampleAll"
	methodSimilarity = "Similarity"
)

// Sampler is bound to one fitted matrix, index and local neighbourhood.
// It holds no mutable state; the caller's RNG carries all randomness.
type Sampler struct {
	cfg   Config
	size  int
	opts  dtw.Options
	prox  *proximity.Matrix
	idx   *degree.Index
	local map[int][]int
}

// New validates cfg and binds the sampler to its inputs. local maps a vertex
// to the vertices its plain walks visited; entries are deduplicated and
// sorted here, and a missing entry makes the anchor its own local partner.
func New(cfg Config, prox *proximity.Matrix, idx *degree.Index, local map[int][]int) (*Sampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	if prox == nil || idx == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNilInput)
	}
	if prox.Len() != idx.Len() {
		return nil, fmt.Errorf("%s: %w: %d vs %d vertices", methodNew, ErrMismatch, prox.Len(), idx.Len())
	}
	for _, v := range prox.Vertices() {
		if _, ok := idx.Degree(v); !ok {
			return nil, fmt.Errorf("%s: %w: vertex %d missing from index", methodNew, ErrMismatch, v)
		}
	}

	sets := make(map[int][]int, len(local))
	for v, set := range local {
		if _, ok := prox.Row(v); !ok {
			return nil, fmt.Errorf("%s: local set of %d: %w", methodNew, v, ErrVertexNotFound)
		}
		s := slices.Clone(set)
		slices.Sort(s)
		s = slices.Compact(s)
		for _, u := range s {
			if _, ok := prox.Row(u); !ok {
				return nil, fmt.Errorf("%s: local set of %d holds %d: %w", methodNew, v, u, ErrVertexNotFound)
			}
		}
		sets[v] = s
	}

	size := cfg.TargetSize
	if size == 0 {
		size = degree.TargetSize(idx.Len())
	}
	opts := dtw.DefaultOptions()
	opts.Window = cfg.Window
	opts.MemoryMode = dtw.TwoRows
	opts.Cost = dtw.Relative(cfg.Epsilon)

	return &Sampler{cfg: cfg, size: size, opts: opts, prox: prox, idx: idx, local: sets}, nil
}

// TargetSize returns the resolved candidate-set size.
func (s *Sampler) TargetSize() int { return s.size }

// Sample draws the positive sample of node.
func (s *Sampler) Sample(node int, rng *rand.Rand) (PositiveSample, error) {
	if rng == nil {
		return PositiveSample{}, ErrNilRand
	}
	if _, ok := s.prox.Row(node); !ok {
		return PositiveSample{}, fmt.Errorf("%s: %w: %d", methodSample, ErrVertexNotFound, node)
	}

	if rng.Float64() >= s.cfg.StructuralRate {
		return s.vector(node, s.pickLocal(node, rng), BranchLocal)
	}

	candidates, err := s.idx.Candidates(node, s.size)
	if err != nil {
		return PositiveSample{}, fmt.Errorf("%s: %w", methodSample, err)
	}
	if len(candidates) == 0 {
		return s.vector(node, s.pickLocal(node, rng), BranchFallback)
	}
	scores, err := s.Scores(node, candidates)
	if err != nil {
		return PositiveSample{}, fmt.Errorf("%s: %w", methodSample, err)
	}

	return s.vector(node, candidates[draw(scores, rng)], BranchStructural)
}

// SampleAll draws exactly one sample per vertex, in ascending anchor order.
func (s *Sampler) SampleAll(rng *rand.Rand) ([]PositiveSample, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	vertices := s.prox.Vertices()
	out := make([]PositiveSample, 0, len(vertices))
	for _, v := range vertices {
		ps, err := s.Sample(v, rng)
		if err != nil {
			return nil, fmt.Errorf("%s: anchor %d: %w", methodSampleAll, v, err)
		}
		out = append(out, ps)
	}

	return out, nil
}

// Similarity returns exp(−DTW(w_a, w_b)) in (0,1]; 1 means identical weights.
func (s *Sampler) Similarity(a, b int) (float64, error) {
	wa, ok := s.prox.WeightsView(a)
	if !ok {
		return 0, fmt.Errorf("%s: %w: %d", methodSimilarity, ErrVertexNotFound, a)
	}
	wb, ok := s.prox.WeightsView(b)
	if !ok {
		return 0, fmt.Errorf("%s: %w: %d", methodSimilarity, ErrVertexNotFound, b)
	}
	d, _, err := dtw.DTW(wa, wb, &s.opts)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodSimilarity, err)
	}

	return math.Exp(-d), nil
}

// Scores returns the similarity of node to each candidate, in order.
func (s *Sampler) Scores(node int, candidates []int) ([]float64, error) {
	out := make([]float64, len(candidates))
	for i, c := range candidates {
		sim, err := s.Similarity(node, c)
		if err != nil {
			return nil, err
		}
		out[i] = sim
	}

	return out, nil
}

// pickLocal draws uniformly from node's visited set.
func (s *Sampler) pickLocal(node int, rng *rand.Rand) int {
	set := s.local[node]
	if len(set) == 0 {
		return node
	}

	return set[rng.IntN(len(set))]
}

func (s *Sampler) vector(anchor, partner int, branch Branch) (PositiveSample, error) {
	v, err := s.prox.Vector(partner)
	if err != nil {
		return PositiveSample{}, fmt.Errorf("%s: partner of %d: %w", methodSample, anchor, err)
	}

	return PositiveSample{
		Anchor:  anchor,
		Partner: partner,
		Branch:  branch,
		Targets: v.Targets,
		Weights: v.Weights,
	}, nil
}

// draw picks an index proportionally to scores, uniformly when they do not
// form a usable distribution.
func draw(scores []float64, rng *rand.Rand) int {
	total := floats.Sum(scores)
	if !(total > 0) || math.IsInf(total, 0) {
		return rng.IntN(len(scores))
	}
	p := slices.Clone(scores)
	floats.Scale(1/total, p)
	i, ok := sampleuv.NewWeighted(p, rng).Take()
	if !ok {
		return rng.IntN(len(scores))
	}

	return i
}
