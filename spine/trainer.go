// SPDX-License-Identifier: MIT

package spine

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spine/sampler"
)

// PositiveMatrixTrainer is the baseline Trainer: row i of the embedding is
// the positive proximity vector sampled for pairs[i].Anchor. It performs no
// optimisation; a skip-gram or negative-sampling learner plugs in through
// WithTrainer.
type PositiveMatrixTrainer struct{}

// Train stacks the pair weights into a len(pairs)×k matrix.
func (PositiveMatrixTrainer) Train(pairs []sampler.PositiveSample, k int) (*mat.Dense, error) {
	if len(pairs) == 0 || k < 1 {
		return nil, fmt.Errorf("PositiveMatrixTrainer: %d pairs, k=%d", len(pairs), k)
	}
	out := mat.NewDense(len(pairs), k, nil)
	for i, p := range pairs {
		if len(p.Weights) != k {
			return nil, fmt.Errorf("PositiveMatrixTrainer: anchor %d has %d weights, want %d", p.Anchor, len(p.Weights), k)
		}
		out.SetRow(i, p.Weights)
	}

	return out, nil
}
