// SPDX-License-Identifier: MIT

package dtw_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spine/dtw"
)

// TestDTW_EmptyInput verifies that DTW returns ErrEmptyInput
// when either input sequence is empty.
func TestDTW_EmptyInput(t *testing.T) {
	opts := dtw.DefaultOptions()

	_, _, err := dtw.DTW([]float64{}, []float64{1, 2, 3}, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty first sequence should error")

	_, _, err = dtw.DTW([]float64{1, 2, 3}, nil, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty second sequence should error")
}

// TestDTW_BadOptions ensures out-of-domain options trigger ErrBadInput.
func TestDTW_BadOptions(t *testing.T) {
	cases := map[string]func(o *dtw.Options){
		"window":  func(o *dtw.Options) { o.Window = -2 },
		"penalty": func(o *dtw.Options) { o.SlopePenalty = -0.5 },
		"nan":     func(o *dtw.Options) { o.SlopePenalty = math.NaN() },
		"mode":    func(o *dtw.Options) { o.MemoryMode = dtw.MemoryMode(9) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			opts := dtw.DefaultOptions()
			mutate(&opts)
			_, _, err := dtw.DTW([]float64{1}, []float64{1}, &opts)
			assert.ErrorIs(t, err, dtw.ErrBadInput)
		})
	}
}

// TestDTW_PathNeedsMatrix ensures ReturnPath=true with TwoRows errors.
func TestDTW_PathNeedsMatrix(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = dtw.TwoRows

	_, _, err := dtw.DTW([]float64{1, 2}, []float64{1, 2}, &opts)
	assert.ErrorIs(t, err, dtw.ErrPathNeedsMatrix)
}

// TestDTW_BasicDistance verifies that identical sequences have zero distance
// and no path is returned by default.
func TestDTW_BasicDistance(t *testing.T) {
	a := []float64{0, 1, 2}

	dist, path, err := dtw.DTW(a, a, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist, "identical sequences must have zero distance")
	assert.Nil(t, path, "default ReturnPath=false should yield nil path")
}

// TestDTW_SyntheticDistanceAndPath checks a perfect subsequence match.
func TestDTW_SyntheticDistanceAndPath(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := dtw.DTW(a, b, &opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist, "perfect subsequence match yields zero cost")
	assert.Equal(t, []dtw.Coord{{0, 0}, {1, 1}, {1, 2}, {2, 3}}, path)
}

// TestDTW_WindowConstraint verifies that a strict window = 0
// with a length mismatch yields +Inf distance and no path.
func TestDTW_WindowConstraint(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.Window = 0
	opts.ReturnPath = true

	dist, path, err := dtw.DTW([]float64{1, 2, 3}, []float64{1, 2, 3, 4}, &opts)
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist, 1), "window=0 with length mismatch should yield +Inf")
	assert.Nil(t, path)
}

// TestDTW_SlopePenaltyAffectsDistance ensures that a positive slope penalty
// increases the computed distance by exactly that penalty.
func TestDTW_SlopePenaltyAffectsDistance(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 1, 2, 3}

	opts := dtw.DefaultOptions()
	dist0, _, err := dtw.DTW(a, b, &opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist0)

	opts.SlopePenalty = 1.0
	dist1, _, err := dtw.DTW(a, b, &opts)
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist1, "penalty=1.0 adds exactly one unit to distance")
}

// TestDTW_TwoRowsMatchesFullMatrix confirms both memory modes agree.
func TestDTW_TwoRowsMatchesFullMatrix(t *testing.T) {
	a := []float64{0, 1, 2, 3, 7, 1}
	b := []float64{0, 1, 1, 2, 3, 2}

	for _, window := range []int{-1, 0, 1, 2} {
		ref := dtw.DefaultOptions()
		ref.Window = window
		refDist, _, err := dtw.DTW(a, b, &ref)
		require.NoError(t, err)

		rolling := ref
		rolling.MemoryMode = dtw.TwoRows
		dist, path, err := dtw.DTW(a, b, &rolling)
		require.NoError(t, err)
		assert.Equal(t, refDist, dist, "window=%d", window)
		assert.Nil(t, path)
	}
}

// TestRelativeCost covers the relative-magnitude cost used for proximity weights.
func TestRelativeCost(t *testing.T) {
	cost := dtw.Relative(1e-9)
	values := []float64{0, 1e-12, 0.1, 0.25, 0.5, 1}
	for _, x := range values {
		assert.Equal(t, 0.0, cost(x, x), "cost(x,x) must be zero")
		for _, y := range values {
			assert.Equal(t, cost(x, y), cost(y, x), "cost must be symmetric for %g,%g", x, y)
			assert.GreaterOrEqual(t, cost(x, y), 0.0)
			assert.False(t, math.IsInf(cost(x, y), 0) || math.IsNaN(cost(x, y)))
		}
	}
	assert.InDelta(t, 1.0, dtw.Relative(0)(0.5, 0.25), 1e-12)
}

// TestDTW_RelativeWindowOne mirrors the proximity-vector comparison:
// equal-length weights, window 1, relative cost.
func TestDTW_RelativeWindowOne(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.Window = 1
	opts.Cost = dtw.Relative(1e-6)

	same, _, err := dtw.DTW([]float64{0.5, 0.3, 0.2}, []float64{0.5, 0.3, 0.2}, &opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, same)

	near, _, err := dtw.DTW([]float64{0.5, 0.3, 0.2}, []float64{0.45, 0.35, 0.2}, &opts)
	require.NoError(t, err)
	far, _, err := dtw.DTW([]float64{0.5, 0.3, 0.2}, []float64{1, 0, 0}, &opts)
	require.NoError(t, err)
	assert.Less(t, near, far)
	assert.False(t, math.IsInf(far, 1), "epsilon keeps zero weights finite")
}
