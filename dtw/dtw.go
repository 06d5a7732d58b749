// SPDX-License-Identifier: MIT

package dtw

import (
	"errors"
	"fmt"
	"math"
)

// DTW — Dynamic Time Warping
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b). Allocate (n+1)x(m+1) DP matrix D.
//  2. Initialize D[0][0] = 0, D[i][0] = D[0][j] = +∞.
//  3. For i = 1..n, j = 1..m (and |i-j| ≤ Window, if constrained):
//     D[i][j] = cost(a[i-1], b[j-1]) + min(D[i-1][j]+SlopePenalty,
//     D[i][j-1]+SlopePenalty, D[i-1][j-1])
//  4. distance = D[n][m].
//  5. If ReturnPath, backtrack from (n,m) choosing the cheapest predecessor
//     (diagonal first on ties).
//
// Errors:
//   - ErrEmptyInput      — if either input is empty.
//   - ErrBadInput        — Window < -1, negative or NaN SlopePenalty, unknown MemoryMode.
//   - ErrPathNeedsMatrix — if ReturnPath=true with TwoRows mode.
var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates an invalid option value.
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

// DTW computes the Dynamic Time Warping distance between a and b.
// A nil opts behaves like DefaultOptions(). Returns (distance, path, error);
// path is nil unless opts.ReturnPath is set. An infeasible window yields +Inf.
func DTW(a, b []float64, opts *Options) (float64, []Coord, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validate(o); err != nil {
		return 0, nil, err
	}
	cost := o.Cost
	if cost == nil {
		cost = Absolute
	}
	window := o.Window
	if window < 0 {
		window = math.MaxInt
	}

	rows := 2
	if o.MemoryMode == FullMatrix {
		rows = n + 1
	}
	dp := make([][]float64, rows)
	for r := range dp {
		dp[r] = make([]float64, m+1)
	}
	inf := math.Inf(1)
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	row := func(i int) []float64 {
		if o.MemoryMode == FullMatrix {
			return dp[i]
		}
		return dp[i%2]
	}

	for i := 1; i <= n; i++ {
		curr, prev := row(i), row(i-1)
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if abs(i-j) > window {
				curr[j] = inf
				continue
			}
			best := min3(prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty, prev[j-1])
			curr[j] = cost(a[i-1], b[j-1]) + best
		}
	}
	distance := row(n)[m]

	if !o.ReturnPath || math.IsInf(distance, 1) {
		return distance, nil, nil
	}

	return distance, backtrack(dp, n, m, o.SlopePenalty), nil
}

// validate checks option domains.
func validate(o Options) error {
	switch {
	case o.Window < -1:
		return fmt.Errorf("%w: Window=%d < -1", ErrBadInput, o.Window)
	case o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty):
		return fmt.Errorf("%w: SlopePenalty=%g", ErrBadInput, o.SlopePenalty)
	case o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows:
		return fmt.Errorf("%w: MemoryMode=%d", ErrBadInput, o.MemoryMode)
	case o.ReturnPath && o.MemoryMode != FullMatrix:
		return ErrPathNeedsMatrix
	}

	return nil
}

// backtrack walks the full DP matrix from (n,m) to (1,1) and returns the
// path in forward order.
func backtrack(dp [][]float64, n, m int, penalty float64) []Coord {
	path := make([]Coord, 0, n+m)
	i, j := n, m
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		diag, up, left := dp[i-1][j-1], dp[i-1][j]+penalty, dp[i][j-1]+penalty
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
