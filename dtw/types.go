// SPDX-License-Identifier: MIT

package dtw

import "math"

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix — keep the entire (n+1)x(m+1) matrix in memory.
//     Allows distance + full backtrace for the optimal warping path.
//
//   - TwoRows — only keep the current and previous row.
//     Memory drops to O(m), but the path cannot be recovered.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery, uses O(N·M) memory.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, no path recovery, uses O(M) memory.
	TwoRows
)

// CostFunc is the local cost between two aligned elements.
// It must be non-negative; DTW sums it along the warping path.
type CostFunc func(a, b float64) float64

// Absolute is the classic |a−b| local cost.
func Absolute(a, b float64) float64 { return math.Abs(a - b) }

// Relative returns the relative-magnitude cost max(x,y)/min(x,y) − 1 with
// x = a+eps and y = b+eps. It is symmetric, zero iff a == b, and finite for
// non-negative inputs whenever eps > 0.
func Relative(eps float64) CostFunc {
	return func(a, b float64) float64 {
		x, y := a+eps, b+eps
		if x < y {
			x, y = y, x
		}

		return x/y - 1
	}
}

// Coord is one cell (I into a, J into b) of a warping path.
type Coord struct {
	I, J int
}

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window       — maximum deviation |i-j| (Sakoe–Chiba band).
//     -1 disables the constraint; 0 allows the diagonal only.
//   - SlopePenalty — added cost for insertion/deletion steps (≥ 0).
//   - ReturnPath   — backtrack and return the optimal warping path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode   — FullMatrix or TwoRows storage.
//   - Cost         — local cost; nil means Absolute.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
	Cost         CostFunc
}

// DefaultOptions returns unconstrained, penalty-free, distance-only options
// with the Absolute cost.
func DefaultOptions() Options {
	return Options{
		Window:       -1,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   FullMatrix,
		Cost:         Absolute,
	}
}
