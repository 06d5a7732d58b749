// SPDX-License-Identifier: MIT
// Package: spine/builder
//
// impl_classic.go — Cycle, Path, Star, Complete and Barbell constructors.
//
// Contract:
//   • Adds vertices via cfg.idFn in ascending index order.
//   • Emits edges in a stable order (documented per constructor).
//   • Returns only sentinel errors; never panics at runtime.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spine/core"
)

const (
	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minCompleteNodes = 1
	minBarbellClique = 2
)

// Cycle builds an n-vertex simple cycle C_n (n ≥ 3).
// Edges: i—(i+1)%n for i ascending.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodCycle, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path builds a simple path P_n (n ≥ 2).
// Edges: i—i+1 for i ascending.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodPath, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a star with hub index 0 and n-1 leaves (n ≥ 2).
// Edges: 0—i for i = 1..n-1.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodStar, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds the complete simple graph K_n (n ≥ 1).
// Edges: i—j for i < j, row-major.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodComplete, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Barbell builds two cliques K_m (indices 0..m-1 and m..2m-1) joined by the
// bridge (m-1)—m (m ≥ 2). Vertex i and 2m-1-i are structural twins.
// Complexity: O(m²).
func Barbell(m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if m < minBarbellClique {
			return fmt.Errorf("%s: m=%d < min=%d: %w", methodBarbell, m, minBarbellClique, ErrTooFewVertices)
		}
		if err := addVertices(methodBarbell, g, cfg, 2*m); err != nil {
			return err
		}
		for _, base := range []int{0, m} {
			for i := 0; i < m; i++ {
				for j := i + 1; j < m; j++ {
					if err := addEdge(methodBarbell, g, cfg, base+i, base+j); err != nil {
						return err
					}
				}
			}
		}

		return addEdge(methodBarbell, g, cfg, m-1, m)
	}
}
