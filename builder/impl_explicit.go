// SPDX-License-Identifier: MIT
// Package: spine/builder
//
// impl_explicit.go — Edges and Isolated constructors for hand-written fixtures.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spine/core"
)

// Edges adds every pair as an undirected edge, in argument order.
// Pair entries are indices passed through cfg.idFn.
func Edges(pairs ...[2]int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, p := range pairs {
			if p[0] < 0 || p[1] < 0 {
				return fmt.Errorf("%s: negative index in %v: %w", methodEdges, p, ErrConstructFailed)
			}
			if err := addEdge(methodEdges, g, cfg, p[0], p[1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Isolated adds each index as a vertex with no incident edges.
// Indices already present keep their edges (AddVertex is idempotent).
func Isolated(indices ...int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, i := range indices {
			if i < 0 {
				return fmt.Errorf("%s: negative index %d: %w", methodIsolated, i, ErrConstructFailed)
			}
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", methodIsolated, id, err)
			}
		}

		return nil
	}
}
