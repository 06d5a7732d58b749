// SPDX-License-Identifier: MIT
// Package: spine/builder
//
// helpers.go — shared vertex/edge emission used by all constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spine/core"
)

// addVertices inserts cfg.idFn(0..n-1) in ascending index order.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", method, id, err)
		}
	}

	return nil
}

// addEdge connects the vertices at indices i and j.
func addEdge(method string, g *core.Graph, cfg builderConfig, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d): %w", method, u, v, err)
	}

	return nil
}
