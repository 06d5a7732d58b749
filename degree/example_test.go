// SPDX-License-Identifier: MIT

package degree_test

import (
	"fmt"

	"github.com/katalvlaran/spine/builder"
	"github.com/katalvlaran/spine/degree"
)

// ExampleIndex_Candidates searches a star: leaves find each other first,
// the hub falls back to the leaf bucket.
func ExampleIndex_Candidates() {
	g, _ := builder.BuildGraph(nil, nil, builder.Star(6))
	idx, _ := degree.Build(g)

	fmt.Println("degrees:", idx.Degrees())
	size := degree.TargetSize(idx.Len())
	fmt.Println("size:", size)
	leaf, _ := idx.Candidates(3, size)
	fmt.Println("leaf 3:", leaf)
	hub, _ := idx.Candidates(0, size)
	fmt.Println("hub:", hub)
	// Output:
	// degrees: [1 5]
	// size: 6
	// leaf 3: [1 2 4 5 0]
	// hub: [1 2 3 4 5]
}
