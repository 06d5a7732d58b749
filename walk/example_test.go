// SPDX-License-Identifier: MIT

package walk_test

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/katalvlaran/spine/builder"
	"github.com/katalvlaran/spine/walk"
)

// ExampleWalker_Restart shows the two beta extremes on a path.
func ExampleWalker_Restart() {
	g, _ := builder.BuildGraph(nil, nil, builder.Path(2))
	w, _ := walk.New(g)
	rng := rand.New(rand.NewPCG(1, 2))

	stay, _ := w.Restart(0, 4, 0, rng)
	fmt.Println(slices.Collect(stay))
	move, _ := w.Restart(0, 4, 1, rng)
	fmt.Println(slices.Collect(move))
	// Output:
	// [0 0 0 0]
	// [0 1 0 1]
}
