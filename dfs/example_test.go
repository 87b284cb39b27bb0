package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/edgeweight/core"
	"github.com/katalvlaran/edgeweight/dfs"
)

// ExampleEnumeratePaths lists the simple paths leaving vertex 0 of a square
// with a diagonal, then keeps one path per vertex set.
//
//	0───1
//	│ ╲ │
//	3───2
func ExampleEnumeratePaths() {
	g, err := core.NewGraph(4, []core.Pair{{0, 1}, {1, 2}, {2, 3}, {0, 3}, {0, 2}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// At most three vertices per path.
	paths, err := dfs.EnumeratePaths(g, 0, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("all:", paths)
	fmt.Println("dedup:", dfs.Deduplicate(paths))
	// Output:
	// all: [[0] [0 1] [0 1 2] [0 2] [0 2 1] [0 2 3] [0 3] [0 3 2]]
	// dedup: [[0 1] [0 1 2] [0 2] [0 2 3] [0 3]]
}

// ExampleMaxPathLength shows the node bound for a few path targets.
func ExampleMaxPathLength() {
	for _, t := range []int{6, 19, 31} {
		fmt.Printf("target %d: at most %d vertices\n", t, dfs.MaxPathLength(t))
	}
	// Output:
	// target 6: at most 4 vertices
	// target 19: at most 6 vertices
	// target 31: at most 8 vertices
}
