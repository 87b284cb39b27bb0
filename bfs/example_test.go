package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/edgeweight/bfs"
	"github.com/katalvlaran/edgeweight/core"
)

// ExampleBFS demonstrates BFS layering and path recovery on a small network
// with two routes from 0 to 5.
func ExampleBFS() {
	g, _ := core.NewGraph(6, []core.Pair{
		{0, 1}, {1, 2}, {2, 5}, // long route
		{0, 3}, {3, 5}, // short route
		{4, 5},
	})

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(5)
	fmt.Println("order:", res.Order)
	fmt.Println("path:", path, "hops:", res.Depth[5])
	// Output:
	// order: [0 1 3 2 5 4]
	// path: [0 3 5] hops: 2
}

// ExampleConnected checks reachability across two components.
func ExampleConnected() {
	g, _ := core.NewGraph(4, []core.Pair{{0, 1}, {2, 3}})

	same, _ := bfs.Connected(g, 0, 1)
	other, _ := bfs.Connected(g, 0, 3)
	fmt.Println(same, other)
	// Output: true false
}
