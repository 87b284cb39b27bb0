package csp_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/edgeweight/csp"
)

// ExampleSolver_Solutions labels a triangle's three edges with 1..3 so that
// the two edges at vertex 0 add up to 3.
func ExampleSolver_Solutions() {
	m, _ := csp.NewModel(3, 3)
	_ = m.Add(
		csp.NewAllDifferent(0, 1, 2),
		csp.NewSumEquals([]int{0, 2}, 3),
	)
	s, _ := csp.NewSolver(m)

	for a, err := range s.Solutions(context.Background()) {
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(a)
	}
	fmt.Println("nodes:", s.Stats().Nodes)
	// Output:
	// [1 3 2]
	// [2 3 1]
	// nodes: 3
}
