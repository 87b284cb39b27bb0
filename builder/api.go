// SPDX-License-Identifier: MIT
// Package: edgeweight/builder
//
// api.go: Constructor type and BuildGraph.
//
// Contract:
//   • Every Constructor returns edges over vertices 0..n-1 in a stable order,
//     so edge ids (list positions) are deterministic.
//   • BuildGraph forwards core options (targets, declared counts) unchanged.

package builder

import (
	"fmt"

	"github.com/katalvlaran/edgeweight/core"
)

// Constructor produces the edge list of an n-vertex topology.
type Constructor func(n int) ([]core.Pair, error)

// BuildGraph runs ctor for n vertices and seals the result into a core.Graph,
// declaring the edge total so core re-checks it.
//
// Complexity: O(n + E) on top of ctor.
func BuildGraph(n int, ctor Constructor, opts ...core.GraphOption) (*core.Graph, error) {
	pairs, err := ctor(n)
	if err != nil {
		return nil, err
	}
	all := make([]core.GraphOption, 0, len(opts)+1)
	all = append(all, core.WithEdgeCount(len(pairs)))
	all = append(all, opts...)

	g, err := core.NewGraph(n, pairs, all...)
	if err != nil {
		return nil, fmt.Errorf("builder: BuildGraph(n=%d): %w", n, err)
	}

	return g, nil
}
