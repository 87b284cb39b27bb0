// SPDX-License-Identifier: MIT
// Package: edgeweight/builder
//
// impl_basic.go: Path, Cycle, Star, Wheel and Complete constructors.
//
// Contract:
//   • Path(n):     n ≥ 2, edges i–(i+1) for i = 0..n-2.
//   • Cycle(n):    n ≥ 3, Path(n) plus the closing edge 0–(n-1).
//   • Star(n):     n ≥ 2, hub 0 joined to 1..n-1.
//   • Wheel(n):    n ≥ 4, Cycle(n-1) on 0..n-2 plus spokes from hub n-1.
//   • Complete(n): n ≥ 1, every pair i<j in lexicographic order.
//   • Returns only ErrTooFewVertices (wrapped); never panics.
//
// Complexity:
//   • Time O(E) for every constructor; Complete is O(n²).

package builder

import (
	"github.com/katalvlaran/edgeweight/core"
)

// File-local constants (stable method tags, minima).
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
)

// Path returns the edges of the path graph P_n.
func Path(n int) ([]core.Pair, error) {
	if n < minPathNodes {
		return nil, builderErrorf(methodPath, ErrTooFewVertices, "n=%d < min=%d", n, minPathNodes)
	}
	pairs := make([]core.Pair, 0, n-1)
	for i := 0; i+1 < n; i++ {
		pairs = append(pairs, core.Pair{i, i + 1})
	}

	return pairs, nil
}

// Cycle returns the edges of the cycle graph C_n: the path 0..n-1 followed by
// the closing edge (0, n-1).
func Cycle(n int) ([]core.Pair, error) {
	if n < minCycleNodes {
		return nil, builderErrorf(methodCycle, ErrTooFewVertices, "n=%d < min=%d", n, minCycleNodes)
	}
	pairs, err := Path(n)
	if err != nil {
		return nil, err
	}

	return append(pairs, core.Pair{0, n - 1}), nil
}

// Star returns the edges of the star S_n with hub 0.
func Star(n int) ([]core.Pair, error) {
	if n < minStarNodes {
		return nil, builderErrorf(methodStar, ErrTooFewVertices, "n=%d < min=%d", n, minStarNodes)
	}
	pairs := make([]core.Pair, 0, n-1)
	for i := 1; i < n; i++ {
		pairs = append(pairs, core.Pair{0, i})
	}

	return pairs, nil
}

// Wheel returns the edges of W_n: a ring over 0..n-2 and a hub n-1 joined to
// every ring vertex. Ring edges come first, then spokes in ring order.
func Wheel(n int) ([]core.Pair, error) {
	if n < minWheelNodes {
		return nil, builderErrorf(methodWheel, ErrTooFewVertices, "n=%d < min=%d", n, minWheelNodes)
	}
	pairs, err := Cycle(n - 1)
	if err != nil {
		return nil, err
	}
	hub := n - 1
	for i := 0; i < hub; i++ {
		pairs = append(pairs, core.Pair{i, hub})
	}

	return pairs, nil
}

// Complete returns the edges of K_n in lexicographic (i, j) order.
func Complete(n int) ([]core.Pair, error) {
	if n < minCompleteNodes {
		return nil, builderErrorf(methodComplete, ErrTooFewVertices, "n=%d < min=%d", n, minCompleteNodes)
	}
	pairs := make([]core.Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, core.Pair{i, j})
		}
	}

	return pairs, nil
}
