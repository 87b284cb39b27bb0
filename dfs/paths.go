package dfs

import (
	"fmt"

	"github.com/katalvlaran/edgeweight/core"
)

// Deduplicate drops single-vertex paths and every path whose vertex set equals
// the vertex set of a path kept earlier. The first occurrence wins, so the
// result preserves enumeration order.
//
// Two different simple paths over the same vertex set (for instance both
// directions around a cycle that returns next to start) collapse into one;
// callers relying on every ordering as a separate witness must not dedup.
//
// Time Complexity: O(P · L log L) for P paths of length ≤ L.
func Deduplicate(paths []Path) []Path {
	seen := make(map[string]struct{}, len(paths))
	out := make([]Path, 0, len(paths))
	for _, p := range paths {
		if len(p) < 2 {
			continue
		}
		sig := setSignature(p)
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		out = append(out, p)
	}

	return out
}

// MaxPathLength returns the largest number of vertices a path can have while
// its edge weights, being distinct positive integers, still add up to at most
// target. It is the smallest k >= 1 with T(k) = k(k+1)/2 > target, so that
// T(k-1) <= target < T(k): k-1 edges weigh at least T(k-1).
//
// Time Complexity: O(sqrt(target)).
func MaxPathLength(target int) int {
	k := 1
	for Triangular(k) <= target {
		k++
	}

	return k
}

// Triangular returns k(k+1)/2, the smallest possible sum of k distinct
// positive integers.
func Triangular(k int) int { return k * (k + 1) / 2 }

// PathEdges maps a path to the ids of the edges joining consecutive vertices.
// It fails with core.ErrNotAdjacent if two consecutive vertices share no edge.
func PathEdges(g *core.Graph, p Path) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(p) < 2 {
		return nil, fmt.Errorf("%w: len=%d", ErrPathTooShort, len(p))
	}
	edges := make([]int, 0, len(p)-1)
	for i := 0; i+1 < len(p); i++ {
		id, err := g.EdgeBetween(p[i], p[i+1])
		if err != nil {
			return nil, fmt.Errorf("dfs: PathEdges step %d: %w", i, err)
		}
		edges = append(edges, id)
	}

	return edges, nil
}

// CandidateEdgeSets enumerates the simple paths from start that could weigh
// exactly target, dedups them by vertex set and returns their edge ids.
// The node bound comes from MaxPathLength(target).
func CandidateEdgeSets(g *core.Graph, start, target int, opts ...Option) ([][]int, error) {
	paths, err := EnumeratePaths(g, start, MaxPathLength(target), opts...)
	if err != nil {
		return nil, err
	}
	paths = Deduplicate(paths)

	sets := make([][]int, 0, len(paths))
	for _, p := range paths {
		edges, err := PathEdges(g, p)
		if err != nil {
			return nil, err
		}
		sets = append(sets, edges)
	}

	return sets, nil
}
